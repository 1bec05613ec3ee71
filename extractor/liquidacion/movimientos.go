package liquidacion

import (
	"regexp"
	"strings"

	"github.com/finanzas-ar/resumen/extractor/common"
)

// Substituted when a movement line carries no usable description.
const descripcionVacia = "no description available"

var (
	// Primary format: leading abbreviated date. Checked before the
	// generic slashed form; the generic pattern only runs on lines the
	// abbreviated one rejected outright.
	lineaAbreviadaRe = regexp.MustCompile(`^\s*(\d{1,2}-[A-Za-z]{3}-\d{2})\s+(.+)$`)
	lineaBarrasRe    = regexp.MustCompile(`^\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+(.+)$`)

	// Last numeric run at end of line, Argentine decimals required.
	montoFinalRe = regexp.MustCompile(`(-?\$?\s*[\d.]*\d,\d{2})\s*$`)

	cuotasRe   = regexp.MustCompile(`\b(\d{1,2}/\d{1,2})\b`)
	voucherRe  = regexp.MustCompile(`\b\d{5}\b`)
	espaciosRe = regexp.MustCompile(`\s+`)
)

// Dangling line endings that suggest the description continues on the
// next physical line.
var colgantes = map[string]bool{
	"al": true, "de": true, "en": true, "con": true,
	"a": true, "el": true, "del": true, "por": true,
}

// ExtractMovimientos segments the line stream into itemized movements.
// Only lines inside an open consumption section are considered: the
// gate opens on a DETALLE DEL CONSUMO / CUOTAS DEL MES heading and
// closes on SUBTOTAL or on a TOTAL other than the terminal TOTAL A
// PAGAR (which is excluded from movements but does not close the
// section).
func ExtractMovimientos(rows []string) []common.Movimiento {
	movimientos := []common.Movimiento{}
	abierta := false

	for i, row := range rows {
		upper := strings.ToUpper(row)

		if !abierta {
			if strings.Contains(upper, "DETALLE DEL CONSUMO") || strings.Contains(upper, "CUOTAS DEL MES") {
				abierta = true
			}
			continue
		}

		if strings.Contains(upper, "SUBTOTAL") {
			abierta = false
			continue
		}
		if strings.Contains(upper, "TOTAL") {
			if strings.Contains(upper, "TOTAL A PAGAR") {
				continue
			}
			abierta = false
			continue
		}

		if mov, ok := matchMovimiento(rows, i); ok {
			movimientos = append(movimientos, mov)
		}
	}

	return movimientos
}

func matchMovimiento(rows []string, i int) (common.Movimiento, bool) {
	row := rows[i]

	if match := lineaAbreviadaRe.FindStringSubmatch(row); match != nil {
		if fecha, ok := common.ParseFechaAbreviada(match[1]); ok {
			return construirMovimiento(rows, i, fecha, match[2])
		}
	}
	if match := lineaBarrasRe.FindStringSubmatch(row); match != nil {
		if fecha, ok := common.ParseFechaBarras(match[1]); ok {
			return construirMovimiento(rows, i, fecha, match[2])
		}
	}
	return common.Movimiento{}, false
}

func construirMovimiento(rows []string, i int, fecha common.Fecha, resto string) (common.Movimiento, bool) {
	loc := montoFinalRe.FindStringSubmatchIndex(resto)
	if loc == nil {
		return common.Movimiento{}, false
	}

	monto, ok := common.ParseMonto(resto[loc[2]:loc[3]])
	if !ok || monto.IsZero() {
		// A zero amount marks a non-movement line.
		return common.Movimiento{}, false
	}

	signo := 1
	if monto.IsNegative() {
		signo = -1
	}

	descripcion := resto[:loc[2]]

	var cuotas string
	if tag := cuotasRe.FindStringSubmatchIndex(descripcion); tag != nil {
		cuotas = descripcion[tag[2]:tag[3]]
		descripcion = descripcion[:tag[0]] + " " + descripcion[tag[1]:]
	}

	descripcion = voucherRe.ReplaceAllString(descripcion, " ")
	descripcion = normalizar(descripcion)

	if necesitaContinuacion(descripcion) && i+1 < len(rows) {
		siguiente := rows[i+1]
		if !tieneFecha(siguiente) && montoFinalRe.FindStringIndex(siguiente) == nil {
			descripcion = normalizar(descripcion + " " + siguiente)
		}
	}

	if len([]rune(descripcion)) < 3 {
		descripcion = descripcionVacia
	}
	if cuotas != "" {
		descripcion += " (Cuota " + cuotas + ")"
	}

	return common.Movimiento{
		Fecha:         fecha,
		Descripcion:   descripcion,
		Monto:         monto.Abs(),
		Cuotas:        cuotas,
		SignoOriginal: signo,
	}, true
}

func normalizar(s string) string {
	return strings.TrimSpace(espaciosRe.ReplaceAllString(s, " "))
}

// necesitaContinuacion reports whether the description looks truncated:
// too short, or ending in a dangling preposition/article. The peek is
// bounded to one following line and never recurses.
func necesitaContinuacion(descripcion string) bool {
	if len([]rune(descripcion)) < 10 {
		return true
	}
	palabras := strings.Fields(strings.ToLower(descripcion))
	if len(palabras) == 0 {
		return true
	}
	return colgantes[palabras[len(palabras)-1]]
}

func tieneFecha(row string) bool {
	return lineaAbreviadaRe.MatchString(row) || lineaBarrasRe.MatchString(row)
}
