package liquidacion

import (
	"regexp"
	"strings"

	"github.com/finanzas-ar/resumen/extractor/common"
	"github.com/shopspring/decimal"
)

// Metadata holds the statement-level scalars. Every field is optional:
// each is independently present or absent depending on which pattern
// matched, and a pattern miss never aborts extraction.
type Metadata struct {
	FechaLiquidacion *common.Fecha
	FechaCierre      *common.Fecha
	FechaVencimiento *common.Fecha
	MontoTotal       *decimal.Decimal
	MontoMinimo      *decimal.Decimal
	NumeroTarjeta    string
	Titular          string
}

// montoStrategy is one named entry in an ordered fallback chain for a
// monetary field. The first strategy whose pattern matches and whose
// captured token decodes wins; later entries are pure fallbacks, never
// merged with earlier partial matches.
type montoStrategy struct {
	name string
	re   *regexp.Regexp
}

var totalGenericas = []montoStrategy{
	{"total-a-pagar", regexp.MustCompile(`(?i)\bTotal\s+a\s+pagar[:\s]+\$?\s*(-?[\d.,]+)`)},
	{"total-general", regexp.MustCompile(`(?i)\bTotal\s+general[:\s]+\$?\s*(-?[\d.,]+)`)},
	{"importe-total", regexp.MustCompile(`(?i)\bImporte\s+total[:\s]+\$?\s*(-?[\d.,]+)`)},
	{"total", regexp.MustCompile(`(?i)\bTotal[:\s]+\$?\s*(-?[\d.,]+)`)},
}

var fechaLiquidacionEtiquetas = []montoStrategy{
	{"liquidacion-del", regexp.MustCompile(`(?i)Liquidaci[oó]n\s+del\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`)},
	{"periodo", regexp.MustCompile(`(?i)Per[ií]odo\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`)},
	{"fecha-de-cierre", regexp.MustCompile(`(?i)Fecha\s+de\s+cierre[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`)},
}

const fechaAbreviada = `\d{1,2}-[A-Za-z]{3}-\d{2}`

var (
	cuatroFechasRe = regexp.MustCompile(`(` + fechaAbreviada + `)\s+(` + fechaAbreviada + `)\s+(` + fechaAbreviada + `)\s+(` + fechaAbreviada + `)`)
	tresFechasRe   = regexp.MustCompile(`(` + fechaAbreviada + `)\s+(` + fechaAbreviada + `)\s+(` + fechaAbreviada + `)`)

	numeroTarjetaRe = regexp.MustCompile(`(\d{4})\s*[*xX•]{4,}`)
	titularRe       = regexp.MustCompile(`(?i:Titular)[:\s]+([A-ZÁÉÍÓÚÑ][A-ZÁÉÍÓÚÑ ]+)`)
	fechaGenericaRe = regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{4})`)
	montoSueltoRe   = regexp.MustCompile(`\$?\s*(-?[\d.,]*\d,\d{2})`)
)

// ExtractMetadata applies the per-field ordered strategy lists against
// the line stream. banco selects which issuer-specific patterns are
// tried first; an unknown issuer just skips straight to the generics.
func ExtractMetadata(rows []string, banco string) Metadata {
	cfg := loadConfig(banco)
	texto := strings.Join(rows, "\n")

	meta := Metadata{
		MontoTotal:  extraerMontoTotal(texto, cfg),
		MontoMinimo: extraerPagoMinimo(rows, cfg),
	}

	meta.FechaCierre, meta.FechaVencimiento = extraerCierreYVencimiento(rows, texto, cfg)
	meta.FechaLiquidacion = extraerFechaLiquidacion(rows, texto)

	if match := numeroTarjetaRe.FindStringSubmatch(texto); match != nil {
		meta.NumeroTarjeta = match[1]
	}
	if match := titularRe.FindStringSubmatch(texto); match != nil {
		meta.Titular = strings.TrimSpace(match[1])
	}

	return meta
}

func extraerMontoTotal(texto string, cfg config) *decimal.Decimal {
	estrategias := make([]montoStrategy, 0, len(totalGenericas)+1)
	if cfg.TotalBanco != nil {
		estrategias = append(estrategias, montoStrategy{"total-banco", cfg.TotalBanco})
	}
	estrategias = append(estrategias, totalGenericas...)

	for _, e := range estrategias {
		match := e.re.FindStringSubmatch(texto)
		if match == nil {
			continue
		}
		if monto, ok := common.ParseMonto(match[1]); ok {
			return &monto
		}
	}
	return nil
}

// extraerPagoMinimo looks for the "PAGO MINIMO" label. When the label
// appears without an amount on the same line, the amount is sought on
// the next line.
func extraerPagoMinimo(rows []string, cfg config) *decimal.Decimal {
	for i, row := range rows {
		match := cfg.PagoMinimo.FindStringSubmatch(row)
		if match == nil {
			continue
		}
		if len(match) > 1 && match[1] != "" {
			if monto, ok := common.ParseMonto(match[1]); ok {
				return &monto
			}
		}
		if i+1 < len(rows) {
			if token := montoSueltoRe.FindStringSubmatch(rows[i+1]); token != nil {
				if monto, ok := common.ParseMonto(token[1]); ok {
					return &monto
				}
			}
		}
	}
	return nil
}

// extraerCierreYVencimiento runs the two date strategies in preference
// order: explicit Cierre/Vencimiento labels first, then the positional
// four-abbreviated-dates layout (3rd = cierre, 4th = vencimiento). The
// positional strategy reads both fields from the same line, so it sets
// them together.
func extraerCierreYVencimiento(rows []string, texto string, cfg config) (*common.Fecha, *common.Fecha) {
	var cierre, vencimiento *common.Fecha

	if match := cfg.Cierre.FindStringSubmatch(texto); match != nil {
		if f, ok := common.ParseFechaBarras(match[1]); ok {
			cierre = &f
		}
	}
	if match := cfg.Vencimiento.FindStringSubmatch(texto); match != nil {
		if f, ok := common.ParseFechaBarras(match[1]); ok {
			vencimiento = &f
		}
	}

	if cierre != nil && vencimiento != nil {
		return cierre, vencimiento
	}

	for _, row := range rows {
		match := cuatroFechasRe.FindStringSubmatch(row)
		if match == nil {
			continue
		}
		c, okC := common.ParseFechaAbreviada(match[3])
		v, okV := common.ParseFechaAbreviada(match[4])
		if okC && okV {
			return &c, &v
		}
	}
	return cierre, vencimiento
}

func extraerFechaLiquidacion(rows []string, texto string) *common.Fecha {
	for _, e := range fechaLiquidacionEtiquetas {
		match := e.re.FindStringSubmatch(texto)
		if match == nil {
			continue
		}
		if f, ok := common.ParseFechaBarras(match[1]); ok {
			return &f
		}
	}

	// Positional fallback: a line carrying three consecutive abbreviated
	// dates gives the settlement date in the 3rd position.
	for _, row := range rows {
		match := tresFechasRe.FindStringSubmatch(row)
		if match == nil {
			continue
		}
		if f, ok := common.ParseFechaAbreviada(match[3]); ok {
			return &f
		}
	}

	if match := fechaGenericaRe.FindStringSubmatch(texto); match != nil {
		if f, ok := common.ParseFechaBarras(match[1]); ok {
			return &f
		}
	}
	return nil
}
