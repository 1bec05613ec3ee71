// Package liquidacion turns the linearized text of an Argentine credit
// card statement into a structured Resumen: statement-level metadata
// plus the itemized movements. Pattern misses degrade individual fields
// to nil, never the whole parse; a result with no fields and no
// movements is a valid "layout not recognized" outcome.
package liquidacion

import (
	"strings"

	"github.com/finanzas-ar/resumen/extractor/common"
	"github.com/shopspring/decimal"
)

// Size of the raw-text sample kept on the result for diagnostics.
const muestraTexto = 1000

// Extract runs the full pipeline over an already extracted line stream:
// issuer detection, metadata strategies, movement segmentation, and the
// computed-total fallback.
func Extract(source string, rows *[]string) common.Resumen {
	texto := strings.Join(*rows, "\n")

	banco := DetectarBanco(texto)
	meta := ExtractMetadata(*rows, banco)
	movimientos := ExtractMovimientos(*rows)

	resumen := common.Resumen{
		Source:           source,
		Banco:            banco,
		FechaLiquidacion: meta.FechaLiquidacion,
		FechaCierre:      meta.FechaCierre,
		FechaVencimiento: meta.FechaVencimiento,
		MontoMinimo:      meta.MontoMinimo,
		NumeroTarjeta:    meta.NumeroTarjeta,
		Titular:          meta.Titular,
		Movimientos:      movimientos,
		TextoExtraido:    muestra(texto),
	}

	switch {
	case meta.MontoTotal != nil:
		resumen.MontoTotal = meta.MontoTotal
		resumen.TotalOrigen = common.TotalDeclarado
	case len(movimientos) > 0:
		total := decimal.Zero
		for _, m := range movimientos {
			total = total.Add(m.Monto)
		}
		resumen.MontoTotal = &total
		resumen.TotalOrigen = common.TotalCalculado
	}

	return resumen
}

func muestra(texto string) string {
	runes := []rune(texto)
	if len(runes) <= muestraTexto {
		return texto
	}
	return string(runes[:muestraTexto])
}
