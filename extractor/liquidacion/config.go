package liquidacion

import (
	"regexp"

	"github.com/spf13/viper"
)

// Issuer-specific total labels. These are the patterns tried before the
// generic "Total a pagar" family; they can be overridden per issuer in
// the config file under liquidacion.issuers.<BANCO>.total.
var defaultTotalPorBanco = map[string]string{
	"AMEX":       `SALDO\s+TOTAL\s+A\s+PAGAR[:\s]*\$?\s*(-?[\d.,]+)`,
	"MASTERCARD": `TOTAL\s+A\s+PAGAR[:\s]*\$?\s*(-?[\d.,]+)`,
	"VISA":       `TOTAL\s+A\s+PAGAR[:\s]*\$?\s*(-?[\d.,]+)`,
}

type config struct {
	TotalBanco  *regexp.Regexp // nil when the issuer has no specific label
	PagoMinimo  *regexp.Regexp
	Cierre      *regexp.Regexp
	Vencimiento *regexp.Regexp
}

// loadConfig resolves patterns from viper with built-in fallbacks, so
// the engine works both under the CLI (embedded config loaded) and when
// used as a library with no config file at all.
func loadConfig(banco string) config {
	cfg := config{
		PagoMinimo:  patternOr("liquidacion.patterns.pago_minimo", `PAGO\s+M[IÍ]NIMO[:\s]*\$?\s*(-?[\d.,]+)?`),
		Cierre:      patternOr("liquidacion.patterns.cierre", `Cierre[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		Vencimiento: patternOr("liquidacion.patterns.vencimiento", `Vencimiento[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	}

	base := marcaBase(banco)
	if base != "" {
		key := "liquidacion.issuers." + base + ".total"
		fallback := defaultTotalPorBanco[base]
		if pattern := viper.GetString(key); pattern != "" {
			cfg.TotalBanco = regexp.MustCompile(`(?i)` + pattern)
		} else if fallback != "" {
			cfg.TotalBanco = regexp.MustCompile(`(?i)` + fallback)
		}
	}
	return cfg
}

func patternOr(key, fallback string) *regexp.Regexp {
	if pattern := viper.GetString(key); pattern != "" {
		return regexp.MustCompile(`(?i)` + pattern)
	}
	return regexp.MustCompile(`(?i)` + fallback)
}
