package liquidacion

import "strings"

// marca pairs a brand keyword with the label it resolves to. Order
// matters: "AMERICAN EXPRESS" must come before the generic "AMEX", and
// the big networks before the regional ones. First match wins.
type marca struct {
	keyword string
	label   string
}

var marcas = []marca{
	{"AMERICAN EXPRESS", "AMEX"},
	{"AMEX", "AMEX"},
	{"MASTERCARD", "MASTERCARD"},
	{"VISA", "VISA"},
	{"NARANJA", "NARANJA"},
	{"CABAL", "CABAL"},
	{"ARGENCARD", "ARGENCARD"},
}

// Sub-tiers refine a matched brand ("MASTERCARD PLATINUM") but never
// produce a label on their own.
var tiers = []string{"PLATINUM", "GOLD", "BLACK", "SIGNATURE"}

// DetectarBanco classifies the statement's network/bank family from
// keyword presence in the full text. The result is advisory: "" means
// unknown issuer and never blocks the rest of the pipeline.
func DetectarBanco(texto string) string {
	upper := strings.ToUpper(texto)

	for _, m := range marcas {
		if !strings.Contains(upper, m.keyword) {
			continue
		}
		for _, tier := range tiers {
			if strings.Contains(upper, tier) {
				return m.label + " " + tier
			}
		}
		return m.label
	}
	return ""
}

// marcaBase strips the tier refinement, leaving the base brand used to
// select issuer-specific patterns.
func marcaBase(banco string) string {
	base, _, _ := strings.Cut(banco, " ")
	return base
}
