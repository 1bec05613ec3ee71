package liquidacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectarBanco(t *testing.T) {
	tests := []struct {
		texto    string
		expected string
	}{
		{"AMERICAN EXPRESS ARGENTINA S.A.", "AMEX"},
		{"Resumen de cuenta AMEX", "AMEX"},
		{"Tarjeta Mastercard emitida por el banco", "MASTERCARD"},
		{"MASTERCARD PLATINUM Resumen", "MASTERCARD PLATINUM"},
		{"VISA SIGNATURE Banco Galicia", "VISA SIGNATURE"},
		{"Tarjeta Naranja S.A.", "NARANJA"},
		{"CABAL cooperativa", "CABAL"},
		{"ARGENCARD regional", "ARGENCARD"},
		// Mastercard precedes Visa in the ordered list
		{"MASTERCARD y VISA aceptadas", "MASTERCARD"},
		// A tier alone never produces a label
		{"CUENTA PLATINUM", ""},
		{"resumen sin marca reconocible", ""},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, DetectarBanco(test.texto), "texto: %q", test.texto)
	}
}

func TestMarcaBase(t *testing.T) {
	assert.Equal(t, "MASTERCARD", marcaBase("MASTERCARD PLATINUM"))
	assert.Equal(t, "VISA", marcaBase("VISA"))
	assert.Equal(t, "", marcaBase(""))
}
