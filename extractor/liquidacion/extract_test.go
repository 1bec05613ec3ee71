package liquidacion

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/finanzas-ar/resumen/extractor/common"
)

func TestExtract_DeclaredTotal(t *testing.T) {
	viper.Reset()
	rows := []string{
		"VISA GOLD Resumen de cuenta",
		"TOTAL A PAGAR $ 10.000,00",
		"DETALLE DEL CONSUMO",
		"16-Ago-25 COMPRA SUPERMERCADO 4.000,00",
		"SUBTOTAL 4.000,00",
	}

	resumen := Extract("resumen.pdf", &rows)

	if resumen.Banco != "VISA GOLD" {
		t.Errorf("Expected VISA GOLD, got %q", resumen.Banco)
	}
	if resumen.MontoTotal == nil || !resumen.MontoTotal.Equal(decimal.RequireFromString("10000")) {
		t.Fatalf("Expected declared total 10000, got %v", resumen.MontoTotal)
	}
	if resumen.TotalOrigen != common.TotalDeclarado {
		t.Errorf("Expected total origin %q, got %q", common.TotalDeclarado, resumen.TotalOrigen)
	}
}

func TestExtract_ComputedTotalFallback(t *testing.T) {
	viper.Reset()
	rows := []string{
		"Resumen sin etiqueta de importe",
		"DETALLE DEL CONSUMO",
		"16-Ago-25 PRIMERA COMPRA 100,00",
		"17-Ago-25 SEGUNDA COMPRA 200,00",
		"18-Ago-25 TERCERA COMPRA 300,00",
		"SUBTOTAL 600,00",
	}

	resumen := Extract("resumen.pdf", &rows)

	if resumen.MontoTotal == nil || !resumen.MontoTotal.Equal(decimal.RequireFromString("600")) {
		t.Fatalf("Expected computed total 600, got %v", resumen.MontoTotal)
	}
	if resumen.TotalOrigen != common.TotalCalculado {
		t.Errorf("Expected total origin %q, got %q", common.TotalCalculado, resumen.TotalOrigen)
	}
}

func TestExtract_UnrecognizedLayout(t *testing.T) {
	viper.Reset()
	rows := []string{
		"documento cualquiera",
		"sin estructura de resumen",
	}

	resumen := Extract("otro.pdf", &rows)

	if resumen.Banco != "" {
		t.Errorf("Expected empty issuer, got %q", resumen.Banco)
	}
	if resumen.MontoTotal != nil {
		t.Errorf("Expected nil total, got %v", resumen.MontoTotal)
	}
	if resumen.TotalOrigen != "" {
		t.Errorf("Expected empty total origin, got %q", resumen.TotalOrigen)
	}
	if len(resumen.Movimientos) != 0 {
		t.Errorf("Expected no movements, got %d", len(resumen.Movimientos))
	}
	if resumen.Source != "otro.pdf" {
		t.Errorf("Expected source to be preserved, got %q", resumen.Source)
	}
}

func TestExtract_TextoExtraidoCapped(t *testing.T) {
	viper.Reset()
	larga := strings.Repeat("á", 600)
	rows := []string{larga, larga}

	resumen := Extract("resumen.pdf", &rows)

	if got := len([]rune(resumen.TextoExtraido)); got != 1000 {
		t.Errorf("Expected sample capped at 1000 runes, got %d", got)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	viper.Reset()
	rows := []string{
		"MASTERCARD BLACK",
		"TOTAL A PAGAR $ 1.234,56",
		"DETALLE DEL CONSUMO",
		"16-Ago-25 MERPAGO*PUMA 04/06 00229 57.561,75",
		"SUBTOTAL 57.561,75",
	}

	primero := Extract("resumen.pdf", &rows)
	segundo := Extract("resumen.pdf", &rows)

	if primero.Banco != segundo.Banco {
		t.Errorf("Issuer differs between runs: %q vs %q", primero.Banco, segundo.Banco)
	}
	if !primero.MontoTotal.Equal(*segundo.MontoTotal) {
		t.Error("Total differs between runs")
	}
	if len(primero.Movimientos) != len(segundo.Movimientos) {
		t.Fatalf("Movement counts differ: %d vs %d", len(primero.Movimientos), len(segundo.Movimientos))
	}
	if primero.Movimientos[0].Descripcion != segundo.Movimientos[0].Descripcion {
		t.Error("Movement description differs between runs")
	}
}
