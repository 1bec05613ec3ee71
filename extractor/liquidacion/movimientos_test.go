package liquidacion

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractMovimientos_SectionGating(t *testing.T) {
	rows := []string{
		"16-Ago-25 FUERA DE SECCION 100,00",
		"DETALLE DEL CONSUMO",
		"16-Ago-25 DENTRO DE SECCION 200,00",
		"SUBTOTAL 200,00",
		"17-Ago-25 DESPUES DEL CIERRE 300,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 1 {
		t.Fatalf("Expected 1 movement, got %d", len(movimientos))
	}
	if movimientos[0].Descripcion != "DENTRO DE SECCION" {
		t.Errorf("Expected DENTRO DE SECCION, got %q", movimientos[0].Descripcion)
	}
}

func TestExtractMovimientos_TotalAPagarDoesNotClose(t *testing.T) {
	rows := []string{
		"CUOTAS DEL MES",
		"16-Ago-25 PRIMERA COMPRA 100,00",
		"TOTAL A PAGAR 100,00",
		"17-Ago-25 SEGUNDA COMPRA 200,00",
		"TOTAL GENERAL 300,00",
		"18-Ago-25 TERCERA COMPRA 400,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 2 {
		t.Fatalf("Expected 2 movements, got %d", len(movimientos))
	}
	if movimientos[0].Descripcion != "PRIMERA COMPRA" || movimientos[1].Descripcion != "SEGUNDA COMPRA" {
		t.Errorf("Unexpected movements: %+v", movimientos)
	}
}

func TestExtractMovimientos_Cuotas(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"16-Ago-25 MERPAGO*PUMA 04/06 00229 57.561,75",
		"SUBTOTAL 57.561,75",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 1 {
		t.Fatalf("Expected 1 movement, got %d", len(movimientos))
	}
	mov := movimientos[0]
	if mov.Descripcion != "MERPAGO*PUMA (Cuota 04/06)" {
		t.Errorf("Expected MERPAGO*PUMA (Cuota 04/06), got %q", mov.Descripcion)
	}
	if mov.Cuotas != "04/06" {
		t.Errorf("Expected cuotas 04/06, got %q", mov.Cuotas)
	}
	if !mov.Monto.Equal(decimal.RequireFromString("57561.75")) {
		t.Errorf("Expected 57561.75, got %s", mov.Monto.String())
	}
	if got := mov.Fecha.Format("2006-01-02"); got != "2025-08-16" {
		t.Errorf("Expected 2025-08-16, got %s", got)
	}
}

func TestExtractMovimientos_NegativeAmount(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"20-Nov-25 PAGO RECIBIDO -450,00",
		"SUBTOTAL -450,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 1 {
		t.Fatalf("Expected 1 movement, got %d", len(movimientos))
	}
	mov := movimientos[0]
	if !mov.Monto.Equal(decimal.RequireFromString("450")) {
		t.Errorf("Expected absolute 450, got %s", mov.Monto.String())
	}
	if mov.SignoOriginal != -1 {
		t.Errorf("Expected original sign -1, got %d", mov.SignoOriginal)
	}
}

func TestExtractMovimientos_ZeroAmountDiscarded(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"16-Ago-25 AJUSTE SALDO ANTERIOR 0,00",
		"17-Ago-25 COMPRA REAL 1.250,00",
		"SUBTOTAL 1.250,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 1 {
		t.Fatalf("Expected zero-amount line to be discarded, got %d movements", len(movimientos))
	}
	if movimientos[0].Descripcion != "COMPRA REAL" {
		t.Errorf("Expected COMPRA REAL, got %q", movimientos[0].Descripcion)
	}
}

func TestExtractMovimientos_Continuation(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"16-Ago-25 COMPRA EN 1.000,00",
		"SUPERMERCADO DIA",
		"SUBTOTAL 1.000,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 1 {
		t.Fatalf("Expected 1 movement, got %d", len(movimientos))
	}
	if movimientos[0].Descripcion != "COMPRA EN SUPERMERCADO DIA" {
		t.Errorf("Expected merged description, got %q", movimientos[0].Descripcion)
	}
}

func TestExtractMovimientos_NoContinuationWhenNextLineIsMovement(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"16-Ago-25 FARMACIA 500,00",
		"17-Ago-25 KIOSCO ABIERTO 300,00",
		"SUBTOTAL 800,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 2 {
		t.Fatalf("Expected 2 movements, got %d", len(movimientos))
	}
	if movimientos[0].Descripcion != "FARMACIA" {
		t.Errorf("Expected FARMACIA untouched, got %q", movimientos[0].Descripcion)
	}
}

func TestExtractMovimientos_SlashedDateFormat(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"15/11/2024 FARMACIA CENTRAL 2.500,00",
		"SUBTOTAL 2.500,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 1 {
		t.Fatalf("Expected 1 movement, got %d", len(movimientos))
	}
	if got := movimientos[0].Fecha.Format("2006-01-02"); got != "2024-11-15" {
		t.Errorf("Expected 2024-11-15, got %s", got)
	}
}

func TestExtractMovimientos_VoucherOnlyDescription(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"16-Ago-25 12345 1.000,00",
		"SUBTOTAL 1.000,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 1 {
		t.Fatalf("Expected 1 movement, got %d", len(movimientos))
	}
	if movimientos[0].Descripcion != "no description available" {
		t.Errorf("Expected placeholder description, got %q", movimientos[0].Descripcion)
	}
}

func TestExtractMovimientos_NoAmountRejected(t *testing.T) {
	rows := []string{
		"DETALLE DEL CONSUMO",
		"16-Ago-25 LINEA SIN IMPORTE AL FINAL",
		"SUBTOTAL 0,00",
	}

	movimientos := ExtractMovimientos(rows)

	if len(movimientos) != 0 {
		t.Fatalf("Expected no movements, got %d", len(movimientos))
	}
}
