package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalOrigen tags where Resumen.MontoTotal came from, so downstream
// consumers can tell a declared total apart from one computed by
// summing movements.
type TotalOrigen string

const (
	TotalDeclarado TotalOrigen = "declarado"
	TotalCalculado TotalOrigen = "calculado"
)

type Resumen struct {
	Source           string           `json:"source"`
	Banco            string           `json:"banco,omitempty"`
	FechaLiquidacion *Fecha           `json:"fecha_liquidacion"`
	FechaCierre      *Fecha           `json:"fecha_cierre"`
	FechaVencimiento *Fecha           `json:"fecha_vencimiento"`
	MontoTotal       *decimal.Decimal `json:"monto_total"`
	TotalOrigen      TotalOrigen      `json:"total_origen,omitempty"`
	MontoMinimo      *decimal.Decimal `json:"monto_minimo"`
	NumeroTarjeta    string           `json:"numero_tarjeta,omitempty"`
	Titular          string           `json:"titular,omitempty"`
	Movimientos      []Movimiento     `json:"movimientos"`
	TextoExtraido    string           `json:"texto_extraido"`
}

type Movimiento struct {
	Fecha       Fecha           `json:"fecha"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Cuotas      string          `json:"cuotas,omitempty"`

	// SignoOriginal records the sign the statement printed for this
	// movement (-1 for credits/refunds, +1 otherwise). Monto is always
	// stored as an absolute value, matching the upstream consumers.
	SignoOriginal int `json:"-"`
}

// Fecha is a calendar date. It marshals as "2006-01-02" instead of the
// full RFC 3339 timestamp time.Time would produce.
type Fecha struct {
	time.Time
}

func NewFecha(year int, month time.Month, day int) Fecha {
	return Fecha{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Format("2006-01-02") + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(`"2006-01-02"`, s, time.Local)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}
