package postgres

import (
	"context"
	"fmt"

	"github.com/finanzas-ar/resumen/extractor/common"
	"github.com/jackc/pgx/v5"
)

// CreateMovimientos bulk inserts the movements of a statement,
// preserving document order through the secuencia column.
func (db *DB) CreateMovimientos(ctx context.Context, resumenID string, movimientos []common.Movimiento) error {
	if len(movimientos) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, mov := range movimientos {
		signo := mov.SignoOriginal
		if signo == 0 {
			signo = 1
		}

		batch.Queue(`
			INSERT INTO movimientos (
				resumen_id, secuencia, fecha, descripcion, monto, cuotas, signo
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, resumenID, i+1, mov.Fecha.Time, mov.Descripcion, mov.Monto, mov.Cuotas, signo)
	}

	br := db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for range movimientos {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert movimiento: %w", err)
		}
	}

	return nil
}
