package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/finanzas-ar/resumen/extractor/common"
)

// ResumenExists checks if a statement already exists using the natural
// key (tarjeta_id, fecha_cierre)
func (db *DB) ResumenExists(ctx context.Context, tarjetaID string, fechaCierre time.Time) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM resumenes
		WHERE tarjeta_id = $1 AND fecha_cierre = $2
	`, tarjetaID, fechaCierre).Scan(&id)

	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check resumen: %w", err)
	}

	return true, id, nil
}

// CreateResumen inserts a new statement
func (db *DB) CreateResumen(ctx context.Context, tarjetaID string, fechaCierre time.Time, resumen common.Resumen) (string, error) {
	var id string

	var vencimiento, liquidacion *time.Time
	if resumen.FechaVencimiento != nil {
		vencimiento = &resumen.FechaVencimiento.Time
	}
	if resumen.FechaLiquidacion != nil {
		liquidacion = &resumen.FechaLiquidacion.Time
	}

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO resumenes (
			tarjeta_id, source, fecha_cierre, fecha_vencimiento, fecha_liquidacion,
			monto_total, total_origen, monto_minimo, texto_extraido
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		tarjetaID, resumen.Source, fechaCierre, vencimiento, liquidacion,
		resumen.MontoTotal, string(resumen.TotalOrigen), resumen.MontoMinimo, resumen.TextoExtraido,
	).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create resumen: %w", err)
	}

	return id, nil
}

// DeleteResumen removes a statement and its movements (cascade)
func (db *DB) DeleteResumen(ctx context.Context, resumenID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM resumenes WHERE id = $1`, resumenID)
	if err != nil {
		return fmt.Errorf("failed to delete resumen: %w", err)
	}
	return nil
}
