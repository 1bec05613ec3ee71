package postgres

import (
	"context"
	"fmt"
)

// GetOrCreateTarjeta finds an existing card by (banco, numero) or
// creates a new one. The titular is refreshed on every import when the
// statement carries one, since older imports may predate the pattern
// that extracts it.
func (db *DB) GetOrCreateTarjeta(ctx context.Context, banco, numeroTarjeta, titular string) (string, error) {
	var id string

	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM tarjetas WHERE banco = $1 AND numero_tarjeta = $2
	`, banco, numeroTarjeta).Scan(&id)

	if err == nil {
		_, err = db.Pool.Exec(ctx, `
			UPDATE tarjetas
			SET titular = CASE WHEN $1::text != '' THEN $1 ELSE titular END,
			    updated_at = NOW()
			WHERE id = $2
		`, titular, id)
		if err != nil {
			return "", fmt.Errorf("failed to update tarjeta: %w", err)
		}
		return id, nil
	}

	err = db.Pool.QueryRow(ctx, `
		INSERT INTO tarjetas (banco, numero_tarjeta, titular)
		VALUES ($1, $2, $3)
		RETURNING id
	`, banco, numeroTarjeta, titular).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create tarjeta: %w", err)
	}

	return id, nil
}
