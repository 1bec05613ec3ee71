package postgres

import (
	"context"
	"fmt"
)

const ddl = `
-- Cards table. A card is identified by its brand plus the masked
-- number fragment printed on the statement.
CREATE TABLE IF NOT EXISTS tarjetas (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    banco VARCHAR(100) NOT NULL,
    numero_tarjeta VARCHAR(20) NOT NULL DEFAULT '',
    titular VARCHAR(255) DEFAULT '',
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW(),

    UNIQUE(banco, numero_tarjeta)
);

-- Statements table with natural key (tarjeta_id, fecha_cierre)
CREATE TABLE IF NOT EXISTS resumenes (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    tarjeta_id UUID NOT NULL REFERENCES tarjetas(id) ON DELETE CASCADE,
    source VARCHAR(255) NOT NULL,
    fecha_cierre DATE NOT NULL,
    fecha_vencimiento DATE,
    fecha_liquidacion DATE,
    monto_total NUMERIC(18,2),
    total_origen VARCHAR(10) DEFAULT '',
    monto_minimo NUMERIC(18,2),
    texto_extraido TEXT DEFAULT '',
    created_at TIMESTAMPTZ DEFAULT NOW(),

    -- Natural key for deduplication
    UNIQUE(tarjeta_id, fecha_cierre)
);

-- Movements table
CREATE TABLE IF NOT EXISTS movimientos (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    resumen_id UUID NOT NULL REFERENCES resumenes(id) ON DELETE CASCADE,
    secuencia INTEGER NOT NULL,
    fecha DATE NOT NULL,
    descripcion TEXT NOT NULL,
    monto NUMERIC(18,2) NOT NULL,
    cuotas VARCHAR(10) DEFAULT '',
    signo SMALLINT NOT NULL DEFAULT 1,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    -- Prevent duplicate movements within a statement
    UNIQUE(resumen_id, secuencia)
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_resumenes_tarjeta_id ON resumenes(tarjeta_id);
CREATE INDEX IF NOT EXISTS idx_resumenes_fecha_cierre ON resumenes(fecha_cierre);
CREATE INDEX IF NOT EXISTS idx_movimientos_resumen_id ON movimientos(resumen_id);
CREATE INDEX IF NOT EXISTS idx_movimientos_fecha ON movimientos(fecha);
`

// EnsureSchema creates tables if they don't exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
