package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/finanzas-ar/resumen/extractor"
	"github.com/finanzas-ar/resumen/extractor/common"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	Force   bool // Force reprocessing of existing statements
	Verbose bool // Enable verbose logging
}

// fechaClave picks the natural-key date for a statement: the closing
// date when extracted, otherwise the settlement date.
func fechaClave(resumen common.Resumen) (time.Time, bool) {
	if resumen.FechaCierre != nil {
		return resumen.FechaCierre.Time, true
	}
	if resumen.FechaLiquidacion != nil {
		return resumen.FechaLiquidacion.Time, true
	}
	return time.Time{}, false
}

// ImportFile processes a single statement file and stores it in the
// database. Degraded extractions without an issuer or a key date are
// counted as failures rather than silently stored.
func (db *DB) ImportFile(ctx context.Context, filePath string, opts ImportOptions) (processed int, skipped int, failed int, errors []string) {
	fileName := filepath.Base(filePath)

	resumen, err := extractor.ProcessFile(filePath)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: %v", fileName, err)}
	}

	if resumen.Banco == "" {
		return 0, 0, 1, []string{fmt.Sprintf("%s: no issuer detected", fileName)}
	}
	cierre, ok := fechaClave(resumen)
	if !ok {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: no closing or settlement date extracted", fileName, resumen.Banco)}
	}

	tarjetaID, err := db.GetOrCreateTarjeta(ctx, resumen.Banco, resumen.NumeroTarjeta, resumen.Titular)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: tarjeta error: %v", fileName, resumen.Banco, err)}
	}

	exists, existingID, err := db.ResumenExists(ctx, tarjetaID, cierre)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: check error: %v", fileName, resumen.Banco, err)}
	}

	if exists && !opts.Force {
		if opts.Verbose {
			log.Printf("SKIP %s [%s] (already exists)", fileName, resumen.Banco)
		}
		return 0, 1, 0, nil
	}
	if exists && opts.Force {
		if err := db.DeleteResumen(ctx, existingID); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: delete error: %v", fileName, resumen.Banco, err)}
		}
	}

	resumenID, err := db.CreateResumen(ctx, tarjetaID, cierre, resumen)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: resumen error: %v", fileName, resumen.Banco, err)}
	}

	if err := db.CreateMovimientos(ctx, resumenID, resumen.Movimientos); err != nil {
		// Rollback by deleting the statement
		_ = db.DeleteResumen(ctx, resumenID)
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: movimientos error: %v", fileName, resumen.Banco, err)}
	}

	if opts.Verbose {
		log.Printf("OK   %s [%s] (%d movimientos)", fileName, resumen.Banco, len(resumen.Movimientos))
	}
	return 1, 0, 0, nil
}

// ImportDirectory processes all statement files in a directory
func (db *DB) ImportDirectory(ctx context.Context, dirPath string, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var dataFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".pdf") || strings.HasSuffix(lower, ".jpg") ||
			strings.HasSuffix(lower, ".jpeg") || strings.HasSuffix(lower, ".png") {
			dataFiles = append(dataFiles, filepath.Join(dirPath, e.Name()))
		}
	}

	log.Printf("Scanning: %s", dirPath)
	log.Printf("Found %d statement files\n", len(dataFiles))

	for _, filePath := range dataFiles {
		processed, skipped, failed, errors := db.ImportFile(ctx, filePath, opts)

		result.Processed += processed
		result.Skipped += skipped
		result.Failed += failed
		result.Errors = append(result.Errors, errors...)

		if opts.Verbose && failed > 0 {
			for _, errMsg := range errors {
				log.Printf("FAIL %s", errMsg)
			}
		}
	}

	return result, nil
}

// Import handles both file and directory imports
func (db *DB) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		return db.ImportDirectory(ctx, path, opts)
	}

	result := &ImportResult{}
	processed, skipped, failed, errors := db.ImportFile(ctx, path, opts)

	result.Processed = processed
	result.Skipped = skipped
	result.Failed = failed
	result.Errors = errors

	return result, nil
}
