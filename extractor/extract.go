package extractor

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/finanzas-ar/resumen/extractor/common"
	"github.com/finanzas-ar/resumen/extractor/liquidacion"
	"github.com/finanzas-ar/resumen/extractor/ocr"
)

// ProcessReader extracts a Resumen from a PDF byte stream. An
// unreadable document is the only error path; every pattern-level miss
// inside the pipeline degrades fields instead of failing.
func ProcessReader(reader io.Reader, fileName string) (common.Resumen, error) {
	rows, err := common.ExtractRowsFromPDFReader(reader)
	if err != nil {
		return common.Resumen{}, fmt.Errorf("unreadable document %s: %w", fileName, err)
	}
	source := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return liquidacion.Extract(source, rows), nil
}

// ProcessFile extracts a Resumen from a file on disk, dispatching
// photographed documents through the shared OCR engine.
func ProcessFile(path string) (common.Resumen, error) {
	var rows *[]string
	var err error

	if ocr.IsImage(path) {
		engine, engineErr := ocr.Shared()
		if engineErr != nil {
			return common.Resumen{}, engineErr
		}
		rows, err = engine.ExtractRowsFromImage(path)
	} else {
		rows, err = common.ExtractRowsFromPDF(path)
	}
	if err != nil {
		return common.Resumen{}, fmt.Errorf("unreadable document %s: %w", filepath.Base(path), err)
	}

	source := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return liquidacion.Extract(source, rows), nil
}

// ExecuteAgainstPath processes a single file or every statement in a
// directory and prints the results as JSON.
func ExecuteAgainstPath(path string) {
	info, err := os.Stat(path)
	if err != nil {
		log.Fatal(err)
	}

	if info.IsDir() {
		log.Println("📂 Scanning", path)
		entries, err := os.ReadDir(path)
		if err != nil {
			log.Fatal(err)
		}

		result := []common.Resumen{}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := strings.ToLower(e.Name())
			if !strings.HasSuffix(name, ".pdf") && !ocr.IsImage(name) {
				continue
			}
			resumen, err := ProcessFile(filepath.Join(path, e.Name()))
			if err != nil {
				log.Printf("FAIL %s: %v", e.Name(), err)
				continue
			}
			result = append(result, resumen)
		}

		asJSON, _ := json.Marshal(result)
		fmt.Println(string(asJSON))
		return
	}

	log.Println("📄 Scanning", path)
	resumen, err := ProcessFile(path)
	if err != nil {
		log.Fatal(err)
	}

	asJSON, _ := json.Marshal(resumen)
	fmt.Println(string(asJSON))
}

// CreateFinalOutput shapes a Resumen for the CLI/API: the full record,
// only its movements, or only the statement-level fields.
func CreateFinalOutput(resumen common.Resumen, movimientosOnly bool, resumenOnly bool) interface{} {
	if movimientosOnly {
		return resumen.Movimientos
	}

	if resumenOnly {
		output := map[string]interface{}{
			"source":            resumen.Source,
			"banco":             resumen.Banco,
			"fecha_liquidacion": resumen.FechaLiquidacion,
			"fecha_cierre":      resumen.FechaCierre,
			"fecha_vencimiento": resumen.FechaVencimiento,
			"monto_total":       resumen.MontoTotal,
			"total_origen":      resumen.TotalOrigen,
			"monto_minimo":      resumen.MontoMinimo,
			"numero_tarjeta":    resumen.NumeroTarjeta,
			"titular":           resumen.Titular,
		}
		return output
	}

	return resumen
}
