// Package ocr provides the text-recognition fallback for photographed
// statements. Recognition runs through the tesseract binary; the Engine
// handle is constructed once per process and reused, since probing and
// configuring the recognizer is the expensive part.
package ocr

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// Engine is an explicit handle to the process-wide recognizer. Callers
// receive it from Shared and pass it by reference; nothing reaches it
// through package globals at call sites.
type Engine struct {
	binary    string
	languages string
}

var (
	sharedOnce sync.Once
	shared     *Engine
	sharedErr  error
)

// Shared returns the process-wide Engine, initializing it on first use.
// The sync.Once guard makes concurrent first use safe.
func Shared() (*Engine, error) {
	sharedOnce.Do(func() {
		binary, err := exec.LookPath("tesseract")
		if err != nil {
			sharedErr = fmt.Errorf("tesseract not available (install tesseract-ocr): %w", err)
			return
		}
		shared = &Engine{
			binary:    binary,
			languages: "spa+eng",
		}
	})
	return shared, sharedErr
}

// ExtractRowsFromImage runs OCR over a photographed statement and
// returns its text as an ordered line stream, matching the shape the
// PDF extractor produces.
func (e *Engine) ExtractRowsFromImage(path string) (*[]string, error) {
	tmpDir, err := os.MkdirTemp("", "resumen-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// PSM 4 assumes a single column of variable-size text, which suits
	// statement photos.
	outBase := filepath.Join(tmpDir, "page")
	cmd := exec.Command(e.binary, path, outBase, "-l", e.languages, "--psm", "4")
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("tesseract failed: %v (output: %s)", err, string(out))
	}

	data, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read OCR output: %w", err)
	}

	rows := make([]string, 0, 100)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	return &rows, nil
}

// IsImage reports whether a path looks like a photographed document
// rather than a PDF.
func IsImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".tif", ".tiff", ".bmp":
		return true
	}
	return false
}
