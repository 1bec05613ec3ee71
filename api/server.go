// Package api exposes the extraction engine over HTTP. It is a thin
// collaborator: it accepts a statement upload and returns the engine's
// record as JSON, surfacing only unreadable documents as errors.
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/finanzas-ar/resumen/extractor"
	"github.com/finanzas-ar/resumen/extractor/common"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/extract", s.handleExtract)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleExtract handles statement extraction requests
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form with 32MB max memory
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("%sError reading file bytes: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not read file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	fileReader := bytes.NewReader(fileBytes)
	opts := s.parseExtractOptions(r)

	if opts.TextOnly {
		s.handleTextOnlyExtract(w, fileReader, handler.Filename)
		return
	}

	fileReader.Seek(0, io.SeekStart)
	resumen, err := extractor.ProcessReader(fileReader, handler.Filename)
	if err != nil {
		// The one fatal condition: the document itself could not be read.
		log.Printf("%sError processing document: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not process document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	finalOutput := extractor.CreateFinalOutput(resumen, opts.MovimientosOnly, opts.ResumenOnly)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(finalOutput)
}

// ExtractOptions holds the options for extraction
type ExtractOptions struct {
	ResumenOnly     bool
	MovimientosOnly bool
	TextOnly        bool
}

func (s *Server) parseExtractOptions(r *http.Request) ExtractOptions {
	return ExtractOptions{
		ResumenOnly:     r.FormValue("resumen_only") == "true" || r.URL.Query().Get("resumen_only") == "true",
		MovimientosOnly: r.FormValue("movimientos_only") == "true" || r.URL.Query().Get("movimientos_only") == "true",
		TextOnly:        r.FormValue("text_only") == "true" || r.URL.Query().Get("text_only") == "true",
	}
}

// handleTextOnlyExtract returns just the extracted text, useful when
// tuning patterns for an unrecognized layout.
func (s *Server) handleTextOnlyExtract(w http.ResponseWriter, reader *bytes.Reader, filename string) {
	rows, err := common.ExtractRowsFromPDFReader(reader)
	if err != nil {
		log.Printf("%sError extracting text: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not extract text from file: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"filename": filename,
		"text":     strings.Join(*rows, "\n"),
	})
}
