package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alevsk/kconfig-scope/internal/ingestor"
	"github.com/alevsk/kconfig-scope/internal/logger"
	"github.com/alevsk/kconfig-scope/internal/types"
)

// maxUploadSize caps analyze request bodies (binary firmware/kernel images)
const maxUploadSize = 256 << 20 // 256 MiB

// Server represents the API server
type Server struct {
	router   *mux.Router
	ingestor *ingestor.Ingestor
}

// NewServer creates a new API server instance
func NewServer(ing *ingestor.Ingestor) *Server {
	if ing == nil {
		ing = ingestor.New(nil)
	}
	s := &Server{
		router:   mux.NewRouter(),
		ingestor: ing,
	}
	s.routes()
	return s
}

// routes sets up the API routes
func (s *Server) routes() {
	s.router.HandleFunc("/api/v1/health", s.healthCheck).Methods("GET")
	s.router.HandleFunc("/api/v1/analyze", s.analyze).Methods("POST")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start starts the API server
func (s *Server) Start(addr string) error {
	logger.Info().Str("addr", addr).Msg("starting API server")
	return http.ListenAndServe(addr, s.router)
}

// healthCheck handles the health check endpoint
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		logger.Error().Err(err).Msg("failed to encode health check response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

// analyze accepts a binary object as the request body and returns the
// analysis result record as JSON. The object name, declared MIME type and
// component hints come from the filename, mime and hint query parameters.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, "empty request body", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	obj := &types.Object{
		Name:           query.Get("filename"),
		Bytes:          body,
		DeclaredMime:   query.Get("mime"),
		ComponentHints: query["hint"],
	}
	if obj.DeclaredMime == "" {
		obj.DeclaredMime = ingestor.SniffMime(body)
	}

	result := s.ingestor.Analyze(r.Context(), obj)
	result.Source = "api"

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error().Err(err).Msg("failed to encode analyze response")
		w.WriteHeader(http.StatusInternalServerError)
	}
}
