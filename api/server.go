// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine invocation,
// and output serialization. It never performs charge logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pharmacy-cost/internal/logging"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		handler: NewHandler(version),
		mux:     http.NewServeMux(),
		version: version,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoint
	s.mux.HandleFunc("POST /cost", s.handleCost)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /vendors", s.handleVendors)
}

// handleCost handles POST /cost
func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Prices == nil {
		s.writeError(w, "VALIDATION_ERROR", "prices is required", http.StatusBadRequest)
		return
	}

	logging.Info("processing delivery cost request",
		zap.String("request_id", requestID),
		zap.Int("entries", len(req.Prices)))

	// The engine is total: no error path exists here
	resp := s.handler.execute(requestID, &req)
	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "pharmacy-cost",
		"api_version": "v1",
	}, http.StatusOK)
}

// handleVendors handles GET /vendors
func (s *Server) handleVendors(w http.ResponseWriter, r *http.Request) {
	vendors := vendorCatalog()
	s.writeJSON(w, map[string]interface{}{
		"vendors": vendors,
		"count":   len(vendors),
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": ErrorDetail{Code: code, Message: message},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
