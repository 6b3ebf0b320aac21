// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration, output serialization.
// The API NEVER performs pricing logic.
package api

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/fati-2700/pricingos/core/determinism"
	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/internal/config"
	"github.com/fati-2700/pricingos/internal/errors"
	"github.com/fati-2700/pricingos/internal/logging"
	"github.com/fati-2700/pricingos/internal/metrics"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	root    http.Handler
	version string
	cfg     config.ServerConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
	http    *http.Server
}

// NewServer creates a new API server
func NewServer(version string, cfg config.ServerConfig) *Server {
	return NewServerWithLogger(version, cfg, logging.Logger)
}

// NewServerWithLogger creates a new API server that logs to logger
func NewServerWithLogger(version string, cfg config.ServerConfig, logger *zap.Logger) *Server {
	m := metrics.New()
	s := &Server{
		handler: NewHandler(logger, m),
		mux:     http.NewServeMux(),
		version: version,
		cfg:     cfg,
		logger:  logger,
		metrics: m,
	}
	s.registerRoutes()
	s.root = otelhttp.NewHandler(s.mux, "pricingos-api",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /packages", s.handleGenerate)
	s.mux.HandleFunc("POST /setup", s.handleSetup)

	// Supporting endpoints
	s.mux.HandleFunc("GET /categories", s.handleCategories)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	if s.cfg.MetricsEnabled {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

// handleGenerate handles POST /packages
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	defer s.observe("/packages", start)

	var req GenerateRequest
	if !s.decode(w, r, requestID, "/packages", generateSchema, &req) {
		return
	}

	result, err := s.handler.generate(r.Context(), requestID, &req)
	if err != nil {
		s.writeEngineError(w, requestID, "/packages", err)
		return
	}

	result.Metadata = s.metadata(&req, start)
	s.writeJSON(w, result, http.StatusOK)
}

// handleSetup handles POST /setup
func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	defer s.observe("/setup", start)

	var req packages.SetupRequest
	if !s.decode(w, r, requestID, "/setup", setupSchema, &req) {
		return
	}

	result, err := s.handler.setup(r.Context(), requestID, &req)
	if err != nil {
		s.writeEngineError(w, requestID, "/setup", err)
		return
	}

	result.Metadata = s.metadata(&req, start)
	s.writeJSON(w, result, http.StatusOK)
}

// handleCategories handles GET /categories
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"categories":   packages.Categories(),
		"client_types": types.ClientTypes(),
		"positionings": types.Positionings(),
	}, http.StatusOK)
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
		"engine":      "pricingos",
		"api_version": "v1",
	}, http.StatusOK)
}

// decode reads the body, checks it against schema and unmarshals it into v.
// On failure it writes the error response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, requestID, endpoint string, schema *gojsonschema.Schema, v interface{}) bool {
	fail := func(code string, err error) bool {
		s.metrics.GenerationsFailed.WithLabelValues(endpoint, code).Inc()
		s.writeError(w, requestID, ErrorDetail{Code: code, Message: err.Error()}, http.StatusBadRequest)
		return false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		return fail("INVALID_JSON", err)
	}

	if err := validateBody(schema, body); err != nil {
		var violation *schemaViolation
		if stderrors.As(err, &violation) {
			return fail("SCHEMA_VIOLATION", err)
		}
		return fail("INVALID_JSON", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fail("INVALID_JSON", err)
	}
	return true
}

func (s *Server) writeEngineError(w http.ResponseWriter, requestID, endpoint string, err error) {
	code, status := classify(err)
	s.metrics.GenerationsFailed.WithLabelValues(endpoint, code).Inc()
	if status >= http.StatusInternalServerError {
		s.logger.Error("generation failed", zap.String("request_id", requestID), zap.Error(err))
	} else {
		s.logger.Debug("generation rejected", zap.String("request_id", requestID), zap.String("code", code), zap.Error(err))
	}
	s.writeError(w, requestID, ErrorDetail{
		Code:    code,
		Message: err.Error(),
		Context: errorContext(err),
	}, status)
}

func (s *Server) metadata(req interface{}, start time.Time) *ResponseMetadata {
	return &ResponseMetadata{
		InputHash:     computeInputHash(req),
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
		Source:        types.SourceAPI,
	}
}

func (s *Server) observe(endpoint string, start time.Time) {
	s.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, detail ErrorDetail, status int) {
	s.writeJSON(w, ErrorResponse{RequestID: requestID, Error: detail}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.root.ServeHTTP(w, r)
}

// ListenAndServe starts the server and blocks until ctx is cancelled or
// the listener fails. Cancelling ctx shuts the server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.http = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", zap.String("addr", s.cfg.Addr), zap.String("version", s.version))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Internal("api server stopped", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("api shutting down")
		return s.http.Shutdown(shutdownCtx)
	}
}

// Helper functions

func computeInputHash(req interface{}) string {
	data, _ := json.Marshal(req)
	return determinism.ComputeHash(data).Hex()
}
