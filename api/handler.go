// Package api - HTTP handler for package generation
// This handler wraps the engine - it contains NO pricing logic.
// All logic is delegated to core packages.
package api

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/internal/errors"
	"github.com/fati-2700/pricingos/internal/metrics"
	"github.com/fati-2700/pricingos/internal/tracing"
)

// Handler runs generation requests against the engine
type Handler struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a new handler
func NewHandler(logger *zap.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, metrics: m}
}

func (h *Handler) generate(ctx context.Context, requestID string, req *GenerateRequest) (*GenerateResponse, error) {
	_, span := tracing.Tracer().Start(ctx, "packages.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("request_id", requestID),
		attribute.String("project_type", req.ProjectType.Name),
		attribute.String("client_type", req.ClientType.String()),
		attribute.String("positioning", req.Positioning.String()),
	)

	pkgs, bd, err := packages.GenerateWithBreakdown(req.Profile, req.ProjectType, req.ClientType, req.Positioning)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("category", bd.Category.String()))

	resp := &GenerateResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Category:  bd.Category,
		Currency:  req.Profile.Currency,
		Packages:  pkgs,
	}
	if req.IncludeBreakdown {
		resp.Breakdown = bd
	}

	h.metrics.PackagesGenerated.WithLabelValues(bd.Category.String(), req.ClientType.String(), req.Positioning.String()).Inc()
	h.logger.Info("packages generated",
		zap.String("request_id", requestID),
		zap.String("project_type", req.ProjectType.Name),
		zap.String("category", bd.Category.String()),
		zap.Int64("starter", pkgs[0].Price),
		zap.Int64("premium", pkgs[2].Price),
	)
	return resp, nil
}

func (h *Handler) setup(ctx context.Context, requestID string, req *packages.SetupRequest) (*SetupResponse, error) {
	_, span := tracing.Tracer().Start(ctx, "packages.setup")
	defer span.End()
	span.SetAttributes(
		attribute.String("request_id", requestID),
		attribute.Int("project_types", len(req.ProjectTypes)),
	)

	res, err := packages.GenerateSetup(*req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	for _, p := range res.Projects {
		h.metrics.PackagesGenerated.WithLabelValues(p.Category.String(), req.ClientType.String(), req.Positioning.String()).Inc()
	}
	h.logger.Info("setup generated",
		zap.String("request_id", requestID),
		zap.Int("project_types", len(res.Projects)),
		zap.Ints("skipped", res.Skipped),
	)

	return &SetupResponse{
		RequestID:   requestID,
		Timestamp:   time.Now().UTC(),
		Currency:    req.Profile.Currency,
		SetupResult: res,
	}, nil
}

var errorCodes = []struct {
	err  error
	code string
}{
	{packages.ErrInvalidComplexity, "INVALID_COMPLEXITY"},
	{packages.ErrInvalidDuration, "INVALID_DURATION"},
	{packages.ErrInvalidRate, "INVALID_RATE"},
	{packages.ErrInvalidClientType, "INVALID_CLIENT_TYPE"},
	{packages.ErrInvalidPositioning, "INVALID_POSITIONING"},
	{packages.ErrTooManyProjectTypes, "TOO_MANY_PROJECT_TYPES"},
	{packages.ErrNoProjectTypes, "NO_PROJECT_TYPES"},
	{packages.ErrPriceOverflow, "PRICE_OVERFLOW"},
}

// classify maps an engine error onto an API error code and HTTP status.
func classify(err error) (string, int) {
	for _, ec := range errorCodes {
		if stderrors.Is(err, ec.err) {
			return ec.code, http.StatusUnprocessableEntity
		}
	}
	if errors.IsType(err, errors.TypeInput) {
		return "VALIDATION_ERROR", http.StatusUnprocessableEntity
	}
	return "ENGINE_ERROR", http.StatusInternalServerError
}

// errorContext collects the context of every *errors.Error in the chain.
func errorContext(err error) map[string]interface{} {
	var ctx map[string]interface{}
	for err != nil {
		var e *errors.Error
		if !stderrors.As(err, &e) {
			break
		}
		for k, v := range e.Context {
			if ctx == nil {
				ctx = make(map[string]interface{})
			}
			if _, exists := ctx[k]; !exists {
				ctx[k] = v
			}
		}
		err = e.Cause
	}
	return ctx
}
