// Package api - API types for package generation
// These types define the contract for the /packages and /setup endpoints.
// API is stateless, idempotent, and deterministic apart from request metadata.
package api

import (
	"time"

	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/core/types"
)

// GenerateRequest is the input to POST /packages
type GenerateRequest struct {
	Profile     types.Profile     `json:"profile"`
	ProjectType types.ProjectType `json:"project_type"`
	ClientType  types.ClientType  `json:"client_type"`
	Positioning types.Positioning `json:"positioning"`

	// IncludeBreakdown adds the pricing lineage to the response
	IncludeBreakdown bool `json:"include_breakdown,omitempty"`
}

// GenerateResponse is the output of POST /packages
type GenerateResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	Category types.Category  `json:"category"`
	Currency types.Currency  `json:"currency,omitempty"`
	Packages []types.Package `json:"packages"`

	Breakdown *types.Breakdown  `json:"breakdown,omitempty"`
	Metadata  *ResponseMetadata `json:"metadata,omitempty"`
}

// SetupResponse is the output of POST /setup
type SetupResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	Currency types.Currency `json:"currency,omitempty"`
	*packages.SetupResult

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata describes how a response was produced
type ResponseMetadata struct {
	InputHash     string            `json:"input_hash"`
	EngineVersion string            `json:"engine_version"`
	DurationMs    int64             `json:"duration_ms"`
	Source        types.InputSource `json:"source"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	Error     ErrorDetail `json:"error"`
}

// ErrorDetail provides error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
