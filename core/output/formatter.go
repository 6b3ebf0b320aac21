// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/fati-2700/pricingos/core/determinism"
	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatProposal is ready-to-send proposal copy, one block per package
	FormatProposal Format = "proposal"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *GenerationResult) error
}

// GenerationResult contains the complete generation output
type GenerationResult struct {
	// Currency labels every price
	Currency types.Currency `json:"currency"`

	// ClientType and Positioning the packages were priced for
	ClientType  types.ClientType  `json:"client_type"`
	Positioning types.Positioning `json:"positioning"`

	// Projects holds one entry per priced project type
	Projects []packages.ProjectPackages `json:"projects"`

	// ShowBreakdown includes pricing lineage in human-readable formats
	ShowBreakdown bool `json:"-"`

	// Metadata contains execution context
	Metadata GenerationMetadata `json:"metadata"`
}

// GenerationMetadata contains execution context
type GenerationMetadata struct {
	// Timestamp is when the generation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the generation took
	Duration string `json:"duration,omitempty"`

	// InputHash is a hash of the input
	InputHash string `json:"input_hash,omitempty"`

	// Version is the tool version
	Version string `json:"version"`

	// Source is the input source
	Source types.InputSource `json:"source"`
}

// NewResult wraps a setup result for rendering.
func NewResult(req packages.SetupRequest, res *packages.SetupResult) *GenerationResult {
	return &GenerationResult{
		Currency:    req.Profile.Currency,
		ClientType:  req.ClientType,
		Positioning: req.Positioning,
		Projects:    res.Projects,
	}
}

func (r *GenerationResult) price(amount int64) determinism.Money {
	return determinism.NewMoneyFromInt(amount, r.Currency.String())
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[formatter.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// Formats returns the registered formats, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Render looks up format and renders result with it.
func (r *Registry) Render(w io.Writer, format Format, result *GenerationResult) error {
	f, ok := r.GetFormatter(format)
	if !ok {
		return fmt.Errorf("unknown output format %q (available: %v)", format, r.Formats())
	}
	return f.Render(w, result)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// GetDefault returns the registry with every built-in formatter.
func GetDefault() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, f := range []Formatter{
			&TableFormatter{},
			&JSONFormatter{Indent: true},
			&MarkdownFormatter{},
			&ProposalFormatter{},
		} {
			_ = defaultRegistry.Register(f)
		}
	})
	return defaultRegistry
}
