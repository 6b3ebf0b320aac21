package output

import (
	"io"

	"github.com/goccy/go-json"
)

// JSONFormatter renders the result as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render encodes result to w.
func (f *JSONFormatter) Render(w io.Writer, result *GenerationResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
