package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fati-2700/pricingos/core/packages"
)

const tableWidth = 73

// TableFormatter renders boxed tables for terminals.
type TableFormatter struct{}

// Format returns FormatCLI
func (f *TableFormatter) Format() Format { return FormatCLI }

// Render writes one box per project type.
func (f *TableFormatter) Render(w io.Writer, result *GenerationResult) error {
	bw := &errWriter{w: w}
	for i, project := range result.Projects {
		if i > 0 {
			bw.println("")
		}
		bw.println("┌" + strings.Repeat("─", tableWidth) + "┐")
		bw.row(fmt.Sprintf("%s (%s)", project.ProjectType.Name, project.Category), "")
		bw.row(fmt.Sprintf("%s clients, %s positioning", result.ClientType, result.Positioning), "")
		bw.println("├" + strings.Repeat("─", tableWidth) + "┤")

		for _, pkg := range project.Packages {
			bw.row(pkg.PackageName.String(), result.price(pkg.Price).String())
			bw.row("  "+pkg.ShortDescription, "")
			for _, item := range packages.ParseIncludes(pkg.IncludesText) {
				bw.row("    └─ "+item, "")
			}
		}

		if result.ShowBreakdown && project.Breakdown != nil {
			bd := project.Breakdown
			bw.println("├" + strings.Repeat("─", tableWidth) + "┤")
			bw.row("Complexity multiplier", bd.ComplexityMultiplier.String())
			bw.row("Base hours", bd.BaseHours.String())
			bw.row("Client multiplier", bd.ClientMultiplier.String())
			bw.row("Positioning multiplier", bd.PositioningMultiplier.String())
			bw.row("Base price", bd.BasePrice.StringFixed(2))
		}
		bw.println("└" + strings.Repeat("─", tableWidth) + "┘")
	}
	return bw.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}

func (e *errWriter) row(label, value string) {
	e.println(fmt.Sprintf("│ %-50s %20s │", truncate(label, 50), truncate(value, 20)))
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
