package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders a markdown report, one section per project type.
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the report to w.
func (f *MarkdownFormatter) Render(w io.Writer, result *GenerationResult) error {
	var b strings.Builder
	for i, project := range result.Projects {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", project.ProjectType.Name)
		fmt.Fprintf(&b, "_Category: %s · Client: %s · Positioning: %s_\n\n",
			project.Category, result.ClientType, result.Positioning)

		b.WriteString("| Package | Price | Description |\n")
		b.WriteString("|---|---:|---|\n")
		for _, pkg := range project.Packages {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", pkg.PackageName, result.price(pkg.Price), pkg.ShortDescription)
		}

		for _, pkg := range project.Packages {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", pkg.PackageName, pkg.IncludesText)
		}

		if result.ShowBreakdown && project.Breakdown != nil {
			b.WriteString("\n### Pricing\n\n")
			for _, tb := range project.Breakdown.Tiers {
				fmt.Fprintf(&b, "- **%s**: `%s` = %s\n", tb.Tier, tb.Formula, result.price(tb.Price))
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
