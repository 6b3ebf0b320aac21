package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fati-2700/pricingos/core/types"
)

const proposalSeparator = "\n\n========================================\n\n"

// ProposalFormatter renders each package as copy a freelancer can paste
// into a client email.
type ProposalFormatter struct{}

// Format returns FormatProposal
func (f *ProposalFormatter) Format() Format { return FormatProposal }

// Render writes every package's proposal text, separated by a rule.
func (f *ProposalFormatter) Render(w io.Writer, result *GenerationResult) error {
	var blocks []string
	for _, project := range result.Projects {
		for _, pkg := range project.Packages {
			blocks = append(blocks, ProposalText(project.ProjectType.Name, pkg.Package, result.Currency))
		}
	}
	_, err := io.WriteString(w, strings.Join(blocks, proposalSeparator)+"\n")
	return err
}

// ProposalText is the proposal copy of a single package.
func ProposalText(projectTypeName string, pkg types.Package, currency types.Currency) string {
	if projectTypeName == "" {
		projectTypeName = "Project"
	}
	price := fmt.Sprintf("%d", pkg.Price)
	if currency != "" {
		price += " " + currency.String()
	}
	return fmt.Sprintf(`%s - %s Package

%s

Price: %s

What's Included:
%s

---

Ready to get started? Let me know if you have any questions!`,
		projectTypeName, pkg.PackageName, pkg.ShortDescription, price, pkg.IncludesText)
}
