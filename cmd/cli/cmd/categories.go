// Package cmd - categories command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/core/ui"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List copy categories and the deliverables of each tier",
		Long: `List the copy categories a project type name can fall into.

The first category whose keyword appears in the name wins, in the order listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := ui.NewAutoWriter(cmd.OutOrStdout())
			for i, c := range packages.Categories() {
				if i > 0 {
					w.Println("")
				}
				keywords := "fallback"
				if len(c.Keywords) > 0 {
					keywords = strings.Join(c.Keywords, ", ")
				}
				w.SubHeader(fmt.Sprintf("%s (%s)", c.Category, keywords))

				table := w.NewTable("Package", "Adds")
				table.AddRow(types.TierStarter.String(), strings.Join(c.BaseItems, ", "))
				table.AddRow(types.TierStandard.String(), strings.Join(c.StandardItems, ", "))
				table.AddRow(types.TierPremium.String(), strings.Join(c.PremiumItems, ", "))
				table.Render()
			}
			w.Println("")
			w.Muted("Standard and Premium also include every item of the cheaper packages.")
			return nil
		},
	}
}
