// Package cmd - setup command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fati-2700/pricingos/adapters/ratecard"
	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/core/ui"
	"github.com/fati-2700/pricingos/internal/logging"
)

func newSetupCmd() *cobra.Command {
	var (
		render       renderOptions
		writeExample bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "setup <ratecard.hcl>",
		Short: "Generate packages for every project type in a rate card",
		Long: `Generate packages for up to three project types described in an HCL rate card.

A rate card holds the freelancer profile, the client type, the positioning and
one project_type block per service:

  profile {
    base_hourly_rate = 50
    currency         = "EUR"
  }

  client_type = "smb"
  positioning = "mid-market"

  project_type "Website Design" {
    complexity            = 3
    typical_duration_days = 30
  }

Examples:
  pricingos setup --init ratecard.hcl
  pricingos setup ratecard.hcl
  pricingos setup ratecard.hcl --format proposal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if writeExample {
				if err := refuseOverwrite(path, force); err != nil {
					return err
				}
				src, err := ratecard.Encode(ratecard.Example())
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, src, 0644); err != nil {
					return fmt.Errorf("writing rate card: %w", err)
				}
				ui.NewAutoWriter(cmd.OutOrStdout()).Success("Wrote %s", path)
				return nil
			}

			req, err := ratecard.Load(path)
			if err != nil {
				return err
			}
			logging.Debug("rate card loaded",
				zap.String("path", path),
				zap.Int("project_types", len(req.ProjectTypes)),
			)
			return runSetup(cmd.OutOrStdout(), req, types.SourceRateCard, render)
		},
	}
	render.register(cmd)
	cmd.Flags().BoolVar(&writeExample, "init", false, "write an example rate card to the path instead of reading it")
	cmd.Flags().BoolVar(&force, "force", false, "with --init, overwrite an existing file")
	return cmd
}
