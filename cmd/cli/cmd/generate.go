// Package cmd - generate and explain commands
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fati-2700/pricingos/core/determinism"
	"github.com/fati-2700/pricingos/core/output"
	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/core/ui"
	"github.com/fati-2700/pricingos/internal/config"
	"github.com/fati-2700/pricingos/internal/logging"
)

// projectOptions are the flags that describe a single project type.
type projectOptions struct {
	rate        string
	currency    string
	name        string
	description string
	complexity  int
	days        int
	client      string
	positioning string
}

func (o *projectOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.rate, "rate", "", "base hourly rate (required)")
	cmd.Flags().StringVar(&o.currency, "currency", "", "currency label (default from config)")
	cmd.Flags().StringVar(&o.name, "name", "", "project type name, e.g. \"Website Design\" (required)")
	cmd.Flags().StringVar(&o.description, "description", "", "project type description")
	cmd.Flags().IntVar(&o.complexity, "complexity", 0, "complexity from 1 to 5 (default from config)")
	cmd.Flags().IntVar(&o.days, "days", 0, "typical duration in working days (default from config)")
	cmd.Flags().StringVar(&o.client, "client", "", "client type: startup, smb, enterprise (default from config)")
	cmd.Flags().StringVar(&o.positioning, "positioning", "", "positioning: budget, mid-market, premium (default from config)")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("name")
}

// request resolves the flags against the configured defaults.
func (o *projectOptions) request(cmd *cobra.Command) (*packages.SetupRequest, error) {
	d := config.Get().Defaults

	rate, err := decimal.NewFromString(o.rate)
	if err != nil {
		return nil, fmt.Errorf("invalid --rate %q: %w", o.rate, err)
	}

	pt := types.ProjectType{
		Name:                o.name,
		Description:         o.description,
		Complexity:          d.Complexity,
		TypicalDurationDays: d.TypicalDurationDays,
	}
	if cmd.Flags().Changed("complexity") {
		pt.Complexity = o.complexity
	}
	if cmd.Flags().Changed("days") {
		pt.TypicalDurationDays = o.days
	}

	req := &packages.SetupRequest{
		Profile: types.Profile{
			BaseHourlyRate: rate,
			Currency:       types.Currency(strings.ToUpper(orDefault(o.currency, string(d.Currency)))),
		},
		ProjectTypes: []types.ProjectType{pt},
		ClientType:   d.ClientType,
		Positioning:  d.Positioning,
	}
	// Unknown values are passed through for the engine to reject.
	if o.client != "" {
		req.ClientType, _ = types.ParseClientType(o.client)
	}
	if o.positioning != "" {
		req.Positioning, _ = types.ParsePositioning(o.positioning)
	}
	return req, nil
}

// renderOptions select the output format.
type renderOptions struct {
	format    string
	breakdown bool
}

func (o *renderOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format (cli, json, markdown, proposal; default from config)")
	cmd.Flags().BoolVar(&o.breakdown, "breakdown", false, "show the pricing breakdown")
}

func newGenerateCmd() *cobra.Command {
	var (
		project projectOptions
		render  renderOptions
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Starter, Standard and Premium packages for one project type",
		Long: `Generate three packages for one project type.

Unset options fall back to the defaults in the config file.

Examples:
  pricingos generate --rate 50 --name "Website Design"
  pricingos generate --rate 50 --name "SEO Audit" --complexity 2 --days 5
  pricingos generate --rate 120 --name "Brand Identity" --client enterprise --positioning premium --format proposal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := project.request(cmd)
			if err != nil {
				return err
			}
			return runSetup(cmd.OutOrStdout(), req, types.SourceCLI, render)
		},
	}
	project.register(cmd)
	render.register(cmd)
	return cmd
}

func newExplainCmd() *cobra.Command {
	var (
		project projectOptions
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show how the package prices are derived",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := project.request(cmd)
			if err != nil {
				return err
			}
			bd, err := packages.Explain(req.Profile, req.ProjectTypes[0], req.ClientType, req.Positioning)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(bd)
			}
			return writeBreakdown(cmd.OutOrStdout(), req, bd)
		},
	}
	project.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the breakdown as JSON")
	return cmd
}

func writeBreakdown(out io.Writer, req *packages.SetupRequest, bd *types.Breakdown) error {
	pt := req.ProjectTypes[0]
	currency := req.Profile.Currency.String()
	w := ui.NewAutoWriter(out)

	w.Header(fmt.Sprintf("%s (%s)", pt.Name, bd.Category))

	steps := w.NewTable("Step", "Formula", "Value")
	steps.AddRow("Complexity multiplier", fmt.Sprintf("0.5 + (%d - 1) * 0.375", pt.Complexity), bd.ComplexityMultiplier.String())
	steps.AddRow("Base hours", fmt.Sprintf("%d days * %d h * %s", pt.TypicalDurationDays, packages.HoursPerDay, bd.ComplexityMultiplier), bd.BaseHours.String())
	steps.AddRow("Client multiplier", req.ClientType.String(), bd.ClientMultiplier.String())
	steps.AddRow("Positioning multiplier", req.Positioning.String(), bd.PositioningMultiplier.String())
	steps.AddRow("Base price", fmt.Sprintf("%s h * %s * %s * %s", bd.BaseHours, bd.HourlyRate, bd.ClientMultiplier, bd.PositioningMultiplier),
		determinism.NewMoneyFromDecimal(bd.BasePrice, currency).String())
	steps.Render()
	w.Println("")

	tiers := w.NewTable("Package", "Formula", "Price")
	for _, tb := range bd.Tiers {
		tiers.AddRow(tb.Tier.String(), tb.Formula, determinism.NewMoneyFromInt(tb.Price, currency).String())
	}
	tiers.Render()
	return nil
}

// runSetup generates every project type of req and renders the result.
func runSetup(w io.Writer, req *packages.SetupRequest, source types.InputSource, render renderOptions) error {
	start := time.Now()
	cfg := config.Get()

	res, err := packages.GenerateSetup(*req)
	if err != nil {
		return err
	}
	logging.Debug("packages generated",
		zap.Int("project_types", len(res.Projects)),
		logging.Since(start),
	)
	if len(res.Skipped) > 0 {
		logging.Warn("skipped project types with a blank name", zap.Ints("indexes", res.Skipped))
	}

	result := output.NewResult(*req, res)
	result.ShowBreakdown = render.breakdown || cfg.Output.ShowBreakdown
	result.Metadata = output.GenerationMetadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Duration:  time.Since(start).String(),
		InputHash: inputHash(req),
		Version:   Version,
		Source:    source,
	}

	format := output.Format(orDefault(render.format, cfg.Output.DefaultFormat))
	return output.GetDefault().Render(w, format, result)
}

func inputHash(req *packages.SetupRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return determinism.ComputeHash(data).Hex()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func refuseOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return nil
}
