// Package ratecard reads and writes pricing setups stored as HCL files.
//
// A rate card holds one profile, the client type and positioning to price
// for, and up to three project_type blocks labelled with the project name.
package ratecard

import (
	"fmt"
	"math/big"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/internal/errors"
)

// Defaults applied to attributes a rate card leaves out.
const (
	DefaultCurrency     = types.CurrencyEUR
	DefaultComplexity   = 3
	DefaultDurationDays = 30
	DefaultClientType   = types.ClientSMB
	DefaultPositioning  = types.PositioningMidMarket
)

type file struct {
	ClientType   *string            `hcl:"client_type,optional"`
	Positioning  *string            `hcl:"positioning,optional"`
	Profile      *profileBlock      `hcl:"profile,block"`
	ProjectTypes []projectTypeBlock `hcl:"project_type,block"`
}

// Amounts decode as big.Float so HCL's arbitrary-precision literals reach
// the decimal engine unchanged.
type profileBlock struct {
	BaseHourlyRate     *big.Float `hcl:"base_hourly_rate"`
	TargetAnnualIncome *big.Float `hcl:"target_annual_income,optional"`
	Currency           *string    `hcl:"currency,optional"`
	TypicalWeeklyHours *big.Float `hcl:"typical_weekly_hours,optional"`
}

type projectTypeBlock struct {
	Name                string  `hcl:"name,label"`
	Description         *string `hcl:"description,optional"`
	Complexity          *int    `hcl:"complexity,optional"`
	TypicalDurationDays *int    `hcl:"typical_duration_days,optional"`
}

// Load reads and decodes the rate card at path.
func Load(path string) (*packages.SetupRequest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("rate card", path)
		}
		return nil, errors.Wrapf(errors.TypeParsing, err, "failed to read rate card %s", path)
	}
	return Parse(src, path)
}

// Parse decodes rate card source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*packages.SetupRequest, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid rate card %s", filename), diags)
	}

	var f file
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid rate card %s", filename), diags)
	}
	if f.Profile == nil {
		return nil, errors.Parsing(fmt.Sprintf("invalid rate card %s", filename), &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing profile block",
			Detail:   "A rate card needs exactly one profile block.",
			Subject:  hclFile.Body.MissingItemRange().Ptr(),
		})
	}

	profile, err := f.Profile.toProfile()
	if err != nil {
		return nil, errors.Wrapf(errors.TypeParsing, err, "invalid rate card %s", filename)
	}
	req := &packages.SetupRequest{
		Profile:     profile,
		ClientType:  types.ClientType(stringOr(f.ClientType, string(DefaultClientType))),
		Positioning: types.Positioning(stringOr(f.Positioning, string(DefaultPositioning))),
	}
	for _, pt := range f.ProjectTypes {
		req.ProjectTypes = append(req.ProjectTypes, pt.toProjectType())
	}
	return req, nil
}

func (p *profileBlock) toProfile() (types.Profile, error) {
	profile := types.Profile{
		Currency: types.Currency(stringOr(p.Currency, string(DefaultCurrency))),
	}
	for _, amount := range []struct {
		name string
		src  *big.Float
		dst  *decimal.Decimal
	}{
		{"base_hourly_rate", p.BaseHourlyRate, &profile.BaseHourlyRate},
		{"target_annual_income", p.TargetAnnualIncome, &profile.TargetAnnualIncome},
		{"typical_weekly_hours", p.TypicalWeeklyHours, &profile.TypicalWeeklyHours},
	} {
		if amount.src == nil {
			continue
		}
		d, err := decimal.NewFromString(amount.src.Text('f', -1))
		if err != nil {
			return types.Profile{}, fmt.Errorf("%s: %w", amount.name, err)
		}
		*amount.dst = d
	}
	return profile, nil
}

func (b *projectTypeBlock) toProjectType() types.ProjectType {
	pt := types.ProjectType{
		Name:                b.Name,
		Description:         stringOr(b.Description, ""),
		Complexity:          DefaultComplexity,
		TypicalDurationDays: DefaultDurationDays,
	}
	if b.Complexity != nil {
		pt.Complexity = *b.Complexity
	}
	if b.TypicalDurationDays != nil {
		pt.TypicalDurationDays = *b.TypicalDurationDays
	}
	return pt
}

// Encode renders req as rate card source that Parse reads back.
func Encode(req *packages.SetupRequest) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("client_type", cty.StringVal(req.ClientType.String()))
	body.SetAttributeValue("positioning", cty.StringVal(req.Positioning.String()))
	body.AppendNewline()

	profile := body.AppendNewBlock("profile", nil).Body()
	for _, attr := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"base_hourly_rate", req.Profile.BaseHourlyRate},
		{"target_annual_income", req.Profile.TargetAnnualIncome},
		{"typical_weekly_hours", req.Profile.TypicalWeeklyHours},
	} {
		v, err := cty.ParseNumberVal(attr.value.String())
		if err != nil {
			return nil, errors.Internal("failed to encode "+attr.name, err)
		}
		profile.SetAttributeValue(attr.name, v)
	}
	currency := req.Profile.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	profile.SetAttributeValue("currency", cty.StringVal(currency.String()))

	for _, pt := range req.ProjectTypes {
		body.AppendNewline()
		block := body.AppendNewBlock("project_type", []string{pt.Name}).Body()
		if pt.Description != "" {
			block.SetAttributeValue("description", cty.StringVal(pt.Description))
		}
		block.SetAttributeValue("complexity", cty.NumberIntVal(int64(pt.Complexity)))
		block.SetAttributeValue("typical_duration_days", cty.NumberIntVal(int64(pt.TypicalDurationDays)))
	}
	return f.Bytes(), nil
}

// Example is a starter rate card with the defaults used by the setup flow.
func Example() *packages.SetupRequest {
	return &packages.SetupRequest{
		Profile: types.Profile{
			BaseHourlyRate:     decimal.NewFromInt(50),
			TargetAnnualIncome: decimal.NewFromInt(80000),
			Currency:           DefaultCurrency,
			TypicalWeeklyHours: decimal.NewFromInt(40),
		},
		ProjectTypes: []types.ProjectType{{
			Name:                "Website Design",
			Description:         "A complete website redesign project",
			Complexity:          DefaultComplexity,
			TypicalDurationDays: DefaultDurationDays,
		}},
		ClientType:  DefaultClientType,
		Positioning: DefaultPositioning,
	}
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
