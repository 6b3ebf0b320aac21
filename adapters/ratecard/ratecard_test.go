package ratecard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fati-2700/pricingos/core/packages"
	"github.com/fati-2700/pricingos/core/types"
	apperrors "github.com/fati-2700/pricingos/internal/errors"
)

const sample = `
client_type = "enterprise"
positioning = "premium"

profile {
  base_hourly_rate     = 72.5
  target_annual_income = 90000
  currency             = "USD"
  typical_weekly_hours = 35
}

project_type "Website Design" {
  description           = "A complete website redesign project"
  complexity            = 4
  typical_duration_days = 20
}

project_type "Brand Refresh" {}
`

func TestParse(t *testing.T) {
	req, err := Parse([]byte(sample), "rates.hcl")
	require.NoError(t, err)

	assert.Equal(t, types.ClientEnterprise, req.ClientType)
	assert.Equal(t, types.PositioningPremium, req.Positioning)
	assert.Equal(t, "72.5", req.Profile.BaseHourlyRate.String())
	assert.Equal(t, "90000", req.Profile.TargetAnnualIncome.String())
	assert.Equal(t, types.CurrencyUSD, req.Profile.Currency)

	require.Len(t, req.ProjectTypes, 2)
	assert.Equal(t, types.ProjectType{
		Name:                "Website Design",
		Description:         "A complete website redesign project",
		Complexity:          4,
		TypicalDurationDays: 20,
	}, req.ProjectTypes[0])

	// omitted attributes fall back to the setup defaults
	assert.Equal(t, DefaultComplexity, req.ProjectTypes[1].Complexity)
	assert.Equal(t, DefaultDurationDays, req.ProjectTypes[1].TypicalDurationDays)
}

func TestParseKeepsExactAmounts(t *testing.T) {
	src := `
profile {
  base_hourly_rate     = 0.1
  target_annual_income = 123456789012345678901.23
  typical_weekly_hours = 37.5
}
`
	req, err := Parse([]byte(src), "exact.hcl")
	require.NoError(t, err)

	assert.Equal(t, "0.1", req.Profile.BaseHourlyRate.String())
	assert.Equal(t, "123456789012345678901.23", req.Profile.TargetAnnualIncome.String())
	assert.Equal(t, "37.5", req.Profile.TypicalWeeklyHours.String())
}

func TestParseDefaults(t *testing.T) {
	req, err := Parse([]byte(`profile { base_hourly_rate = 40 }`), "min.hcl")
	require.NoError(t, err)

	assert.Equal(t, DefaultClientType, req.ClientType)
	assert.Equal(t, DefaultPositioning, req.Positioning)
	assert.Equal(t, DefaultCurrency, req.Profile.Currency)
	assert.Empty(t, req.ProjectTypes)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `profile {`},
		{"missing profile", `client_type = "smb"`},
		{"missing rate", `profile { currency = "EUR" }`},
		{"unknown attribute", "profile { base_hourly_rate = 1 }\nhourly = 3"},
		{"fractional complexity", "profile { base_hourly_rate = 1 }\nproject_type \"Web\" { complexity = 2.5 }"},
		{"two profiles", "profile { base_hourly_rate = 1 }\nprofile { base_hourly_rate = 2 }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.TypeParsing), "got %v", err)
			assert.Contains(t, err.Error(), "bad.hcl")
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	want := Example()
	want.ProjectTypes = append(want.ProjectTypes, types.ProjectType{Name: "SEO Retainer", Complexity: 2, TypicalDurationDays: 15})

	src, err := Encode(want)
	require.NoError(t, err)

	got, err := Parse(src, "example.hcl")
	require.NoError(t, err)
	assert.True(t, want.Profile.BaseHourlyRate.Equal(got.Profile.BaseHourlyRate))
	assert.Equal(t, want.ProjectTypes, got.ProjectTypes)
	assert.Equal(t, want.ClientType, got.ClientType)
	assert.Equal(t, want.Positioning, got.Positioning)
}

func TestLoadFeedsSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	req, err := Load(path)
	require.NoError(t, err)

	res, err := packages.GenerateSetup(*req)
	require.NoError(t, err)
	require.Len(t, res.Projects, 2)
	assert.Equal(t, types.CategoryWebsite, res.Projects[0].Category)
	assert.Equal(t, types.CategoryBrand, res.Projects[1].Category)

	// 20 d * 8 h * 1.625 = 260 h, * 72.5 * 1.3 * 1.5 = 36757.5
	assert.Equal(t, int64(36758), res.Projects[0].Packages[0].Price)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.TypeNotFound, appErr.Type)
}
