package packages

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fati-2700/pricingos/core/types"
)

func profileWithRate(rate string) types.Profile {
	return types.Profile{
		BaseHourlyRate:     decimal.RequireFromString(rate),
		TargetAnnualIncome: decimal.NewFromInt(80000),
		Currency:           types.CurrencyEUR,
		TypicalWeeklyHours: decimal.NewFromInt(40),
	}
}

func websiteDesign() types.ProjectType {
	return types.ProjectType{Name: "Website Design", Complexity: 3, TypicalDurationDays: 30}
}

// TestGenerateWebsiteDesignScenario walks the reference scenario end to end
func TestGenerateWebsiteDesignScenario(t *testing.T) {
	pkgs, err := Generate(profileWithRate("50"), websiteDesign(), types.ClientSMB, types.PositioningMidMarket)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pkgs) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(pkgs))
	}

	want := []struct {
		name  types.Tier
		price int64
		desc  string
	}{
		{types.TierStarter, 15000, "Essential Website Design package with core features"},
		{types.TierStandard, 24000, "Complete Website Design solution with all essential features"},
		{types.TierPremium, 37500, "Premium Website Design package with extended features and support"},
	}
	for i, w := range want {
		if pkgs[i].PackageName != w.name {
			t.Errorf("package %d: name %s, want %s", i, pkgs[i].PackageName, w.name)
		}
		if pkgs[i].Price != w.price {
			t.Errorf("%s: price %d, want %d", w.name, pkgs[i].Price, w.price)
		}
		if pkgs[i].ShortDescription != w.desc {
			t.Errorf("%s: description %q, want %q", w.name, pkgs[i].ShortDescription, w.desc)
		}
	}

	wantStarter := "• Responsive design\n• Up to 5 pages\n• Basic SEO setup"
	if pkgs[0].IncludesText != wantStarter {
		t.Errorf("Starter includes:\n%s\nwant:\n%s", pkgs[0].IncludesText, wantStarter)
	}
}

func TestGeneratePrices(t *testing.T) {
	tests := []struct {
		name        string
		rate        string
		pt          types.ProjectType
		client      types.ClientType
		positioning types.Positioning
		want        [3]int64
	}{
		{
			name:        "startup budget brand",
			rate:        "50",
			pt:          types.ProjectType{Name: "Brand Identity", Complexity: 1, TypicalDurationDays: 10},
			client:      types.ClientStartup,
			positioning: types.PositioningBudget,
			want:        [3]int64{1120, 1792, 2800},
		},
		{
			name:        "enterprise premium hardest",
			rate:        "100",
			pt:          types.ProjectType{Name: "Platform Build", Complexity: 5, TypicalDurationDays: 5},
			client:      types.ClientEnterprise,
			positioning: types.PositioningPremium,
			want:        [3]int64{15600, 24960, 39000},
		},
		{
			// 7 h * 1.5 = 10.5 rounds away from zero
			name:        "half rounds up",
			rate:        "1.5",
			pt:          types.ProjectType{Name: "SEO Audit", Complexity: 2, TypicalDurationDays: 1},
			client:      types.ClientSMB,
			positioning: types.PositioningMidMarket,
			want:        [3]int64{11, 17, 26},
		},
		{
			// 0.875 is not the 0.75 some documentation quotes for complexity 2
			name:        "complexity two uses linear multiplier",
			rate:        "10",
			pt:          types.ProjectType{Name: "Copywriting", Complexity: 2, TypicalDurationDays: 10},
			client:      types.ClientSMB,
			positioning: types.PositioningMidMarket,
			want:        [3]int64{700, 1120, 1750},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgs, err := Generate(profileWithRate(tt.rate), tt.pt, tt.client, tt.positioning)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			for i, p := range pkgs {
				if p.Price != tt.want[i] {
					t.Errorf("%s: price %d, want %d", p.PackageName, p.Price, tt.want[i])
				}
			}
		})
	}
}

func TestComplexityMultiplier(t *testing.T) {
	want := []string{"0.5", "0.875", "1.25", "1.625", "2"}
	for c := MinComplexity; c <= MaxComplexity; c++ {
		got := ComplexityMultiplier(c)
		if !got.Equal(decimal.RequireFromString(want[c-1])) {
			t.Errorf("complexity %d: multiplier %s, want %s", c, got, want[c-1])
		}
	}
}

// TestGenerateIsDeterministic proves identical inputs give identical output
func TestGenerateIsDeterministic(t *testing.T) {
	first, err := Generate(profileWithRate("72.5"), websiteDesign(), types.ClientEnterprise, types.PositioningBudget)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(profileWithRate("72.5"), websiteDesign(), types.ClientEnterprise, types.PositioningBudget)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("outputs differ:\n%+v\n%+v", first, second)
	}
}

func TestGenerateConcurrentCallsAgree(t *testing.T) {
	want, err := Generate(profileWithRate("50"), websiteDesign(), types.ClientSMB, types.PositioningMidMarket)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([][]types.Package, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Generate(profileWithRate("50"), websiteDesign(), types.ClientSMB, types.PositioningMidMarket)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("goroutine %d got %+v", i, got)
		}
	}
}

// TestPricesStrictlyIncreaseAcrossTiers sweeps every enum and complexity combination
func TestPricesStrictlyIncreaseAcrossTiers(t *testing.T) {
	for c := MinComplexity; c <= MaxComplexity; c++ {
		for _, client := range types.ClientTypes() {
			for _, positioning := range types.Positionings() {
				for _, days := range []int{1, 7, 30} {
					pt := types.ProjectType{Name: "Consulting", Complexity: c, TypicalDurationDays: days}
					pkgs, err := Generate(profileWithRate("1"), pt, client, positioning)
					if err != nil {
						t.Fatalf("Generate(%d, %s, %s, %d): %v", c, client, positioning, days, err)
					}
					if !(pkgs[0].Price < pkgs[1].Price && pkgs[1].Price < pkgs[2].Price) {
						t.Errorf("complexity %d %s %s %dd: prices %d/%d/%d not increasing",
							c, client, positioning, days, pkgs[0].Price, pkgs[1].Price, pkgs[2].Price)
					}
				}
			}
		}
	}
}

func TestGenerateOrderAndNames(t *testing.T) {
	pkgs, err := Generate(profileWithRate("40"), types.ProjectType{Name: "Logo", Complexity: 1, TypicalDurationDays: 2}, types.ClientStartup, types.PositioningPremium)
	if err != nil {
		t.Fatal(err)
	}
	for i, tier := range types.Tiers() {
		if pkgs[i].PackageName != tier {
			t.Errorf("position %d: %s, want %s", i, pkgs[i].PackageName, tier)
		}
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	valid := websiteDesign()

	tests := []struct {
		name        string
		rate        string
		pt          types.ProjectType
		client      types.ClientType
		positioning types.Positioning
		want        error
	}{
		{"complexity zero", "50", types.ProjectType{Name: "Web", Complexity: 0, TypicalDurationDays: 30}, types.ClientSMB, types.PositioningMidMarket, ErrInvalidComplexity},
		{"complexity six", "50", types.ProjectType{Name: "Web", Complexity: 6, TypicalDurationDays: 30}, types.ClientSMB, types.PositioningMidMarket, ErrInvalidComplexity},
		{"duration zero", "50", types.ProjectType{Name: "Web", Complexity: 3, TypicalDurationDays: 0}, types.ClientSMB, types.PositioningMidMarket, ErrInvalidDuration},
		{"duration negative", "50", types.ProjectType{Name: "Web", Complexity: 3, TypicalDurationDays: -4}, types.ClientSMB, types.PositioningMidMarket, ErrInvalidDuration},
		{"rate zero", "0", valid, types.ClientSMB, types.PositioningMidMarket, ErrInvalidRate},
		{"rate negative", "-25", valid, types.ClientSMB, types.PositioningMidMarket, ErrInvalidRate},
		{"unknown client", "50", valid, types.ClientType("agency"), types.PositioningMidMarket, ErrInvalidClientType},
		{"unknown positioning", "50", valid, types.ClientSMB, types.Positioning("luxury"), ErrInvalidPositioning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgs, err := Generate(profileWithRate(tt.rate), tt.pt, tt.client, tt.positioning)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error %v, want %v", err, tt.want)
			}
			if pkgs != nil {
				t.Errorf("expected no packages on error, got %d", len(pkgs))
			}
		})
	}
}

func TestExplainMatchesGenerate(t *testing.T) {
	profile := profileWithRate("50")
	pt := websiteDesign()

	pkgs, bd, err := GenerateWithBreakdown(profile, pt, types.ClientSMB, types.PositioningMidMarket)
	if err != nil {
		t.Fatal(err)
	}
	if bd.Category != types.CategoryWebsite {
		t.Errorf("category %s, want website", bd.Category)
	}
	if !bd.BaseHours.Equal(decimal.NewFromInt(300)) {
		t.Errorf("base hours %s, want 300", bd.BaseHours)
	}
	if !bd.BasePrice.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("base price %s, want 15000", bd.BasePrice)
	}
	for i, tb := range bd.Tiers {
		if tb.Price != pkgs[i].Price {
			t.Errorf("%s: breakdown price %d, package price %d", tb.Tier, tb.Price, pkgs[i].Price)
		}
		if tb.Formula == "" {
			t.Errorf("%s: empty formula", tb.Tier)
		}
	}
}

func TestGenerateRejectsPricesBeyondInt64(t *testing.T) {
	pt := types.ProjectType{Name: "Web Platform", Complexity: 5, TypicalDurationDays: 365}

	for _, rate := range []string{"1e15", "1e18"} {
		pkgs, err := Generate(profileWithRate(rate), pt, types.ClientEnterprise, types.PositioningPremium)
		if !errors.Is(err, ErrPriceOverflow) {
			t.Errorf("rate %s: expected ErrPriceOverflow, got %v (%v)", rate, err, pkgs)
		}
	}

	// 5840 h * 1e12 * 1.3 * 1.5 * 2.5 still fits.
	pkgs, err := Generate(profileWithRate("1e12"), pt, types.ClientEnterprise, types.PositioningPremium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []int64{11388000000000000, 18220800000000000, 28470000000000000}
	for i, p := range pkgs {
		if p.Price != want[i] {
			t.Errorf("%s: price = %d, want %d", p.PackageName, p.Price, want[i])
		}
	}
}

func TestGenerateTinyRateRoundsToZero(t *testing.T) {
	pt := types.ProjectType{Name: "Logo Tweak", Complexity: 1, TypicalDurationDays: 1}
	pkgs, err := Generate(profileWithRate("0.05"), pt, types.ClientStartup, types.PositioningBudget)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, p := range pkgs {
		if p.Price != 0 {
			t.Errorf("%s: price = %d, want 0", p.PackageName, p.Price)
		}
	}
}
