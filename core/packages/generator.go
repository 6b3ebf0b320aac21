// Package packages turns a freelancer's rate profile and a project type into
// three priced service packages (Starter, Standard, Premium) with copy.
//
// Everything here is a pure function of its arguments: no I/O, no clock, no
// shared mutable state. Calls may run concurrently without synchronization.
package packages

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/internal/errors"
)

var (
	hoursPerDay = decimal.NewFromInt(HoursPerDay)
	maxPrice    = decimal.NewFromInt(math.MaxInt64)
)

// Generate prices the three packages for one project type. The result always
// has exactly three entries in the order Starter, Standard, Premium. On
// invalid input it returns nil and an error wrapping one of the Err* values.
func Generate(profile types.Profile, pt types.ProjectType, client types.ClientType, positioning types.Positioning) ([]types.Package, error) {
	bd, err := Explain(profile, pt, client, positioning)
	if err != nil {
		return nil, err
	}
	return build(pt, bd), nil
}

// GenerateWithBreakdown is Generate plus the pricing lineage.
func GenerateWithBreakdown(profile types.Profile, pt types.ProjectType, client types.ClientType, positioning types.Positioning) ([]types.Package, *types.Breakdown, error) {
	bd, err := Explain(profile, pt, client, positioning)
	if err != nil {
		return nil, nil, err
	}
	return build(pt, bd), bd, nil
}

// Explain returns the intermediate values behind the package prices.
func Explain(profile types.Profile, pt types.ProjectType, client types.ClientType, positioning types.Positioning) (*types.Breakdown, error) {
	if err := validate(profile, pt, client, positioning); err != nil {
		return nil, err
	}

	complexity := ComplexityMultiplier(pt.Complexity)
	baseHours := decimal.NewFromInt(int64(pt.TypicalDurationDays)).Mul(hoursPerDay).Mul(complexity)
	clientM, _ := ClientMultiplier(client)
	positioningM, _ := PositioningMultiplier(positioning)
	basePrice := baseHours.Mul(profile.BaseHourlyRate).Mul(clientM).Mul(positioningM)

	// Premium carries the largest multiplier, so it bounds every tier price.
	top, _ := TierMultiplier(types.TierPremium)
	if basePrice.Mul(top).Round(0).GreaterThan(maxPrice) {
		return nil, errors.Wrapf(errors.TypeInput, ErrPriceOverflow, "project type %q", pt.Name).
			WithContext("base_price", basePrice.String())
	}

	bd := &types.Breakdown{
		Category:              Classify(pt.Name),
		ComplexityMultiplier:  complexity,
		BaseHours:             baseHours,
		HourlyRate:            profile.BaseHourlyRate,
		ClientMultiplier:      clientM,
		PositioningMultiplier: positioningM,
		BasePrice:             basePrice,
		Tiers:                 make([]types.TierBreakdown, 0, 3),
	}

	for _, tier := range types.Tiers() {
		m, _ := TierMultiplier(tier)
		bd.Tiers = append(bd.Tiers, types.TierBreakdown{
			Tier:       tier,
			Multiplier: m,
			Price:      roundPrice(basePrice.Mul(m)),
			Formula: fmt.Sprintf("%s h * %s/h * %s (client) * %s (positioning) * %s (tier)",
				baseHours, profile.BaseHourlyRate, clientM, positioningM, m),
		})
	}
	return bd, nil
}

// roundPrice rounds half away from zero to a whole amount.
func roundPrice(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func build(pt types.ProjectType, bd *types.Breakdown) []types.Package {
	set := lookup(pt.Name)
	out := make([]types.Package, 0, len(bd.Tiers))
	for _, tb := range bd.Tiers {
		out = append(out, types.Package{
			PackageName:      tb.Tier,
			Price:            tb.Price,
			ShortDescription: ShortDescription(tb.Tier, pt.Name),
			IncludesText:     IncludesText(set.items(tb.Tier)),
		})
	}
	return out
}

// ShortDescription is the one-line pitch of a tier.
func ShortDescription(tier types.Tier, name string) string {
	switch tier {
	case types.TierStarter:
		return fmt.Sprintf("Essential %s package with core features", name)
	case types.TierStandard:
		return fmt.Sprintf("Complete %s solution with all essential features", name)
	default:
		return fmt.Sprintf("Premium %s package with extended features and support", name)
	}
}
