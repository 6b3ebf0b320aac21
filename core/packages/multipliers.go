package packages

import (
	"github.com/shopspring/decimal"

	"github.com/fati-2700/pricingos/core/types"
)

// HoursPerDay is the number of billable hours in a working day.
const HoursPerDay = 8

var (
	complexityBase = decimal.RequireFromString("0.5")
	complexityStep = decimal.RequireFromString("0.375")

	clientMultipliers = map[types.ClientType]decimal.Decimal{
		types.ClientStartup:    decimal.RequireFromString("0.8"),
		types.ClientSMB:        decimal.RequireFromString("1.0"),
		types.ClientEnterprise: decimal.RequireFromString("1.3"),
	}

	positioningMultipliers = map[types.Positioning]decimal.Decimal{
		types.PositioningBudget:    decimal.RequireFromString("0.7"),
		types.PositioningMidMarket: decimal.RequireFromString("1.0"),
		types.PositioningPremium:   decimal.RequireFromString("1.5"),
	}

	tierMultipliers = map[types.Tier]decimal.Decimal{
		types.TierStarter:  decimal.RequireFromString("1.0"),
		types.TierStandard: decimal.RequireFromString("1.6"),
		types.TierPremium:  decimal.RequireFromString("2.5"),
	}
)

// ComplexityMultiplier maps complexity 1..5 onto 0.5, 0.875, 1.25, 1.625, 2.0.
// The mapping is linear; it is not the 0.5/0.75/1/1.5/2 curve that is
// sometimes quoted for it. Changing it reprices every complexity 2-4 project.
func ComplexityMultiplier(complexity int) decimal.Decimal {
	return complexityBase.Add(complexityStep.Mul(decimal.NewFromInt(int64(complexity - 1))))
}

// ClientMultiplier returns the fixed multiplier for a client type.
func ClientMultiplier(c types.ClientType) (decimal.Decimal, bool) {
	m, ok := clientMultipliers[c]
	return m, ok
}

// PositioningMultiplier returns the fixed multiplier for a positioning.
func PositioningMultiplier(p types.Positioning) (decimal.Decimal, bool) {
	m, ok := positioningMultipliers[p]
	return m, ok
}

// TierMultiplier returns the price multiplier of a tier over the base price.
func TierMultiplier(t types.Tier) (decimal.Decimal, bool) {
	m, ok := tierMultipliers[t]
	return m, ok
}
