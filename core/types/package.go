// Package types - Generated package output types
package types

import "github.com/shopspring/decimal"

// Tier names one of the three generated packages.
type Tier string

const (
	TierStarter  Tier = "Starter"
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
)

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// Tiers returns the tiers in output order.
func Tiers() []Tier {
	return []Tier{TierStarter, TierStandard, TierPremium}
}

// Category is the copy category a project type name classifies into.
type Category string

const (
	CategoryWebsite Category = "website"
	CategoryBrand   Category = "brand"
	CategoryCopy    Category = "copy"
	CategorySEO     Category = "seo"
	CategoryGeneric Category = "generic"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// Package is one generated service package. The caller owns it entirely.
type Package struct {
	PackageName      Tier   `json:"package_name"`
	Price            int64  `json:"price"`
	ShortDescription string `json:"short_description"`
	IncludesText     string `json:"includes_text"`
}

// Breakdown documents how a set of packages was priced.
type Breakdown struct {
	Category              Category        `json:"category"`
	ComplexityMultiplier  decimal.Decimal `json:"complexity_multiplier"`
	BaseHours             decimal.Decimal `json:"base_hours"`
	HourlyRate            decimal.Decimal `json:"hourly_rate"`
	ClientMultiplier      decimal.Decimal `json:"client_multiplier"`
	PositioningMultiplier decimal.Decimal `json:"positioning_multiplier"`

	// BasePrice is unrounded
	BasePrice decimal.Decimal `json:"base_price"`

	Tiers []TierBreakdown `json:"tiers"`
}

// TierBreakdown is the price lineage of a single tier.
type TierBreakdown struct {
	Tier       Tier            `json:"tier"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Price      int64           `json:"price"`
	Formula    string          `json:"formula"`
}

// GeneratedPackage is a Package with the identifiers a caller persists it under.
type GeneratedPackage struct {
	ID            string `json:"id"`
	ProjectTypeID string `json:"project_type_id"`
	Package
}
