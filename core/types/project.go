// Package types - Freelancer profile and project type inputs
package types

import "github.com/shopspring/decimal"

// Profile is a freelancer's rate profile.
type Profile struct {
	// BaseHourlyRate is the hourly rate every package price derives from
	BaseHourlyRate decimal.Decimal `json:"base_hourly_rate"`

	// TargetAnnualIncome is informational
	TargetAnnualIncome decimal.Decimal `json:"target_annual_income"`

	// Currency labels every price generated for this profile
	Currency Currency `json:"currency"`

	// TypicalWeeklyHours is informational
	TypicalWeeklyHours decimal.Decimal `json:"typical_weekly_hours"`
}

// ProjectType describes a kind of project the freelancer sells.
type ProjectType struct {
	// Name drives the copy category of the generated packages
	Name string `json:"name"`

	// Description is optional and informational
	Description string `json:"description,omitempty"`

	// Complexity is 1 (simplest) to 5 (hardest)
	Complexity int `json:"complexity"`

	// TypicalDurationDays is the usual length of the project in working days
	TypicalDurationDays int `json:"typical_duration_days"`
}
