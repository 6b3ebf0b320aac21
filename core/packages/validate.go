package packages

import (
	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/internal/errors"
)

const (
	// MinComplexity and MaxComplexity bound ProjectType.Complexity
	MinComplexity = 1
	MaxComplexity = 5
)

// Input errors. Every error returned by this package wraps exactly one of
// these, so callers can match with errors.Is.
var (
	ErrInvalidComplexity   = errors.Input("complexity must be between 1 and 5")
	ErrInvalidDuration     = errors.Input("typical duration days must be positive")
	ErrInvalidRate         = errors.Input("base hourly rate must be positive")
	ErrInvalidClientType   = errors.Input("client type must be one of startup, smb, enterprise")
	ErrInvalidPositioning  = errors.Input("positioning must be one of budget, mid-market, premium")
	ErrTooManyProjectTypes = errors.Input("at most 3 project types may be set up at once")
	ErrNoProjectTypes      = errors.Input("at least one named project type is required")
	ErrPriceOverflow       = errors.Input("package price exceeds the largest representable amount")
)

func validate(profile types.Profile, pt types.ProjectType, client types.ClientType, positioning types.Positioning) error {
	if pt.Complexity < MinComplexity || pt.Complexity > MaxComplexity {
		return errors.Wrapf(errors.TypeInput, ErrInvalidComplexity, "project type %q", pt.Name).
			WithContext("complexity", pt.Complexity)
	}
	if pt.TypicalDurationDays <= 0 {
		return errors.Wrapf(errors.TypeInput, ErrInvalidDuration, "project type %q", pt.Name).
			WithContext("typical_duration_days", pt.TypicalDurationDays)
	}
	if !profile.BaseHourlyRate.IsPositive() {
		return errors.Wrap(errors.TypeInput, "profile", ErrInvalidRate).
			WithContext("base_hourly_rate", profile.BaseHourlyRate.String())
	}
	if !client.IsValid() {
		return errors.Wrap(errors.TypeInput, "client type", ErrInvalidClientType).
			WithContext("client_type", string(client))
	}
	if !positioning.IsValid() {
		return errors.Wrap(errors.TypeInput, "positioning", ErrInvalidPositioning).
			WithContext("positioning", string(positioning))
	}
	return nil
}
