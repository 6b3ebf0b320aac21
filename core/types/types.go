// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// ClientType is the kind of client a freelancer typically sells to.
type ClientType string

const (
	ClientStartup    ClientType = "startup"
	ClientSMB        ClientType = "smb"
	ClientEnterprise ClientType = "enterprise"
)

// String returns the string representation
func (c ClientType) String() string {
	return string(c)
}

// IsValid checks if the client type is one of the known values
func (c ClientType) IsValid() bool {
	switch c {
	case ClientStartup, ClientSMB, ClientEnterprise:
		return true
	default:
		return false
	}
}

// ClientTypes returns every client type in display order.
func ClientTypes() []ClientType {
	return []ClientType{ClientStartup, ClientSMB, ClientEnterprise}
}

// ParseClientType normalizes user input such as " SMB " to a client type.
func ParseClientType(s string) (ClientType, bool) {
	c := ClientType(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// Positioning is the market segment a freelancer prices for.
type Positioning string

const (
	PositioningBudget    Positioning = "budget"
	PositioningMidMarket Positioning = "mid-market"
	PositioningPremium   Positioning = "premium"
)

// String returns the string representation
func (p Positioning) String() string {
	return string(p)
}

// IsValid checks if the positioning is one of the known values
func (p Positioning) IsValid() bool {
	switch p {
	case PositioningBudget, PositioningMidMarket, PositioningPremium:
		return true
	default:
		return false
	}
}

// Positionings returns every positioning in display order.
func Positionings() []Positioning {
	return []Positioning{PositioningBudget, PositioningMidMarket, PositioningPremium}
}

// ParsePositioning normalizes user input. "Mid_Market" and "midmarket" both
// yield PositioningMidMarket.
func ParsePositioning(s string) (Positioning, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "_", "-")
	if v == "midmarket" {
		v = string(PositioningMidMarket)
	}
	p := Positioning(v)
	return p, p.IsValid()
}

// Currency represents a currency code. It is carried through as a label only.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// InputSource indicates the origin of the input
type InputSource string

const (
	SourceCLI      InputSource = "cli"
	SourceAPI      InputSource = "api"
	SourceRateCard InputSource = "ratecard"
)

// String returns the string representation
func (s InputSource) String() string {
	return string(s)
}
