package determinism

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with full precision.
// The currency is a label; amounts are never converted.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoneyFromInt creates Money from a whole amount
func NewMoneyFromInt(amount int64, currency string) Money {
	return Money{amount: decimal.NewFromInt(amount), currency: currency}
}

// NewMoneyFromDecimal creates Money from decimal
func NewMoneyFromDecimal(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// String returns the amount with its currency code, e.g. "24000 EUR".
// Whole amounts are printed without decimals.
func (m Money) String() string {
	if m.currency == "" {
		return m.StringRaw()
	}
	return fmt.Sprintf("%s %s", m.StringRaw(), m.currency)
}

// StringRaw returns the raw decimal string (full precision)
func (m Money) StringRaw() string {
	if m.amount.IsInteger() {
		return m.amount.StringFixed(0)
	}
	return m.amount.StringFixed(2)
}
