package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
)

// maxCurrencyLength bounds the persisted currency code.
const maxCurrencyLength = 8

// Price is the monetary amount an operator offers for an order. It is stored
// as integer cents plus a currency code to avoid floating point rounding.
// A valid Price is always strictly positive; the zero value is invalid.
type Price struct {
	cents    int64
	currency string
}

// NewPrice creates a Price from integer cents and a currency code.
// Cents must be greater than zero and the currency code non-empty.
func NewPrice(cents int64, currency string) (Price, error) {
	if cents <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d cents is not greater than 0", cents))
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Price{}, errs.NewValueIsRequiredError("currency")
	}
	if len(currency) > maxCurrencyLength {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q exceeds %d characters", currency, maxCurrencyLength))
	}

	return Price{cents: cents, currency: currency}, nil
}

// ParsePrice converts operator input like "12.50" or "12,50" into a Price.
// A decimal comma is accepted because operators enter European formats.
func ParsePrice(amount, currency string) (Price, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(amount), " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return Price{}, errs.NewValueIsRequiredError("price")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	cents := int64(value*100 + 0.5)
	return NewPrice(cents, currency)
}

// Cents returns the amount in integer cents.
func (p Price) Cents() int64 {
	return p.cents
}

// Currency returns the upper-case currency code.
func (p Price) Currency() string {
	return p.currency
}

// String formats the price as "12.50 EUR".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d %s", p.cents/100, p.cents%100, p.currency)
}

// IsEqual reports whether both prices carry the same amount and currency.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents && p.currency == other.currency
}

// Validate returns an error for the zero (unconstructed) Price.
func (p Price) Validate() error {
	if p.cents <= 0 || p.currency == "" {
		return errs.NewValueIsRequiredError("Price must be created via NewPrice or ParsePrice")
	}
	return nil
}
