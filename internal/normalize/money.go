// Package normalize implements the canonicalization steps that feed
// transaction identity: exact money conversion, description cleaning,
// and fingerprint derivation.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates an amount that is missing or not a
// parseable decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ToCents converts a decimal amount string to an exact signed count of
// minor units. The value is rounded to two decimal places with ties
// going away from zero ("0.005" -> 1, "-0.005" -> -1). The conversion
// never passes through a binary float. Minor units are always
// hundredths; currencies with other scales are not supported.
func ToCents(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is missing", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	// Round at two decimals first, then shift into minor units.
	return d.Round(2).Shift(2).IntPart(), nil
}
