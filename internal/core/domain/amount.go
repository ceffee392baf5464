package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OctasPerAPT is the scale between APT and its smallest unit.
const OctasPerAPT = 100_000_000

var (
	ErrAmountNotNumeric  = errors.New("amount is not a decimal number")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
)

var octasScale = decimal.NewFromInt(OctasPerAPT)

// ParseAmount parses a human-entered APT amount and checks it is positive.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountNotNumeric, amount)
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	return d, nil
}

// ValidateAmount reports whether amount is a finite decimal greater than zero.
func ValidateAmount(amount string) error {
	_, err := ParseAmount(amount)
	return err
}

// ToOctas converts an APT amount into octas, rounding half away from zero,
// and returns the integer as a decimal string.
func ToOctas(amount string) (string, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}
	octas := d.Mul(octasScale).Round(0)
	if !octas.IsPositive() {
		return "", fmt.Errorf("%w: %s APT rounds to 0 octas", ErrAmountNotPositive, amount)
	}
	return octas.BigInt().String(), nil
}

// FromOctas renders an octas integer string as an APT amount.
func FromOctas(octas string) (string, error) {
	d, err := decimal.NewFromString(octas)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrAmountNotNumeric, octas)
	}
	return d.Div(octasScale).String(), nil
}
