package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode         = errors.New("coupon code cannot be empty")
	ErrCodeTooShort      = errors.New("coupon code must be at least 3 characters")
	ErrCodeTooLong       = errors.New("coupon code cannot exceed 20 characters")
	ErrInvalidCharacters = errors.New("coupon code contains invalid characters")
	ErrUnknownCoupon     = errors.New("unknown coupon code")
)

var codePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// Rules maps coupon codes to their discount rates.
type Rules struct {
	registry map[string]decimal.Decimal
}

// NewRules returns the fixed coupon registry the storefront ships with.
func NewRules() *Rules {
	return &Rules{registry: map[string]decimal.Decimal{
		"SAVE10":    decimal.New(10, -2),
		"WELCOME20": decimal.New(20, -2),
		"STUDENT15": decimal.New(15, -2),
		"NEWUSER":   decimal.New(25, -2),
	}}
}

// Normalize trims surrounding whitespace and uppercases the code. Codes are
// case-insensitive everywhere.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateFormat normalizes the code and checks its shape without consulting
// the registry. Returns the normalized code on success.
func ValidateFormat(code string) (string, error) {
	code = Normalize(code)
	switch {
	case code == "":
		return "", ErrEmptyCode
	case len(code) < 3:
		return "", ErrCodeTooShort
	case len(code) > 20:
		return "", ErrCodeTooLong
	case !codePattern.MatchString(code):
		return "", ErrInvalidCharacters
	}
	return code, nil
}

// Lookup returns the discount rate for a format-valid code.
func (r *Rules) Lookup(code string) (decimal.Decimal, error) {
	rate, ok := r.registry[Normalize(code)]
	if !ok {
		return decimal.Zero, ErrUnknownCoupon
	}
	return rate, nil
}

// Applied records a coupon at the moment it was applied. The discount amount
// is computed from the subtotal at application time and deliberately not
// recomputed when the cart changes afterward.
type Applied struct {
	Code   string
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// Apply validates the code, looks it up, and captures the discount against
// the given subtotal. On any error the caller's previous coupon state must
// be left untouched.
func (r *Rules) Apply(code string, subtotal decimal.Decimal) (Applied, error) {
	normalized, err := ValidateFormat(code)
	if err != nil {
		return Applied{}, err
	}
	rate, err := r.Lookup(normalized)
	if err != nil {
		return Applied{}, err
	}
	return Applied{
		Code:   normalized,
		Rate:   rate,
		Amount: subtotal.Mul(rate),
	}, nil
}
