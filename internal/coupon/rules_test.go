package coupon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"blank", "   ", ErrEmptyCode},
		{"empty", "", ErrEmptyCode},
		{"too short", "AB", ErrCodeTooShort},
		{"too long", "ABCDEFGHIJKLMNOPQRSTU", ErrCodeTooLong},
		{"invalid characters", "SAVE_10", ErrInvalidCharacters},
		{"spaces inside", "SAVE 10", ErrInvalidCharacters},
		{"valid", "SAVE10", nil},
		{"valid with hyphen", "NEW-USER", nil},
		{"lowercase normalized", "save10", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateFormat(tt.code)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestValidateFormatNormalizes(t *testing.T) {
	code, err := ValidateFormat("  save10  ")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", code)
}

func TestLookupKnownCodes(t *testing.T) {
	r := NewRules()

	rate, err := r.Lookup("SAVE10")
	require.NoError(t, err)
	assert.Equal(t, "0.1", rate.String())

	rate, err = r.Lookup("welcome20")
	require.NoError(t, err)
	assert.Equal(t, "0.2", rate.String())
}

func TestLookupUnknownCode(t *testing.T) {
	r := NewRules()
	_, err := r.Lookup("NOPE99")
	assert.ErrorIs(t, err, ErrUnknownCoupon)
}

func TestApplyCapturesDiscount(t *testing.T) {
	r := NewRules()
	subtotal := decimal.RequireFromString("100.00")

	applied, err := r.Apply("save10", subtotal)
	require.NoError(t, err)

	assert.Equal(t, "SAVE10", applied.Code)
	assert.Equal(t, "10.00", applied.Amount.StringFixed(2))
}

func TestApplyRejectsBadFormatBeforeLookup(t *testing.T) {
	r := NewRules()
	_, err := r.Apply("!!", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrCodeTooShort)
}

func TestApplyUnknown(t *testing.T) {
	r := NewRules()
	_, err := r.Apply("UNKNOWN-CODE", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrUnknownCoupon)
}
