package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuoteSaveTen(t *testing.T) {
	e := NewEngine(DefaultTaxRate)

	q := e.Quote(d("100.00"), d("10.00"))

	assert.Equal(t, "100.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", q.Discount.StringFixed(2))
	assert.Equal(t, "90.00", q.DiscountedSubtotal.StringFixed(2))
	assert.Equal(t, "7.20", q.Tax.StringFixed(2))
	assert.Equal(t, "97.20", q.Total.StringFixed(2))
}

func TestQuoteWelcomeTwenty(t *testing.T) {
	// Cart: ProductA qty 2 at 25.00, ProductB qty 1 at 50.00, WELCOME20.
	e := NewEngine(DefaultTaxRate)

	q := e.Quote(d("100.00"), d("20.00"))

	assert.Equal(t, "80.00", q.DiscountedSubtotal.StringFixed(2))
	assert.Equal(t, "6.40", q.Tax.StringFixed(2))
	assert.Equal(t, "86.40", q.Total.StringFixed(2))
}

func TestQuoteNoDiscount(t *testing.T) {
	e := NewEngine(DefaultTaxRate)

	q := e.Quote(d("50.00"), decimal.Zero)

	assert.Equal(t, "50.00", q.DiscountedSubtotal.StringFixed(2))
	assert.Equal(t, "4.00", q.Tax.StringFixed(2))
	assert.Equal(t, "54.00", q.Total.StringFixed(2))
}

func TestQuoteClampsDiscountAboveSubtotal(t *testing.T) {
	e := NewEngine(DefaultTaxRate)

	q := e.Quote(d("10.00"), d("25.00"))

	assert.Equal(t, "0.00", q.DiscountedSubtotal.StringFixed(2))
	assert.Equal(t, "0.00", q.Tax.StringFixed(2))
	assert.Equal(t, "0.00", q.Total.StringFixed(2))
}

func TestQuoteEmptyCart(t *testing.T) {
	e := NewEngine(DefaultTaxRate)

	q := e.Quote(decimal.Zero, decimal.Zero)

	assert.Equal(t, "0.00", q.Total.StringFixed(2))
}

func TestQuoteKeepsFullPrecision(t *testing.T) {
	e := NewEngine(DefaultTaxRate)

	// 33.33 * 8% = 2.6664; rounding must only happen at display time.
	q := e.Quote(d("33.33"), decimal.Zero)

	assert.Equal(t, "2.6664", q.Tax.String())
	assert.Equal(t, "2.67", q.Tax.StringFixed(2))
	assert.Equal(t, "35.9964", q.Total.String())
}

func TestCustomTaxRate(t *testing.T) {
	e := NewEngine(d("0.05"))

	q := e.Quote(d("100.00"), decimal.Zero)

	assert.Equal(t, "5.00", q.Tax.StringFixed(2))
	assert.Equal(t, "105.00", q.Total.StringFixed(2))
}
