package domain

import "github.com/shopspring/decimal"

// CartLine is one product entry in the cart. The product is borrowed from
// the catalog and never mutated through the line.
type CartLine struct {
	Product  Product
	Quantity int
}

// Total returns unit price times quantity at full precision.
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
