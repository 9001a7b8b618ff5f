package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNameTooShort = errors.New("product name must be at least 2 characters")
	ErrProductNameTooLong  = errors.New("product name cannot exceed 100 characters")
	ErrInvalidPrice        = errors.New("product price must be at least 0.01")
	ErrInvalidStock        = errors.New("product stock cannot be negative")
	ErrDescriptionTooLong  = errors.New("product description cannot exceed 1000 characters")
)

// MinPrice is the lowest valid unit price for a product.
var MinPrice = decimal.New(1, -2) // 0.01

type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int
	Description string
	ImagePath   string
}

// Validate checks the product fields against catalog constraints.
// The ID is not checked here; the catalog store assigns it.
func (p Product) Validate() error {
	if len(p.Name) < 2 {
		return ErrProductNameTooShort
	}
	if len(p.Name) > 100 {
		return ErrProductNameTooLong
	}
	if p.Price.LessThan(MinPrice) {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	if len(p.Description) > 1000 {
		return ErrDescriptionTooLong
	}
	return nil
}
