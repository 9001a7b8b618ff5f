package catalog

import (
	"context"
	"errors"

	"github.com/ecomseller/storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Gateway is the read-only catalog boundary the cart core depends on.
type Gateway interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
}

// Catalog extends Gateway with the seller-side management operations.
type Catalog interface {
	Gateway
	AddProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]domain.Product, error)
}
