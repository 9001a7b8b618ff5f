package orders

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ecomseller/storefront/internal/domain"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// CreateOrderRequest is the snapshot the checkout orchestrator submits.
// SubmissionID identifies one checkout attempt for logging.
type CreateOrderRequest struct {
	SubmissionID   string
	CustomerName   string
	Lines          []domain.OrderLine
	CouponCode     string
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// Gateway is the order-submission boundary the checkout orchestrator calls.
type Gateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
}

// Store extends Gateway with the order-management surface.
type Store interface {
	Gateway
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Summary(ctx context.Context) (Summary, error)
}

// Summary holds the dashboard KPIs. Cancelled orders are excluded from
// sales figures.
type Summary struct {
	TotalSales    decimal.Decimal
	TotalOrders   int
	AvgOrderValue decimal.Decimal
	PendingOrders int
}
