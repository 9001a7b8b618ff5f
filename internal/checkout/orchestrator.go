package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"

	"github.com/ecomseller/storefront/internal/cart"
	"github.com/ecomseller/storefront/internal/coupon"
	"github.com/ecomseller/storefront/internal/domain"
	"github.com/ecomseller/storefront/internal/orders"
	"github.com/ecomseller/storefront/internal/pricing"
)

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrCheckoutInProgress = errors.New("checkout submission in progress")
	ErrGateway            = errors.New("order gateway error")
)

// Orchestrator owns the session: the cart ledger, the applied coupon and
// the checkout lifecycle. All cart mutations go through it so the ledger
// can be frozen while an order submission is pending.
type Orchestrator struct {
	mu      sync.Mutex
	ledger  *cart.Ledger
	rules   *coupon.Rules
	engine  *pricing.Engine
	gateway orders.Gateway
	breaker *gobreaker.CircuitBreaker[*domain.Order]

	applied *coupon.Applied
	status  Status
}

func NewOrchestrator(ledger *cart.Ledger, rules *coupon.Rules, engine *pricing.Engine, gateway orders.Gateway) *Orchestrator {
	return &Orchestrator{
		ledger:  ledger,
		rules:   rules,
		engine:  engine,
		gateway: gateway,
		breaker: gobreaker.NewCircuitBreaker[*domain.Order](gobreaker.Settings{
			Name: "order-gateway",
		}),
		status: StatusIdle,
	}
}

// syncStatusLocked re-derives Idle/Reviewing from cart contents. Never
// called while Submitting.
func (o *Orchestrator) syncStatusLocked() {
	if o.ledger.IsEmpty() {
		o.status = StatusIdle
	} else {
		o.status = StatusReviewing
	}
}

func (o *Orchestrator) AddItem(p domain.Product, quantity int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	if err := o.ledger.AddOrIncrement(p, quantity); err != nil {
		return err
	}
	o.syncStatusLocked()
	return nil
}

func (o *Orchestrator) ChangeQuantity(productID int64, delta int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	o.ledger.ChangeQuantity(productID, delta)
	o.syncStatusLocked()
	return nil
}

func (o *Orchestrator) RemoveItem(productID int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	o.ledger.Remove(productID)
	o.syncStatusLocked()
	return nil
}

// ApplyCoupon validates and applies a coupon, capturing the discount
// against the current subtotal. On failure the previously applied coupon,
// if any, is left unchanged.
func (o *Orchestrator) ApplyCoupon(code string) (coupon.Applied, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusSubmitting {
		return coupon.Applied{}, ErrCheckoutInProgress
	}
	applied, err := o.rules.Apply(code, o.ledger.Subtotal())
	if err != nil {
		return coupon.Applied{}, err
	}
	o.applied = &applied
	return applied, nil
}

func (o *Orchestrator) RemoveCoupon() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	o.applied = nil
	return nil
}

// AppliedCoupon returns the currently applied coupon, or nil.
func (o *Orchestrator) AppliedCoupon() *coupon.Applied {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.applied == nil {
		return nil
	}
	c := *o.applied
	return &c
}

// Quote prices the current cart with the captured discount.
func (o *Orchestrator) Quote() pricing.Quote {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.quoteLocked()
}

func (o *Orchestrator) quoteLocked() pricing.Quote {
	discount := decimal.Zero
	if o.applied != nil {
		discount = o.applied.Amount
	}
	return o.engine.Quote(o.ledger.Subtotal(), discount)
}

// Lines returns a snapshot of the cart lines in insertion order.
func (o *Orchestrator) Lines() []domain.CartLine {
	o.mu.Lock()
	defer o.mu.Unlock()
	lines := make([]domain.CartLine, 0, o.ledger.Len())
	for line := range o.ledger.Lines() {
		lines = append(lines, line)
	}
	return lines
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Abandon backs out of a review. Allowed any time except while an order
// submission is pending; the cart itself is kept.
func (o *Orchestrator) Abandon() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	o.syncStatusLocked()
	return nil
}

// Checkout snapshots the cart, submits it to the order gateway and, on
// success, clears the ledger and coupon state. On gateway failure the cart
// is preserved unchanged so the user can retry. The ledger is frozen for
// the duration of the submission.
func (o *Orchestrator) Checkout(ctx context.Context, customerName string) (int64, error) {
	name, err := domain.ValidateCustomerName(customerName)
	if err != nil {
		return 0, err
	}

	o.mu.Lock()
	if o.status == StatusSubmitting {
		o.mu.Unlock()
		return 0, ErrCheckoutInProgress
	}
	o.syncStatusLocked()
	if o.status == StatusIdle {
		o.mu.Unlock()
		return 0, ErrEmptyCart
	}
	if !canTransition(o.status, StatusSubmitting) {
		o.mu.Unlock()
		return 0, fmt.Errorf("cannot submit from state %s", o.status)
	}

	quote := o.quoteLocked()
	lines := make([]domain.OrderLine, 0, o.ledger.Len())
	for line := range o.ledger.Lines() {
		lines = append(lines, domain.OrderLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
	}
	req := orders.CreateOrderRequest{
		SubmissionID:   uuid.NewString(),
		CustomerName:   name,
		Lines:          lines,
		DiscountAmount: quote.Discount,
		TaxAmount:      quote.Tax,
		TotalAmount:    quote.Total,
	}
	if o.applied != nil {
		req.CouponCode = o.applied.Code
	}
	o.status = StatusSubmitting
	o.mu.Unlock()

	// Suspend point: the ledger stays frozen until the gateway answers.
	order, gwErr := o.breaker.Execute(func() (*domain.Order, error) {
		return o.gateway.CreateOrder(ctx, req)
	})

	o.mu.Lock()
	defer o.mu.Unlock()
	if gwErr != nil {
		o.status = StatusFailed
		log.Printf("checkout submission %s failed: %v", req.SubmissionID, gwErr)
		return 0, fmt.Errorf("%w: %v", ErrGateway, gwErr)
	}

	o.status = StatusCompleted
	o.ledger.Clear()
	o.applied = nil
	log.Printf("checkout submission %s completed as order %d", req.SubmissionID, order.ID)
	return order.ID, nil
}
