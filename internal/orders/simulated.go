package orders

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecomseller/storefront/internal/domain"
)

// Simulated is the in-memory order store. Like the catalog it is seeded
// deterministically and takes an optional latency function; there is no
// persistence, orders live only for the session.
type Simulated struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	order  []int64
	nextID int64
	delay  func()
	now    func() time.Time
}

var seedStatuses = []domain.OrderStatus{
	domain.OrderStatusPending,
	domain.OrderStatusShipped,
	domain.OrderStatusDelivered,
	domain.OrderStatusCancelled,
}

var seedCustomers = []string{
	"Alice Smith", "Bob Johnson", "Charlie Brown", "Diana Prince", "Eve Adams",
}

// NewSimulated seeds fifteen historical orders with ids from 1001 up.
// New orders continue the sequence monotonically.
func NewSimulated(seed int64, delay func()) *Simulated {
	s := &Simulated{
		orders: make(map[int64]*domain.Order),
		delay:  delay,
		now:    time.Now,
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i <= 15; i++ {
		id := int64(1000 + i)
		totalCents := int64(5000 + rng.Intn(145001)) // 50.00 .. 1500.00
		total := decimal.New(totalCents, -2)
		s.orders[id] = &domain.Order{
			ID:           id,
			CustomerName: seedCustomers[rng.Intn(len(seedCustomers))],
			Subtotal:     total,
			Total:        total,
			Status:       seedStatuses[rng.Intn(len(seedStatuses))],
			CreatedAt:    time.Date(2025, time.July, 1+rng.Intn(25), 0, 0, 0, 0, time.UTC),
		}
		s.order = append(s.order, id)
		s.nextID = id
	}
	return s
}

func (s *Simulated) simulateDelay() {
	if s.delay != nil {
		s.delay()
	}
}

// CreateOrder materializes the checkout snapshot as a new Pending order
// with the next monotonically increasing id.
func (s *Simulated) CreateOrder(_ context.Context, req CreateOrderRequest) (*domain.Order, error) {
	s.simulateDelay()
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := decimal.Zero
	for _, line := range req.Lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	s.nextID++
	o := &domain.Order{
		ID:           s.nextID,
		CustomerName: req.CustomerName,
		Lines:        append([]domain.OrderLine(nil), req.Lines...),
		Subtotal:     subtotal,
		Discount:     req.DiscountAmount,
		Tax:          req.TaxAmount,
		Total:        req.TotalAmount,
		CouponCode:   req.CouponCode,
		Status:       domain.OrderStatusPending,
		CreatedAt:    s.now(),
	}
	s.orders[o.ID] = o
	s.order = append(s.order, o.ID)
	log.Printf("order %d created for %q, submission %s", o.ID, o.CustomerName, req.SubmissionID)
	return o, nil
}

func (s *Simulated) ListOrders(_ context.Context) ([]domain.Order, error) {
	s.simulateDelay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.orders[id])
	}
	return result, nil
}

func (s *Simulated) GetOrder(_ context.Context, id int64) (domain.Order, error) {
	s.simulateDelay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return *o, nil
}

// UpdateStatus moves an order through the management surface's allowed
// transitions.
func (s *Simulated) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	s.simulateDelay()
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	if !o.Status.CanTransitionTo(status) {
		return ErrIllegalTransition
	}
	o.Status = status
	return nil
}

// Summary computes the dashboard KPIs over all non-cancelled orders.
func (s *Simulated) Summary(_ context.Context) (Summary, error) {
	s.simulateDelay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum Summary
	sales := decimal.Zero
	for _, id := range s.order {
		o := s.orders[id]
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		sales = sales.Add(o.Total)
		sum.TotalOrders++
		if o.Status == domain.OrderStatusPending {
			sum.PendingOrders++
		}
	}
	sum.TotalSales = sales
	if sum.TotalOrders > 0 {
		sum.AvgOrderValue = sales.Div(decimal.NewFromInt(int64(sum.TotalOrders)))
	} else {
		sum.AvgOrderValue = decimal.Zero
	}
	return sum, nil
}
