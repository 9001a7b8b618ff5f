package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ecomseller/storefront/internal/domain"
)

// Simulated is the in-memory catalog store backing the storefront. There is
// no real backend; products are generated from a seed so runs are
// reproducible. An optional delay function models network latency.
type Simulated struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	order    []int64
	delay    func()
}

// NewSimulated seeds ten products: ids starting at 101, prices between
// 10.00 and 500.00, stock up to 200.
// delay may be nil; tests pass nil for zero latency.
func NewSimulated(seed int64, delay func()) *Simulated {
	s := &Simulated{
		products: make(map[int64]domain.Product),
		delay:    delay,
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i <= 10; i++ {
		id := int64(100 + i)
		priceCents := int64(1000 + rng.Intn(49001)) // 10.00 .. 500.00
		s.products[id] = domain.Product{
			ID:          id,
			Name:        fmt.Sprintf("Product %d", i),
			Price:       decimal.New(priceCents, -2),
			Stock:       rng.Intn(201),
			Description: fmt.Sprintf("Description for product %d.", i),
			ImagePath:   fmt.Sprintf("assets/icons/product_%d.png", id),
		}
		s.order = append(s.order, id)
	}
	return s
}

func (s *Simulated) simulateDelay() {
	if s.delay != nil {
		s.delay()
	}
}

func (s *Simulated) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.simulateDelay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.products[id])
	}
	return result, nil
}

func (s *Simulated) GetProduct(_ context.Context, id int64) (domain.Product, error) {
	s.simulateDelay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// AddProduct validates the product and assigns the next id (max + 1).
func (s *Simulated) AddProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	s.simulateDelay()
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64 = 100
	for id := range s.products {
		if id > maxID {
			maxID = id
		}
	}
	p.ID = maxID + 1
	s.products[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *Simulated) UpdateProduct(_ context.Context, p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.simulateDelay()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return ErrProductNotFound
	}
	s.products[p.ID] = p
	return nil
}

func (s *Simulated) DeleteProduct(_ context.Context, id int64) error {
	s.simulateDelay()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Search matches the query case-insensitively against product name, id and
// description. An empty query returns the full catalog.
func (s *Simulated) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListProducts(ctx)
	}
	s.simulateDelay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var result []domain.Product
	for _, id := range s.order {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strconv.FormatInt(p.ID, 10), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			result = append(result, p)
		}
	}
	return result, nil
}
