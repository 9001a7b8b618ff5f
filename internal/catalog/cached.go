package catalog

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ecomseller/storefront/internal/domain"
)

// Cached is a read-through accessor over a Gateway. The simulated gateway
// sleeps to model latency, so concurrent misses for the same data are
// collapsed with singleflight and results are kept until invalidated.
type Cached struct {
	gateway Gateway
	sfg     singleflight.Group // Prevents cache stampede

	mu   sync.RWMutex
	list []domain.Product
	byID map[int64]domain.Product
}

func NewCached(gateway Gateway) *Cached {
	return &Cached{
		gateway: gateway,
		byID:    make(map[int64]domain.Product),
	}
}

func (c *Cached) ListProducts(ctx context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	cached := c.list
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := c.sfg.Do("products", func() (interface{}, error) {
		products, err := c.gateway.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.list = products
		for _, p := range products {
			c.byID[p.ID] = p
		}
		c.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (c *Cached) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	c.mu.RLock()
	p, ok := c.byID[id]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	v, err, _ := c.sfg.Do("product:"+strconv.FormatInt(id, 10), func() (interface{}, error) {
		product, err := c.gateway.GetProduct(ctx, id)
		if err != nil {
			return domain.Product{}, err
		}
		c.mu.Lock()
		c.byID[id] = product
		c.mu.Unlock()
		return product, nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	return v.(domain.Product), nil
}

// Invalidate drops all cached products. Called after any catalog mutation.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	c.list = nil
	c.byID = make(map[int64]domain.Product)
	c.mu.Unlock()
}
