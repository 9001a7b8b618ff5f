package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomseller/storefront/internal/domain"
)

type countingGateway struct {
	mu        sync.Mutex
	listCalls int
	getCalls  int
	err       error
}

func (g *countingGateway) ListProducts(context.Context) ([]domain.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	if g.err != nil {
		return nil, g.err
	}
	return []domain.Product{
		{ID: 101, Name: "Product 1", Price: decimal.NewFromInt(10)},
		{ID: 102, Name: "Product 2", Price: decimal.NewFromInt(20)},
	}, nil
}

func (g *countingGateway) GetProduct(_ context.Context, id int64) (domain.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.getCalls++
	if g.err != nil {
		return domain.Product{}, g.err
	}
	if id != 101 && id != 102 {
		return domain.Product{}, ErrProductNotFound
	}
	return domain.Product{ID: id, Name: "Product", Price: decimal.NewFromInt(10)}, nil
}

func TestCachedListHitsGatewayOnce(t *testing.T) {
	ctx := context.Background()
	gw := &countingGateway{}
	c := NewCached(gw)

	first, err := c.ListProducts(ctx)
	require.NoError(t, err)
	second, err := c.ListProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gw.listCalls)
}

func TestCachedListFillsProductCache(t *testing.T) {
	ctx := context.Background()
	gw := &countingGateway{}
	c := NewCached(gw)

	_, err := c.ListProducts(ctx)
	require.NoError(t, err)

	_, err = c.GetProduct(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 0, gw.getCalls, "list should have primed the by-id cache")
}

func TestCachedGetMissFetchesOnce(t *testing.T) {
	ctx := context.Background()
	gw := &countingGateway{}
	c := NewCached(gw)

	_, err := c.GetProduct(ctx, 101)
	require.NoError(t, err)
	_, err = c.GetProduct(ctx, 101)
	require.NoError(t, err)

	assert.Equal(t, 1, gw.getCalls)
}

func TestCachedInvalidate(t *testing.T) {
	ctx := context.Background()
	gw := &countingGateway{}
	c := NewCached(gw)

	_, err := c.ListProducts(ctx)
	require.NoError(t, err)
	c.Invalidate()
	_, err = c.ListProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, gw.listCalls)
}

func TestCachedPropagatesErrors(t *testing.T) {
	ctx := context.Background()
	gw := &countingGateway{err: errors.New("gateway down")}
	c := NewCached(gw)

	_, err := c.ListProducts(ctx)
	assert.Error(t, err)

	_, err = c.GetProduct(ctx, 101)
	assert.Error(t, err)
}

func TestCachedGetNotFound(t *testing.T) {
	gw := &countingGateway{}
	c := NewCached(gw)

	_, err := c.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
