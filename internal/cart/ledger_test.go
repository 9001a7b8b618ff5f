package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomseller/storefront/internal/domain"
)

func product(id int64, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  "Test Product",
		Price: decimal.RequireFromString(price),
	}
}

func TestAddOrIncrementAccumulates(t *testing.T) {
	l := NewLedger()
	p := product(101, "25.00")

	require.NoError(t, l.AddOrIncrement(p, 2))
	require.NoError(t, l.AddOrIncrement(p, 3))
	require.NoError(t, l.AddOrIncrement(p, 1))

	assert.Equal(t, 6, l.Quantity(101))
	assert.Equal(t, 1, l.Len())
}

func TestAddOrIncrementRejectsNonPositive(t *testing.T) {
	l := NewLedger()
	p := product(101, "25.00")

	assert.ErrorIs(t, l.AddOrIncrement(p, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, l.AddOrIncrement(p, -3), ErrInvalidQuantity)
	assert.True(t, l.IsEmpty(), "rejected add must not mutate the cart")
}

func TestChangeQuantityRemovesAtZeroOrBelow(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "25.00"), 2))

	l.ChangeQuantity(101, -2)

	assert.Equal(t, 0, l.Quantity(101))
	for line := range l.Lines() {
		t.Errorf("expected no lines, found product %d", line.Product.ID)
	}
}

func TestChangeQuantityBelowZeroAlsoRemoves(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "25.00"), 2))

	l.ChangeQuantity(101, -5)

	assert.True(t, l.IsEmpty())
}

func TestChangeQuantityAdjusts(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "25.00"), 2))

	l.ChangeQuantity(101, 3)
	assert.Equal(t, 5, l.Quantity(101))

	l.ChangeQuantity(101, -4)
	assert.Equal(t, 1, l.Quantity(101))
}

func TestChangeQuantityUnknownProductIsNoOp(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "25.00"), 2))

	l.ChangeQuantity(999, 1)

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 2, l.Quantity(101))
}

func TestRemoveIsIdempotent(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "25.00"), 2))

	l.Remove(999) // absent: no-op
	assert.Equal(t, 1, l.Len())

	l.Remove(101)
	l.Remove(101)
	assert.True(t, l.IsEmpty())
}

func TestEmptySubtotalIsZero(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.Subtotal().IsZero())
	assert.Equal(t, "0.00", l.Subtotal().StringFixed(2))
}

func TestSubtotalExactDecimal(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "25.00"), 2))
	require.NoError(t, l.AddOrIncrement(product(102, "50.00"), 1))

	assert.Equal(t, "100.00", l.Subtotal().StringFixed(2))

	// Prices that would drift under float accumulation stay exact.
	l.Clear()
	require.NoError(t, l.AddOrIncrement(product(103, "0.10"), 3))
	assert.Equal(t, "0.30", l.Subtotal().StringFixed(2))
}

func TestLinesPreserveInsertionOrder(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(103, "1.00"), 1))
	require.NoError(t, l.AddOrIncrement(product(101, "1.00"), 1))
	require.NoError(t, l.AddOrIncrement(product(102, "1.00"), 1))
	// Incrementing an existing line must not move it.
	require.NoError(t, l.AddOrIncrement(product(103, "1.00"), 1))

	var got []int64
	for line := range l.Lines() {
		got = append(got, line.Product.ID)
	}
	assert.Equal(t, []int64{103, 101, 102}, got)
}

func TestLinesIsRestartable(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "1.00"), 1))
	require.NoError(t, l.AddOrIncrement(product(102, "1.00"), 1))

	seq := l.Lines()
	first := 0
	for range seq {
		first++
		break // early exit must not exhaust the sequence
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestClear(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddOrIncrement(product(101, "25.00"), 2))
	require.NoError(t, l.AddOrIncrement(product(102, "50.00"), 1))

	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.True(t, l.Subtotal().IsZero())
}
