package cart

import (
	"errors"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/ecomseller/storefront/internal/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Ledger holds the session cart: one line per product, keyed by product id,
// with insertion order preserved for display.
type Ledger struct {
	lines map[int64]*domain.CartLine
	order []int64
}

func NewLedger() *Ledger {
	return &Ledger{
		lines: make(map[int64]*domain.CartLine),
	}
}

// AddOrIncrement creates a line with the given quantity, or adds the
// quantity to an existing line. Repeated calls for the same product
// accumulate.
func (l *Ledger) AddOrIncrement(p domain.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if line, ok := l.lines[p.ID]; ok {
		line.Quantity += quantity
		return nil
	}
	l.lines[p.ID] = &domain.CartLine{Product: p, Quantity: quantity}
	l.order = append(l.order, p.ID)
	return nil
}

// ChangeQuantity adjusts a line's quantity by delta. A resulting quantity
// of zero or below removes the line entirely; it is never clamped to 1.
// Unknown product ids are ignored.
func (l *Ledger) ChangeQuantity(productID int64, delta int) {
	line, ok := l.lines[productID]
	if !ok {
		return
	}
	if line.Quantity+delta <= 0 {
		l.Remove(productID)
		return
	}
	line.Quantity += delta
}

// Remove deletes a line. Removing an absent product is a no-op.
func (l *Ledger) Remove(productID int64) {
	if _, ok := l.lines[productID]; !ok {
		return
	}
	delete(l.lines, productID)
	for i, id := range l.order {
		if id == productID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Lines yields the cart lines in insertion order. The sequence is
// restartable; each range re-reads the current ledger state.
func (l *Ledger) Lines() iter.Seq[domain.CartLine] {
	return func(yield func(domain.CartLine) bool) {
		for _, id := range l.order {
			if !yield(*l.lines[id]) {
				return
			}
		}
	}
}

func (l *Ledger) Len() int {
	return len(l.order)
}

func (l *Ledger) IsEmpty() bool {
	return len(l.order) == 0
}

// Quantity returns the current quantity for a product, zero when absent.
func (l *Ledger) Quantity(productID int64) int {
	if line, ok := l.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

// Subtotal sums unit price times quantity over all lines at full decimal
// precision. Rounding happens only at presentation boundaries.
func (l *Ledger) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, id := range l.order {
		total = total.Add(l.lines[id].Total())
	}
	return total
}

// Clear empties the cart unconditionally.
func (l *Ledger) Clear() {
	l.lines = make(map[int64]*domain.CartLine)
	l.order = nil
}
