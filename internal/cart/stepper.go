package cart

// Stepper is the per-card quantity picker shown before anything reaches the
// cart. Unlike Ledger.ChangeQuantity it clamps at a minimum of 1 and never
// removes anything. The two policies are intentionally separate.
type Stepper struct {
	quantity int
}

func NewStepper() *Stepper {
	return &Stepper{quantity: 1}
}

func (s *Stepper) Increment() {
	s.quantity++
}

// Decrement lowers the quantity by 1, stopping at 1.
func (s *Stepper) Decrement() {
	if s.quantity > 1 {
		s.quantity--
	}
}

func (s *Stepper) Quantity() int {
	return s.quantity
}

func (s *Stepper) Reset() {
	s.quantity = 1
}
