package checkout

type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusReviewing  Status = "REVIEWING"
	StatusSubmitting Status = "SUBMITTING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

// canTransition encodes the checkout lifecycle. Terminal states re-enter
// Idle or Reviewing depending on cart contents; only Reviewing may submit.
func canTransition(from, to Status) bool {
	switch from {
	case StatusIdle:
		return to == StatusReviewing
	case StatusReviewing:
		return to == StatusSubmitting || to == StatusIdle
	case StatusSubmitting:
		return to == StatusCompleted || to == StatusFailed
	case StatusCompleted, StatusFailed:
		return to == StatusIdle || to == StatusReviewing
	default:
		return false
	}
}
