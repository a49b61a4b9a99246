package order

// Status is the requisition lifecycle stage. Stages only move forward:
// pending -> collected -> completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCollected Status = "collected"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCollected, StatusCompleted:
		return true
	}
	return false
}

// Next returns the only stage reachable from s. ok is false for the terminal
// stage and for unknown values.
func (s Status) Next() (next Status, ok bool) {
	switch s {
	case StatusPending:
		return StatusCollected, true
	case StatusCollected:
		return StatusCompleted, true
	}
	return "", false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted
}

func CanTransition(from, to Status) bool {
	next, ok := from.Next()
	return ok && next == to
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
