package model

// Status is the lifecycle stage of an appointment. The set is closed and
// moves are restricted to the transition table below.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// transitions holds the legal moves. Completed and cancelled are terminal.
// A doctor may complete a pending booking directly without scheduling it
// first, which is how walk-in confirmations are closed out.
var transitions = map[Status][]Status{
	StatusPending:   {StatusScheduled, StatusCompleted, StatusCancelled},
	StatusScheduled: {StatusCompleted, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
