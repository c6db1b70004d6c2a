package model

// State is a listing keyword partitioning a subject's bookings into
// temporal and status buckets. The match is case-sensitive against a
// closed set; anything else is unsupported.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// StateFrom resolves a raw keyword, reporting whether it belongs to the
// recognized set.
func StateFrom(raw string) (State, bool) {
	switch State(raw) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(raw), true
	default:
		return "", false
	}
}
