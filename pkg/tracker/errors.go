package tracker

// StateConsistencyError reports an operation on a finalized or
// never-built tracker. It indicates a caller lifecycle bug and is
// never swallowed.
type StateConsistencyError struct {
	Tracker string
	Op      string
}

func (e *StateConsistencyError) Error() string {
	return "tracker " + e.Tracker + ": " + e.Op + " after finalize"
}

// EventRoutingError reports an event referencing an unknown component.
// Stray and late events from the host are expected; these are logged
// and dropped, never propagated.
type EventRoutingError struct {
	Component string
}

func (e *EventRoutingError) Error() string {
	return "no tracker for component " + e.Component
}
