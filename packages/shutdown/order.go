package shutdown

// Background workers with a higher priority are stopped first.
const (
	PriorityPrometheus = iota
	PriorityPoW
)
