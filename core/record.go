package core

// Record is one committed log entry: the fully rendered line paired
// with the priority it was committed at. Records are immutable after
// creation.
type Record struct {
	Text     string
	Priority Priority
}
