package session

import "fmt"

// ErrInvalidPhaseTransition indicates a requested phase change that the
// state machine does not allow.
type ErrInvalidPhaseTransition struct {
	From Phase
	To   Phase
}

func (e *ErrInvalidPhaseTransition) Error() string {
	return fmt.Sprintf("invalid phase transition: %s -> %s", e.From, e.To)
}
