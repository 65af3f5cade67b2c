package planner

import "fmt"

// InvariantViolation signals a planner bug: a validated Config produced a
// structurally inconsistent plan. It should be unreachable and is never a
// user input problem.
type InvariantViolation struct {
	Msg   string
	Cause error
}

func (e *InvariantViolation) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("planning invariant violated: %v", e.Cause)
	}
	return fmt.Sprintf("planning invariant violated: %s", e.Msg)
}

func (e *InvariantViolation) Unwrap() error {
	return e.Cause
}
