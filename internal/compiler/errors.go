package compiler

import "fmt"

// ContractViolationError reports a broken internal invariant. It marks a bug
// in the compiler itself, never a problem with the input specification, and
// callers should surface it as an internal-error diagnostic rather than a
// user-facing one.
type ContractViolationError struct {
	Op     string
	Detail string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("internal error: %s: %s", e.Op, e.Detail)
}
