package compiler

// RightContext describes a rule's trailing-context obligation: none, a regex
// that must match the remaining input after a tentative match point, or a
// literal code fragment spliced into the generated scanner as a guard.
// Equality is structural so that automaton construction can merge equivalent
// obligations across rules.
type RightContext interface {
	isRightContext()
}

// NoRightContext is the absence of a trailing context.
type NoRightContext struct{}

// RightContextRegex requires the remaining input to match Regex.
type RightContextRegex struct {
	Regex Regex
}

// RightContextCode splices Code as a runtime guard.
type RightContextCode struct {
	Code string
}

func (NoRightContext) isRightContext()    {}
func (RightContextRegex) isRightContext() {}
func (RightContextCode) isRightContext()  {}

// rightContextKey returns a canonical structural key. A nil context is
// treated as NoRightContext so rule literals may leave the field unset.
func rightContextKey(rc RightContext) string {
	switch v := rc.(type) {
	case nil:
		return "-"
	case NoRightContext:
		return "-"
	case RightContextRegex:
		return "r:" + v.Regex.String()
	case RightContextCode:
		return "c:" + v.Code
	default:
		return "?"
	}
}

// EqualRightContext reports structural equality of two trailing contexts.
func EqualRightContext(a, b RightContext) bool {
	return rightContextKey(a) == rightContextKey(b)
}

// RightContextRefKind tags the trailing-context reference carried by an
// Accept record after determinization.
type RightContextRefKind int

const (
	// RightCtxNone means the accept has no trailing-context obligation.
	RightCtxNone RightContextRefKind = iota
	// RightCtxState references the automaton region compiled from a
	// trailing-context regex, by its start state identifier.
	RightCtxState
	// RightCtxCode carries a literal guard fragment.
	RightCtxCode
)

// RightContextRef is the accept-level form of a trailing context. By
// determinization time a regex context has been compiled to an automaton
// region, so it is referenced by state identifier rather than inlined.
type RightContextRef struct {
	Kind  RightContextRefKind
	State int
	Code  string
}

// IsNone reports whether the reference carries no obligation.
func (r RightContextRef) IsNone() bool {
	return r.Kind == RightCtxNone
}
