package compiler

import (
	"fmt"
	"strings"
)

// Accept records one way a state can accept. Priority is the originating
// rule's position (lower = higher precedence). Action is the hoisted action
// reference, nil for marker accepts such as trailing-context regions.
// LeftCtx and RightCtx are the predicates the generated scanner must check
// before committing to this accept.
type Accept struct {
	Priority int
	Action   *string
	LeftCtx  *CharSet
	RightCtx RightContextRef
}

// signature is a canonical key covering every observable field of the
// accept. Two accepts with equal signatures are semantically
// indistinguishable and must be collapsed.
func (a Accept) signature() string {
	action := "-"
	if a.Action != nil {
		action = *a.Action
	}
	left := "-"
	if a.LeftCtx != nil {
		left = a.LeftCtx.key()
	}
	return fmt.Sprintf("p%d;a%s;l%s;r%d:%d:%s",
		a.Priority, action, left, a.RightCtx.Kind, a.RightCtx.State, a.RightCtx.Code)
}

// acceptsSignature keys an ordered accept list. It is the minimization
// equivalence class of a state's accept metadata: states may only merge when
// their whole lists match element-wise.
func acceptsSignature(accepts []Accept) string {
	if len(accepts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, a := range accepts {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a.signature())
	}
	return b.String()
}

// State is one DFA state: an ordered accept list (ascending priority) and a
// partial byte-indexed transition map. A byte with no entry has no
// transition; the scanner rejects from there.
type State struct {
	Accepts []Accept
	Out     map[byte]int
}

// Automaton is the final compilation artifact: one designated start state
// per encoded start condition (index = start code, 0 = default) and the
// state table. It is never mutated after minimization.
type Automaton struct {
	Starts []int
	States []State
}

// UsesPredicates reports whether any accept anywhere in the automaton
// carries a leading or trailing context. The code generator selects a
// simpler scanning loop when this is false; it is a whole-automaton
// decision, not a per-state one.
func (a *Automaton) UsesPredicates() bool {
	for _, s := range a.States {
		for _, acc := range s.Accepts {
			if acc.LeftCtx != nil || !acc.RightCtx.IsNone() {
				return true
			}
		}
	}
	return false
}
