package compiler

import (
	"fmt"
	"strings"
)

// Minimize merges behaviorally equivalent states by partition refinement.
// Plain acceptance-based minimization is unsound for a metadata-carrying
// automaton: two states with identical transitions but different accept
// lists drive different actions or predicate checks and must stay apart. The
// initial partition therefore keys on the full accept-list signature (with a
// separate block for non-accepting states), and refinement splits any block
// whose members disagree on the partition reached by some byte.
//
// Right-context references inside accept signatures use pre-minimization
// state ids, so states guarded by distinct-but-equivalent context regions
// are conservatively kept apart; the references are remapped to
// representatives afterwards. The result never has more states than the
// input, and the input is left untouched.
func Minimize(a *Automaton) *Automaton {
	n := len(a.States)
	if n == 0 {
		return a
	}

	part := make([]int, n)
	blocks := make(map[string]int)
	for i, s := range a.States {
		sig := acceptsSignature(s.Accepts)
		id, ok := blocks[sig]
		if !ok {
			id = len(blocks)
			blocks[sig] = id
		}
		part[i] = id
	}
	count := len(blocks)

	for {
		next := make([]int, n)
		refined := make(map[string]int)
		for i, s := range a.States {
			var b strings.Builder
			fmt.Fprintf(&b, "%d", part[i])
			for c := 0; c < 256; c++ {
				if t, ok := s.Out[byte(c)]; ok {
					fmt.Fprintf(&b, ",%d", part[t])
				} else {
					b.WriteString(",-")
				}
			}
			sig := b.String()
			id, ok := refined[sig]
			if !ok {
				id = len(refined)
				refined[sig] = id
			}
			next[i] = id
		}
		part = next
		if len(refined) == count {
			break
		}
		count = len(refined)
	}

	// Dense representative ids in first-occurrence order keep the output
	// deterministic.
	newID := make([]int, count)
	for i := range newID {
		newID[i] = -1
	}
	var reps []int
	for i := 0; i < n; i++ {
		if newID[part[i]] == -1 {
			newID[part[i]] = len(reps)
			reps = append(reps, i)
		}
	}

	states := make([]State, len(reps))
	for ni, rep := range reps {
		old := a.States[rep]
		out := make(map[byte]int, len(old.Out))
		for c, t := range old.Out {
			out[c] = newID[part[t]]
		}
		accepts := make([]Accept, len(old.Accepts))
		copy(accepts, old.Accepts)
		for j := range accepts {
			if accepts[j].RightCtx.Kind == RightCtxState {
				accepts[j].RightCtx.State = newID[part[accepts[j].RightCtx.State]]
			}
		}
		states[ni] = State{Accepts: accepts, Out: out}
	}

	starts := make([]int, len(a.Starts))
	for i, s := range a.Starts {
		starts[i] = newID[part[s]]
	}

	return &Automaton{Starts: starts, States: states}
}
