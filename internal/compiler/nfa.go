package compiler

import (
	"fmt"
	"sort"
)

// The NFA is the intermediate form between the rule set and subset
// construction. Each rule contributes a fragment whose exit state carries
// the rule's accept record; a nullable regex leaves an epsilon path from
// fragment entry to exit, so acceptance without input falls out of the
// epsilon closure.

type nfaEdge struct {
	set CharSet
	to  int
}

type nfaState struct {
	eps     []int
	edges   []nfaEdge
	accepts []Accept
}

type nfa struct {
	states []nfaState
	// starts[code] is the initial state for that start condition.
	starts []int
	// satellites are the entry states of trailing-context fragments.
	// Accept records reference them by NFA id until determinization
	// rewrites the references to DFA state ids.
	satellites []int
}

type nfaBuilder struct {
	states []nfaState
}

func (b *nfaBuilder) newState() int {
	b.states = append(b.states, nfaState{})
	return len(b.states) - 1
}

func (b *nfaBuilder) addEps(from, to int) {
	b.states[from].eps = append(b.states[from].eps, to)
}

func (b *nfaBuilder) addEdge(from int, set CharSet, to int) {
	b.states[from].edges = append(b.states[from].edges, nfaEdge{set: set, to: to})
}

// compile adds the states matching r between from and the returned exit
// state. Fragment construction follows the usual Thompson shapes.
func (b *nfaBuilder) compile(r Regex, from int) int {
	if r == nil {
		r = Empty{}
	}
	switch v := r.(type) {
	case Empty:
		to := b.newState()
		b.addEps(from, to)
		return to
	case CharClass:
		to := b.newState()
		b.addEdge(from, v.Set, to)
		return to
	case Seq:
		return b.compile(v.Right, b.compile(v.Left, from))
	case Alt:
		join := b.newState()
		b.addEps(b.compile(v.Left, from), join)
		b.addEps(b.compile(v.Right, from), join)
		return join
	case Star:
		hub := b.newState()
		b.addEps(from, hub)
		b.addEps(b.compile(v.Inner, hub), hub)
		return hub
	case Plus:
		return b.compile(Star{Inner: v.Inner}, b.compile(v.Inner, from))
	case Opt:
		join := b.newState()
		b.addEps(from, join)
		b.addEps(b.compile(v.Inner, from), join)
		return join
	default:
		panic(fmt.Sprintf("compile: unknown regex variant %T", r))
	}
}

// buildNFA compiles an encoded rule set into a tagged epsilon-NFA with one
// initial state per start code. Rules listing no start codes are active in
// every start condition.
func buildNFA(rs RuleSet, numStartCodes int) (*nfa, error) {
	b := &nfaBuilder{}
	starts := make([]int, numStartCodes)
	for i := range starts {
		starts[i] = b.newState()
	}
	n := &nfa{starts: starts}

	// Structurally equal trailing contexts share one satellite fragment, so
	// rules with the same context regex reference the same region.
	satellites := make(map[string]int)

	for i, rule := range rs.Rules {
		ref := RightContextRef{}
		switch rc := rule.RightCtx.(type) {
		case RightContextRegex:
			// Trailing-context regexes become satellite fragments,
			// evaluated only once a tentative match point is found.
			// The exit gets an action-less marker accept so the
			// region is recognizable as accepting; its priority is
			// the region's ordinal, not the owning rule's.
			key := rightContextKey(rc)
			entry, ok := satellites[key]
			if !ok {
				entry = b.newState()
				exit := b.compile(rc.Regex, entry)
				b.states[exit].accepts = append(b.states[exit].accepts, Accept{Priority: len(n.satellites)})
				satellites[key] = entry
				n.satellites = append(n.satellites, entry)
			}
			ref = RightContextRef{Kind: RightCtxState, State: entry}
		case RightContextCode:
			ref = RightContextRef{Kind: RightCtxCode, Code: rc.Code}
		}

		entry := b.newState()
		exit := b.compile(rule.Regex, entry)
		b.states[exit].accepts = append(b.states[exit].accepts, Accept{
			Priority: i,
			Action:   rule.Action,
			LeftCtx:  rule.LeftCtx,
			RightCtx: ref,
		})

		if len(rule.StartCodes) == 0 {
			for _, s := range starts {
				b.addEps(s, entry)
			}
			continue
		}
		for _, sc := range rule.StartCodes {
			if sc.Code < 0 || sc.Code >= numStartCodes {
				return nil, fmt.Errorf("rule %d: start condition %q has unencoded code %d", i, sc.Name, sc.Code)
			}
			b.addEps(starts[sc.Code], entry)
		}
	}

	n.states = b.states
	return n, nil
}

// closure returns the sorted epsilon closure of seed.
func (n *nfa) closure(seed []int) []int {
	visited := make([]bool, len(n.states))
	stack := make([]int, 0, len(seed))
	for _, s := range seed {
		if !visited[s] {
			visited[s] = true
			stack = append(stack, s)
		}
	}
	var out []int
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, s)
		for _, t := range n.states[s].eps {
			if !visited[t] {
				visited[t] = true
				stack = append(stack, t)
			}
		}
	}
	sort.Ints(out)
	return out
}
