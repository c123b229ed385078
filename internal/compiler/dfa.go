package compiler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultAlphabetSize is the byte alphabet the generated scanners consume.
const DefaultAlphabetSize = 256

// BuildAutomaton compiles an encoded rule set into a DFA by subset
// construction. For every start condition and input string, the accepts
// reachable at the terminal state are exactly the rules matching that prefix
// under longest-match / highest-priority / leftmost-rule semantics. The
// construction is deterministic and side-effect-free.
func BuildAutomaton(rs RuleSet, alphabetSize int) (*Automaton, error) {
	if alphabetSize <= 0 {
		alphabetSize = DefaultAlphabetSize
	}
	if alphabetSize > 256 {
		return nil, fmt.Errorf("alphabet size %d exceeds byte range", alphabetSize)
	}

	numCodes := 1
	for i, rule := range rs.Rules {
		for _, sc := range rule.StartCodes {
			if sc.Code < 0 {
				return nil, fmt.Errorf("rule %d: start condition %q is unencoded; run EncodeStartCodes first", i, sc.Name)
			}
			if sc.Code+1 > numCodes {
				numCodes = sc.Code + 1
			}
		}
	}

	n, err := buildNFA(rs, numCodes)
	if err != nil {
		return nil, err
	}

	// Canonical sorted configuration sets keyed by their id list; the key
	// doubles as the dedup cache bounding the states explored.
	var (
		sets     [][]int
		stateMap = make(map[string]int)
	)
	intern := func(set []int) int {
		key := setKey(set)
		if id, ok := stateMap[key]; ok {
			return id
		}
		id := len(sets)
		stateMap[key] = id
		sets = append(sets, set)
		return id
	}

	starts := make([]int, numCodes)
	for code, s := range n.starts {
		starts[code] = intern(n.closure([]int{s}))
	}
	// Seed satellite regions before any accepts are materialized so that
	// right-context references can be rewritten to DFA ids.
	satellite := make(map[int]int, len(n.satellites))
	for _, s := range n.satellites {
		satellite[s] = intern(n.closure([]int{s}))
	}

	// Worklist over sets; intern appends, so a plain index scan visits
	// every discovered state exactly once. Bytes are grouped into classes
	// by which edges of the configuration contain them, so the move set
	// and its closure are computed once per class rather than per byte.
	outs := make([]map[byte]int, 0, len(sets))
	for si := 0; si < len(sets); si++ {
		var edges []nfaEdge
		for _, id := range sets[si] {
			edges = append(edges, n.states[id].edges...)
		}

		classes := make(map[string][]byte)
		var order []string
		for b := 0; b < alphabetSize; b++ {
			mask := make([]byte, (len(edges)+7)/8)
			hit := false
			for ei, e := range edges {
				if e.set.Contains(byte(b)) {
					mask[ei/8] |= 1 << (ei % 8)
					hit = true
				}
			}
			if !hit {
				continue
			}
			key := string(mask)
			if _, ok := classes[key]; !ok {
				order = append(order, key)
			}
			classes[key] = append(classes[key], byte(b))
		}

		out := make(map[byte]int)
		for _, key := range order {
			var move []int
			for ei, e := range edges {
				if key[ei/8]&(1<<(ei%8)) != 0 {
					move = append(move, e.to)
				}
			}
			target := intern(n.closure(move))
			for _, c := range classes[key] {
				out[c] = target
			}
		}
		outs = append(outs, out)
	}

	states := make([]State, len(sets))
	for si, set := range sets {
		accepts, err := collectAccepts(n, set, satellite)
		if err != nil {
			return nil, err
		}
		states[si] = State{Accepts: accepts, Out: outs[si]}
	}

	return &Automaton{Starts: starts, States: states}, nil
}

// collectAccepts unions the accept records of every configuration in the
// set, rewrites satellite references to DFA ids, drops semantic duplicates
// and orders the survivors by ascending priority. All distinct accepts are
// retained, not just the best one: a context-guarded accept can fail at scan
// time and the next one in priority order must then be tried.
func collectAccepts(n *nfa, set []int, satellite map[int]int) ([]Accept, error) {
	var accepts []Accept
	for _, id := range set {
		for _, a := range n.states[id].accepts {
			if a.RightCtx.Kind == RightCtxState {
				dfaID, ok := satellite[a.RightCtx.State]
				if !ok {
					return nil, &ContractViolationError{
						Op:     "subset construction",
						Detail: fmt.Sprintf("trailing-context fragment %d was never seeded", a.RightCtx.State),
					}
				}
				a.RightCtx.State = dfaID
			}
			accepts = append(accepts, a)
		}
	}
	if len(accepts) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(accepts))
	uniq := make([]Accept, 0, len(accepts))
	for _, a := range accepts {
		sig := a.signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		uniq = append(uniq, a)
	}
	sort.SliceStable(uniq, func(i, j int) bool { return uniq[i].Priority < uniq[j].Priority })
	return uniq, nil
}

func setKey(set []int) string {
	var b strings.Builder
	for i, id := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
