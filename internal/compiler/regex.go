package compiler

import "fmt"

// Regex is the regular-expression value type consumed by automaton
// construction. Values are immutable tagged variants built once by the
// specification parser; every operation over them is a total function
// implemented with an exhaustive type switch.
type Regex interface {
	isRegex()
	// String renders the expression for diagnostics. The rendering is
	// fully parenthesized, so it doubles as a structural key.
	String() string
}

// Empty matches the empty string.
type Empty struct{}

// CharClass matches exactly one byte drawn from Set.
type CharClass struct {
	Set CharSet
}

// Seq matches Left followed by Right.
type Seq struct {
	Left, Right Regex
}

// Alt matches either Left or Right.
type Alt struct {
	Left, Right Regex
}

// Star matches zero or more repetitions of Inner.
type Star struct {
	Inner Regex
}

// Plus matches one or more repetitions of Inner.
type Plus struct {
	Inner Regex
}

// Opt matches Inner or the empty string.
type Opt struct {
	Inner Regex
}

func (Empty) isRegex()     {}
func (CharClass) isRegex() {}
func (Seq) isRegex()       {}
func (Alt) isRegex()       {}
func (Star) isRegex()      {}
func (Plus) isRegex()      {}
func (Opt) isRegex()       {}

func (Empty) String() string       { return "()" }
func (r CharClass) String() string { return r.Set.String() }
func (r Seq) String() string       { return "(" + r.Left.String() + r.Right.String() + ")" }
func (r Alt) String() string       { return "(" + r.Left.String() + "|" + r.Right.String() + ")" }
func (r Star) String() string      { return r.Inner.String() + "*" }
func (r Plus) String() string      { return r.Inner.String() + "+" }
func (r Opt) String() string       { return r.Inner.String() + "?" }

// Nullable reports whether r matches the empty string.
func Nullable(r Regex) bool {
	switch v := r.(type) {
	case Empty:
		return true
	case CharClass:
		return false
	case Seq:
		return Nullable(v.Left) && Nullable(v.Right)
	case Alt:
		return Nullable(v.Left) || Nullable(v.Right)
	case Star:
		return true
	case Plus:
		return Nullable(v.Inner)
	case Opt:
		return true
	default:
		panic(fmt.Sprintf("Nullable: unknown regex variant %T", r))
	}
}

// Repeat expands a bounded repetition r{min,max} into the core variants.
// max < 0 means unbounded.
func Repeat(r Regex, min, max int) Regex {
	var out Regex = Empty{}
	seq := func(a, b Regex) Regex {
		if _, ok := a.(Empty); ok {
			return b
		}
		return Seq{Left: a, Right: b}
	}
	for i := 0; i < min; i++ {
		out = seq(out, r)
	}
	if max < 0 {
		return seq(out, Star{Inner: r})
	}
	for i := min; i < max; i++ {
		out = seq(out, Opt{Inner: r})
	}
	return out
}
