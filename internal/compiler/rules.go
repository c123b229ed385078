package compiler

// StartCode pairs a start-condition name with its assigned integer code.
// The literal name "0" is reserved for the default condition and always maps
// to code 0. Codes are unresolved (-1 by convention) until EncodeStartCodes
// runs over the containing rule set.
type StartCode struct {
	Name string
	Code int
}

// Rule is a single lexical rule: the start conditions it is active in, an
// optional leading-context predicate on the previous character, the body
// regex, a trailing context, and an optional action fragment.
//
// A rule's priority is its position in the containing RuleSet; it is never
// stored separately, and every transformation pass must preserve rule order.
// A rule with no start codes is active in every start condition.
type Rule struct {
	StartCodes []StartCode
	LeftCtx    *CharSet // nil = no leading context
	Regex      Regex
	RightCtx   RightContext
	Action     *string // nil = no action; holds a reference name after extraction
}

// RuleSet is a named, ordered collection of rules. The encoding passes
// consume a RuleSet and return a new one; values are never mutated in place.
type RuleSet struct {
	Name  string
	Rules []Rule
}
