// Package lexgen compiles named lexical rules into a deterministic finite
// automaton whose accepting states carry the priority, context and action
// metadata needed to resolve ambiguity at scan time, together with the
// encoded start conditions and hoisted action declarations an external
// template engine renders into a scanner.
package lexgen

import (
	"fmt"

	"github.com/lexkit/lexgen/internal/compiler"
)

// Core value types, re-exported for callers assembling rule sets.
type (
	Regex     = compiler.Regex
	Empty     = compiler.Empty
	CharClass = compiler.CharClass
	Seq       = compiler.Seq
	Alt       = compiler.Alt
	Star      = compiler.Star
	Plus      = compiler.Plus
	Opt       = compiler.Opt

	CharSet           = compiler.CharSet
	StartCode         = compiler.StartCode
	Rule              = compiler.Rule
	RuleSet           = compiler.RuleSet
	RightContext      = compiler.RightContext
	NoRightContext    = compiler.NoRightContext
	RightContextRegex = compiler.RightContextRegex
	RightContextCode  = compiler.RightContextCode
	RightContextRef   = compiler.RightContextRef

	Automaton  = compiler.Automaton
	State      = compiler.State
	Accept     = compiler.Accept
	Scheme     = compiler.Scheme
	SchemeKind = compiler.SchemeKind
	StrType    = compiler.StrType
	TypeInfo   = compiler.TypeInfo
	Target     = compiler.Target
	ActionDecl = compiler.ActionDecl
	Output     = compiler.Output
)

const (
	SchemeDefault = compiler.SchemeDefault
	SchemeGScan   = compiler.SchemeGScan
	SchemeBasic   = compiler.SchemeBasic
	SchemePosn    = compiler.SchemePosn
	SchemeMonad   = compiler.SchemeMonad

	StrText           = compiler.StrText
	StrLazyBytes      = compiler.StrLazyBytes
	StrStrictBytes    = compiler.StrStrictBytes
	StrStructuredText = compiler.StrStructuredText

	TargetGo     = compiler.TargetGo
	TargetTinyGo = compiler.TargetTinyGo

	RightCtxNone  = compiler.RightCtxNone
	RightCtxState = compiler.RightCtxState
	RightCtxCode  = compiler.RightCtxCode

	DefaultAlphabetSize = compiler.DefaultAlphabetSize
)

// Options configures a compilation run.
type Options struct {
	// Rules is the ordered rule set; rule order is priority.
	Rules compiler.RuleSet

	// Scheme selects the runtime calling convention for actions.
	Scheme compiler.Scheme

	// Target selects the backend host for rendered output.
	Target compiler.Target

	// AlphabetSize bounds the input byte range (default 256).
	AlphabetSize int

	// Minimize merges equivalent states after construction.
	Minimize bool

	// Verbose enables logging of analysis decisions to stderr.
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if len(o.Rules.Rules) == 0 {
		return fmt.Errorf("rule set cannot be empty")
	}
	for i, r := range o.Rules.Rules {
		if r.Regex == nil {
			return fmt.Errorf("rule %d has no regex", i)
		}
	}
	if o.AlphabetSize < 0 || o.AlphabetSize > 256 {
		return fmt.Errorf("alphabet size must be within 0..256")
	}
	return nil
}

// Compile runs the whole pipeline: start-code encoding, action extraction,
// automaton construction and optional minimization.
func Compile(opts Options) (*Output, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	c := compiler.New(compiler.Config{
		RuleSet:      opts.Rules,
		Scheme:       opts.Scheme,
		Target:       opts.Target,
		AlphabetSize: opts.AlphabetSize,
		Minimize:     opts.Minimize,
		Verbose:      opts.Verbose,
	})
	return c.Compile()
}

// EncodeStartCodes assigns dense integer codes to start-condition names.
// The returned code list always begins with the default code 0.
func EncodeStartCodes(rs RuleSet) (RuleSet, []int, string, error) {
	return compiler.EncodeStartCodes(rs)
}

// BuildAutomaton compiles an encoded rule set into a DFA.
func BuildAutomaton(rs RuleSet, alphabetSize int) (*Automaton, error) {
	return compiler.BuildAutomaton(rs, alphabetSize)
}

// Minimize merges equivalent states; accept metadata is never conflated.
func Minimize(a *Automaton) *Automaton {
	return compiler.Minimize(a)
}

// UsesPredicates reports whether any accept carries a context predicate.
func UsesPredicates(a *Automaton) bool {
	return a.UsesPredicates()
}

// ExtractActions hoists inline action fragments into positional
// declarations under the given scheme.
func ExtractActions(scheme Scheme, rs RuleSet) (RuleSet, []ActionDecl) {
	return compiler.ExtractActions(scheme, rs)
}

// SchemeFeatureFlags returns the renderer feature flags for a scheme; nil
// only for the default scheme.
func SchemeFeatureFlags(scheme Scheme) []string {
	return scheme.FeatureFlags()
}

// RenderActionDecls serializes hoisted action declarations as source text.
func RenderActionDecls(decls []ActionDecl) string {
	return compiler.RenderActionDecls(decls)
}

// Nullable reports whether a regex matches the empty string.
func Nullable(r Regex) bool {
	return compiler.Nullable(r)
}

// Repeat expands a bounded repetition r{min,max}; max < 0 means unbounded.
func Repeat(r Regex, min, max int) Regex {
	return compiler.Repeat(r, min, max)
}

// SingleChar returns the character set containing exactly c.
func SingleChar(c byte) CharSet {
	return compiler.SingleChar(c)
}

// CharRange returns the character set of all bytes in [lo, hi].
func CharRange(lo, hi byte) CharSet {
	return compiler.CharRange(lo, hi)
}

// Chars returns the character set containing every byte of chars.
func Chars(chars string) CharSet {
	return compiler.Chars(chars)
}
