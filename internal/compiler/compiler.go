// Package compiler implements the core lexer compilation logic: rule sets
// with start conditions, contexts and positional priorities are encoded and
// compiled into a metadata-rich DFA for an external renderer.
package compiler

import "fmt"

// Config holds the configuration for one compilation run.
type Config struct {
	RuleSet      RuleSet
	Scheme       Scheme
	Target       Target
	AlphabetSize int  // 0 = DefaultAlphabetSize
	Minimize     bool // merge equivalent states after construction
	Verbose      bool // enable verbose logging of analysis decisions
}

// Compiler runs the compilation pipeline over a rule set.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// Logger exposes the compiler's logger so callers can redirect its output.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Output is the compiled artifact handed to the external renderer. All
// declaration text is opaque to the engine; the automaton is final and never
// mutated after compilation.
type Output struct {
	Automaton      *Automaton
	RuleSet        RuleSet // post-encoding, post-extraction
	StartCodes     []int
	StartCodeDecls string
	ActionDecls    []ActionDecl
	ActionDeclText string
	FeatureFlags   []string
	UsesPredicates bool
}

// Compile threads the rule set through start-code encoding and action
// extraction, builds the automaton, and optionally minimizes it. Each stage
// is a pure function over its input; any failure aborts the run with no
// partial artifact.
func (c *Compiler) Compile() (*Output, error) {
	rs := c.config.RuleSet

	c.logger.Section("Rule Analysis")
	c.logger.Log("Rule set: %s (%d rules)", rs.Name, len(rs.Rules))
	c.logger.Log("Scheme: %s, target: %s", c.config.Scheme.Kind, c.config.Target)

	encoded, startCodes, startDecls, err := EncodeStartCodes(rs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode start conditions: %w", err)
	}
	c.logger.Log("Start conditions: %d", len(startCodes))

	extracted, actionDecls := ExtractActions(c.config.Scheme, encoded)
	c.logger.Log("Hoisted actions: %d", len(actionDecls))

	c.logger.Section("Automaton Construction")
	automaton, err := BuildAutomaton(extracted, c.config.AlphabetSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	c.logger.Log("DFA states: %d", len(automaton.States))

	if c.config.Minimize {
		before := len(automaton.States)
		automaton = Minimize(automaton)
		c.logger.Log("Minimized: %d -> %d states", before, len(automaton.States))
	}

	usesPreds := automaton.UsesPredicates()
	c.logger.Log("Uses context predicates: %v", usesPreds)

	return &Output{
		Automaton:      automaton,
		RuleSet:        extracted,
		StartCodes:     startCodes,
		StartCodeDecls: startDecls,
		ActionDecls:    actionDecls,
		ActionDeclText: RenderActionDecls(actionDecls),
		FeatureFlags:   c.config.Scheme.FeatureFlags(),
		UsesPredicates: usesPreds,
	}, nil
}
