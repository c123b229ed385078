package compiler

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/lexkit/lexgen/internal/codegen"
)

// DefaultStartCode is the code of the reserved default start condition. Its
// literal name is "0"; it never participates in allocation.
const DefaultStartCode = 0

// EncodeStartCodes assigns dense integer codes to the start-condition names
// of a rule set. Distinct non-default names are numbered from 1 in order of
// first occurrence, every occurrence of a name maps to the same code, and
// re-encoding an already encoded set is idempotent.
//
// It returns the rewritten rule set, the ordered list of assigned codes
// (default first), and declaration text binding each name to its code for
// the external renderer.
func EncodeStartCodes(rs RuleSet) (RuleSet, []int, string, error) {
	// Collect every distinct name before resolving anything; resolution
	// relies on this pass having seen the whole collection.
	var names []string
	codes := map[string]int{"0": DefaultStartCode}
	for _, rule := range rs.Rules {
		for _, sc := range rule.StartCodes {
			if _, ok := codes[sc.Name]; ok {
				continue
			}
			codes[sc.Name] = len(names) + 1
			names = append(names, sc.Name)
		}
	}

	out := RuleSet{Name: rs.Name, Rules: make([]Rule, len(rs.Rules))}
	for i, rule := range rs.Rules {
		encoded := rule
		if len(rule.StartCodes) > 0 {
			encoded.StartCodes = make([]StartCode, len(rule.StartCodes))
			for j, sc := range rule.StartCodes {
				code, err := resolveStartCode(codes, sc.Name)
				if err != nil {
					return RuleSet{}, nil, "", err
				}
				encoded.StartCodes[j] = StartCode{Name: sc.Name, Code: code}
			}
		}
		out.Rules[i] = encoded
	}

	ordered := make([]int, 0, len(names)+1)
	ordered = append(ordered, DefaultStartCode)
	for i := range names {
		ordered = append(ordered, i+1)
	}

	return out, ordered, renderStartCodeDecls(names), nil
}

// resolveStartCode looks up a collected name. A miss means the collection
// was mutated between collection and resolution, which is an unrecoverable
// internal bug rather than a specification error.
func resolveStartCode(codes map[string]int, name string) (int, error) {
	code, ok := codes[name]
	if !ok {
		return 0, &ContractViolationError{
			Op:     "start-code encoding",
			Detail: fmt.Sprintf("start condition %q was not collected in this pass", name),
		}
	}
	return code, nil
}

// renderStartCodeDecls emits one const block binding each named start
// condition to its code. The default condition needs no binding.
func renderStartCodeDecls(names []string) string {
	if len(names) == 0 {
		return ""
	}
	defs := make([]jen.Code, len(names))
	for i, name := range names {
		defs[i] = jen.Id(codegen.StartCodeName(name)).Op("=").Lit(i + 1)
	}
	return fmt.Sprintf("%#v\n", jen.Const().Defs(defs...))
}
