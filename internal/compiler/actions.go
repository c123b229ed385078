package compiler

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/lexkit/lexgen/internal/codegen"
)

// ActionDecl is one hoisted action: the synthetic reference name, the type
// its signature derives from the active scheme (empty when the scheme
// carries no type info), the constraint passed through untouched for the
// renderer, and the original fragment as its body.
type ActionDecl struct {
	Rule       int
	Name       string
	Type       string
	Constraint string
	Body       string
}

// ExtractActions replaces each rule's inline action fragment with a
// positional reference name and returns the matching typed declarations.
// Rule n receives action_n whether or not earlier rules carry actions, so
// gaps in the emitted names correspond exactly to actionless rules; those
// rules get no declaration and keep their action field absent.
func ExtractActions(scheme Scheme, rs RuleSet) (RuleSet, []ActionDecl) {
	sig, typed := actionSignature(scheme)
	constraint := ""
	if scheme.Type != nil {
		constraint = scheme.Type.Constraint
	}

	out := RuleSet{Name: rs.Name, Rules: make([]Rule, len(rs.Rules))}
	var decls []ActionDecl
	for i, rule := range rs.Rules {
		hoisted := rule
		if rule.Action != nil {
			name := codegen.ActionName(i)
			decl := ActionDecl{Rule: i, Name: name, Constraint: constraint, Body: *rule.Action}
			if typed {
				decl.Type = sig
			}
			decls = append(decls, decl)
			hoisted.Action = &name
		}
		out.Rules[i] = hoisted
	}
	return out, decls
}

// actionSignature derives the declared type of a hoisted action from the
// scheme. The second result is false when the scheme carries no type info,
// in which case actions are hoisted untyped.
func actionSignature(s Scheme) (string, bool) {
	if s.Type == nil {
		return "", false
	}
	res := s.Type.Result
	switch s.Kind {
	case SchemeGScan:
		return fmt.Sprintf("func(pos %s, c byte, input %s, sc int) %s",
			codegen.PosTypeName, codegen.TextTypeName, res), true
	case SchemeBasic:
		return fmt.Sprintf("func(text %s) %s", s.Str.TypeName(), res), true
	case SchemePosn:
		return fmt.Sprintf("func(pos %s, text %s) %s",
			codegen.PosTypeName, s.Str.TypeName(), res), true
	case SchemeMonad:
		// The lazy byte representation addresses input with the wide
		// offset type; every other representation uses the narrow one.
		off := codegen.OffsetTypeName
		if s.Str == StrLazyBytes {
			off = codegen.WideOffsetTypeName
		}
		return fmt.Sprintf("func(input %s, length %s) (%s, error)",
			codegen.InputTypeName, off, res), true
	default:
		return fmt.Sprintf("func(pos %s, text %s) %s",
			codegen.PosTypeName, codegen.TextTypeName, res), true
	}
}

// RenderActionDecls serializes hoisted declarations as Go source text. The
// bodies are opaque fragments; the engine guarantees well-formed identifiers
// but not the surrounding template.
func RenderActionDecls(decls []ActionDecl) string {
	var b strings.Builder
	for _, d := range decls {
		st := jen.Var().Id(d.Name)
		if d.Type != "" {
			st.Id(d.Type)
		}
		st.Op("=").Id(d.Body)
		fmt.Fprintf(&b, "%#v\n", st)
	}
	return b.String()
}
