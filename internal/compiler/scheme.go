package compiler

import "github.com/lexkit/lexgen/internal/codegen"

// SchemeKind selects the runtime calling convention generated actions use.
type SchemeKind int

const (
	SchemeDefault SchemeKind = iota
	SchemeGScan
	SchemeBasic
	SchemePosn
	SchemeMonad
)

func (k SchemeKind) String() string {
	switch k {
	case SchemeDefault:
		return "default"
	case SchemeGScan:
		return "gscan"
	case SchemeBasic:
		return "basic"
	case SchemePosn:
		return "posn"
	case SchemeMonad:
		return "monad"
	}
	return "unknown"
}

// StrType is the concrete input-text representation a scheme is
// parameterized over. The lazy and strict byte variants share a feature flag
// (both drive byte-oriented input) but stay distinct values because they
// select different numeric offset types in action signatures.
type StrType int

const (
	StrText StrType = iota
	StrLazyBytes
	StrStrictBytes
	StrStructuredText
)

func (t StrType) String() string {
	switch t {
	case StrText:
		return "text"
	case StrLazyBytes:
		return "lazy bytes"
	case StrStrictBytes:
		return "strict bytes"
	case StrStructuredText:
		return "structured text"
	}
	return "unknown"
}

// TypeName returns the canonical textual type of this representation in
// generated code. These names are part of the generated scanner's visible
// type surface.
func (t StrType) TypeName() string {
	switch t {
	case StrLazyBytes, StrStrictBytes:
		return codegen.BytesTypeName
	case StrStructuredText:
		return codegen.RunesTypeName
	}
	return codegen.TextTypeName
}

// TypeInfo is the optional typing a scheme carries for generated action
// declarations: a result type and an optional constraint the external
// renderer may attach. Absent TypeInfo means "emit no type signatures", not
// an error.
type TypeInfo struct {
	Constraint string
	Result     string
}

// Scheme is an immutable configuration value selected once per compilation
// run. Str is meaningful for Basic, Posn and Monad; UserState only for
// Monad.
type Scheme struct {
	Kind      SchemeKind
	Type      *TypeInfo
	Str       StrType
	UserState bool
}

// Target selects the backend host for the rendered output. It only affects
// which declarations the external renderer may assume exist, never engine
// behavior.
type Target int

const (
	// TargetGo is the full-feature host.
	TargetGo Target = iota
	// TargetTinyGo is the reduced-feature host.
	TargetTinyGo
)

func (t Target) String() string {
	if t == TargetTinyGo {
		return "tinygo"
	}
	return "go"
}

// FeatureFlags returns the feature-flag symbols controlling which runtime
// support code the renderer must include for this scheme. The mapping is
// fixed and total; nil is returned only for the default scheme.
func (s Scheme) FeatureFlags() []string {
	switch s.Kind {
	case SchemeGScan:
		return []string{"GSCAN"}
	case SchemeBasic:
		switch s.Str {
		case StrLazyBytes:
			return []string{"BASIC_BYTESTRING"}
		case StrStrictBytes:
			return []string{"STRICT_BYTESTRING"}
		case StrStructuredText:
			return []string{"STRICT_TEXT"}
		default:
			return []string{"BASIC"}
		}
	case SchemePosn:
		switch s.Str {
		case StrLazyBytes, StrStrictBytes:
			return []string{"POSN_BYTESTRING"}
		case StrStructuredText:
			return []string{"POSN_STRICT_TEXT"}
		default:
			return []string{"POSN"}
		}
	case SchemeMonad:
		var flags []string
		switch s.Str {
		case StrLazyBytes, StrStrictBytes:
			flags = []string{"MONAD_BYTESTRING"}
		case StrStructuredText:
			flags = []string{"MONAD_STRICT_TEXT"}
		default:
			flags = []string{"MONAD"}
		}
		if s.UserState {
			flags = append(flags, "MONAD_USER_STATE")
		}
		return flags
	}
	return nil
}
