// Package codegen provides code generation helpers and constants.
package codegen

import "fmt"

// Identifier prefixes and type names used in generated code. The type names
// are part of the generated scanner's visible surface and must match what the
// runtime support code expects for each wrapper flavour.
const (
	ActionPrefix    = "action_"
	StartCodePrefix = "sc"

	PosTypeName        = "Pos"
	InputTypeName      = "Input"
	TextTypeName       = "string"
	BytesTypeName      = "[]byte"
	RunesTypeName      = "[]rune"
	OffsetTypeName     = "int"
	WideOffsetTypeName = "int64"
)

// ActionName returns the declaration name for the action of rule n.
// Names are positional: rule n always gets action_n, whether or not the
// rules before it carry actions.
func ActionName(n int) string {
	return fmt.Sprintf("%s%d", ActionPrefix, n)
}

// StartCodeName returns the constant name bound to a start-condition name.
func StartCodeName(name string) string {
	ident := SanitizeIdent(name)
	if ident[0] >= 'a' && ident[0] <= 'z' {
		ident = UpperFirst(ident)
	}
	return StartCodePrefix + ident
}

// SanitizeIdent rewrites s into a valid Go identifier body.
func SanitizeIdent(s string) string {
	if s == "" {
		return "_"
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			out = append(out, c)
		case c >= '0' && c <= '9':
			if i == 0 {
				out = append(out, '_')
			}
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
