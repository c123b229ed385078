package lexgen

import (
	"strings"
	"testing"
)

func TestOptionsValidate(t *testing.T) {
	emit := "emit"
	valid := RuleSet{Name: "tokens", Rules: []Rule{
		{Regex: CharClass{Set: Chars("a")}, Action: &emit},
	}}

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"valid", Options{Rules: valid}, ""},
		{"empty rule set", Options{}, "rule set cannot be empty"},
		{
			"missing regex",
			Options{Rules: RuleSet{Rules: []Rule{{}}}},
			"rule 0 has no regex",
		},
		{
			"alphabet too large",
			Options{Rules: valid, AlphabetSize: 512},
			"alphabet size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	emit := "func(input Input, length int64) (Token, error) { return Ident(input), nil }"
	opts := Options{
		Rules: RuleSet{Name: "tokens", Rules: []Rule{
			{Regex: Plus{Inner: CharClass{Set: CharRange('a', 'z')}}, Action: &emit},
		}},
		Scheme: Scheme{
			Kind:      SchemeMonad,
			Type:      &TypeInfo{Result: "Token"},
			Str:       StrLazyBytes,
			UserState: true,
		},
		Minimize: true,
	}

	out, err := Compile(opts)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	wantFlags := []string{"MONAD_BYTESTRING", "MONAD_USER_STATE"}
	if len(out.FeatureFlags) != len(wantFlags) {
		t.Fatalf("expected flags %v, got %v", wantFlags, out.FeatureFlags)
	}
	for i, f := range wantFlags {
		if out.FeatureFlags[i] != f {
			t.Fatalf("expected flags %v, got %v", wantFlags, out.FeatureFlags)
		}
	}

	if !strings.Contains(out.ActionDeclText, "length int64") {
		t.Errorf("lazy-byte Monad actions must use the wide offset type:\n%s", out.ActionDeclText)
	}
	if UsesPredicates(out.Automaton) {
		t.Error("no contexts in play, UsesPredicates must be false")
	}
	if !Nullable(Star{Inner: CharClass{Set: Chars("a")}}) {
		t.Error("star must be nullable through the re-exported helper")
	}
}

func TestCompileInvalidOptions(t *testing.T) {
	if _, err := Compile(Options{}); err == nil || !strings.Contains(err.Error(), "invalid options") {
		t.Fatalf("expected invalid options error, got %v", err)
	}
}
