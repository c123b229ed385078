package compiler

import "testing"

func TestNullable(t *testing.T) {
	digit := CharClass{Set: CharRange('0', '9')}
	any := CharClass{Set: CharRange(0, 255)}

	tests := []struct {
		name string
		r    Regex
		want bool
	}{
		{"empty", Empty{}, true},
		{"char class", digit, false},
		{"star", Star{Inner: digit}, true},
		{"plus of class", Plus{Inner: digit}, false},
		{"plus of star", Plus{Inner: Star{Inner: digit}}, true},
		{"optional", Opt{Inner: digit}, true},
		{"seq of empty and star", Seq{Left: Empty{}, Right: Star{Inner: any}}, true},
		{"seq of classes", Seq{Left: digit, Right: digit}, false},
		{"seq nullable left only", Seq{Left: Empty{}, Right: digit}, false},
		{"alt with empty branch", Alt{Left: digit, Right: Empty{}}, true},
		{"alt without empty branch", Alt{Left: digit, Right: any}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nullable(tt.r); got != tt.want {
				t.Errorf("Nullable(%s) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRepeat(t *testing.T) {
	digit := CharClass{Set: CharRange('0', '9')}

	tests := []struct {
		name     string
		min, max int
		nullable bool
	}{
		{"zero to two", 0, 2, true},
		{"one to three", 1, 3, false},
		{"exactly two", 2, 2, false},
		{"two or more", 2, -1, false},
		{"zero or more", 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Repeat(digit, tt.min, tt.max)
			if got := Nullable(r); got != tt.nullable {
				t.Errorf("Nullable(%s) = %v, want %v", r, got, tt.nullable)
			}
		})
	}
}

func TestRightContextEquality(t *testing.T) {
	digit := CharClass{Set: CharRange('0', '9')}

	tests := []struct {
		name string
		a, b RightContext
		want bool
	}{
		{"none vs nil", NoRightContext{}, nil, true},
		{"equal regexes", RightContextRegex{Regex: digit}, RightContextRegex{Regex: CharClass{Set: CharRange('0', '9')}}, true},
		{"different regexes", RightContextRegex{Regex: digit}, RightContextRegex{Regex: Star{Inner: digit}}, false},
		{"equal code", RightContextCode{Code: "guard()"}, RightContextCode{Code: "guard()"}, true},
		{"code vs regex", RightContextCode{Code: "guard()"}, RightContextRegex{Regex: digit}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualRightContext(tt.a, tt.b); got != tt.want {
				t.Errorf("EqualRightContext = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharSet(t *testing.T) {
	s := CharRange('a', 'c').Union(SingleChar('z'))
	for _, c := range []byte{'a', 'b', 'c', 'z'} {
		if !s.Contains(c) {
			t.Errorf("set should contain %q", c)
		}
	}
	for _, c := range []byte{'d', 'y', 0, 255} {
		if s.Contains(c) {
			t.Errorf("set should not contain %q", c)
		}
	}
	if s.IsEmpty() {
		t.Error("set should not be empty")
	}
	if !(CharSet{}).IsEmpty() {
		t.Error("zero set should be empty")
	}
	if !s.Equal(Chars("abcz")) {
		t.Error("equal sets reported unequal")
	}
}
