package compiler

import (
	"fmt"
	"strings"
)

// CharSet is a set of byte values represented as a 256-bit bitmap.
// Regex character classes, leading-context predicates and transition edges
// are all expressed over CharSet rather than single bytes.
type CharSet [32]byte

// SingleChar returns the set containing exactly c.
func SingleChar(c byte) CharSet {
	var s CharSet
	s[c/8] |= 1 << (c % 8)
	return s
}

// CharRange returns the set of all bytes in [lo, hi].
func CharRange(lo, hi byte) CharSet {
	var s CharSet
	for c := int(lo); c <= int(hi); c++ {
		s[c/8] |= 1 << (c % 8)
	}
	return s
}

// Chars returns the set containing every byte of chars.
func Chars(chars string) CharSet {
	var s CharSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s[c/8] |= 1 << (c % 8)
	}
	return s
}

// Union returns the set of bytes in s or t.
func (s CharSet) Union(t CharSet) CharSet {
	var u CharSet
	for i := range s {
		u[i] = s[i] | t[i]
	}
	return u
}

// Contains reports whether c is in the set.
func (s CharSet) Contains(c byte) bool {
	return s[c/8]&(1<<(c%8)) != 0
}

// IsEmpty reports whether the set contains no bytes.
func (s CharSet) IsEmpty() bool {
	for _, b := range s {
		if b != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether s and t contain the same bytes.
func (s CharSet) Equal(t CharSet) bool {
	return s == t
}

// key returns a canonical representation usable as a map key component.
func (s CharSet) key() string {
	return fmt.Sprintf("%x", s[:])
}

// String renders the set as a range list, e.g. [0x30-0x39 0x5f].
func (s CharSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for c := 0; c < 256; c++ {
		if !s.Contains(byte(c)) {
			continue
		}
		lo := c
		for c+1 < 256 && s.Contains(byte(c+1)) {
			c++
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		if lo == c {
			fmt.Fprintf(&b, "%#02x", lo)
		} else {
			fmt.Fprintf(&b, "%#02x-%#02x", lo, c)
		}
	}
	b.WriteByte(']')
	return b.String()
}
