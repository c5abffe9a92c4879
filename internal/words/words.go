// Package words splits SQL identifiers into lowercase word fragments and
// reduces single words to their consonant skeleton.
package words

import "strings"

// isSeparator reports whether c separates words inside an identifier.
func isSeparator(c byte) bool {
	return c == '_' || c == '-' || c == ' ' || c == '$'
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func lower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// SplitWords splits an identifier into lowercase word fragments.
//
// A word boundary is placed before an uppercase letter that follows a
// non-uppercase character, so a run of capitals opens a single word.
// Separators ('_', '-', ' ', '$') also end a word; consecutive separators
// collapse and leading or trailing ones are dropped.
//
//	SplitWords("abRaCadaBra")        // [ab ra cada bra]
//	SplitWords("_ab_ra___cada_bra_") // [ab ra cada bra]
func SplitWords(s string) []string {
	var b strings.Builder
	b.Grow(len(s) * 2)

	prevUpper := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		upper := isUpper(c)
		if upper && !prevUpper {
			b.WriteByte('_')
		}
		prevUpper = upper

		if isSeparator(c) {
			b.WriteByte('_')
			continue
		}
		b.WriteByte(lower(c))
	}

	return strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
}

// MainWords returns the fragments of s that are longer than one character.
// Single letters carry no phonetic signal and never contribute to an alias.
func MainWords(s string) []string {
	all := SplitWords(s)
	out := all[:0]
	for _, w := range all {
		if len(w) > 1 {
			out = append(out, w)
		}
	}
	return out
}

// IsCamel reports whether s mixes lowercase and uppercase ASCII letters.
func IsCamel(s string) bool {
	smallSeen, capSeen := false, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isLower(c):
			if capSeen {
				return true
			}
			smallSeen = true
		case isUpper(c):
			if smallSeen {
				return true
			}
			capSeen = true
		}
	}
	return false
}
