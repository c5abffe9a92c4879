package words

// IsVowel reports whether c is one of the lowercase vowels a, o, u, e, i.
// The letter 'y' is treated as a consonant.
func IsVowel(c byte) bool {
	switch c {
	case 'a', 'o', 'u', 'e', 'i':
		return true
	}
	return false
}

// isConsonant treats any present non-vowel character as a consonant.
// A zero byte means the neighbour does not exist.
func isConsonant(c byte) bool {
	return c != 0 && !IsVowel(c)
}

// SkipLetter reports whether the character c, preceded by p and followed
// by n, is elided from a word's consonant skeleton. A zero p or n means
// c is the first or the last character of the word.
func SkipLetter(p, c, n byte) bool {
	switch {
	case IsVowel(c) && p != 0:
		// vowels survive only at the start of a word
		return true
	case c == 'y' && isConsonant(n) && isConsonant(p):
		return true
	case c == 'y' && n == 0 && isConsonant(p):
		return true
	case c == 'h' && isConsonant(n):
		return true
	case c == 'h' && isConsonant(p):
		return true
	}
	return false
}

// Shorten reduces a single word to its consonant skeleton.
// The word is lowercased first; "id" is returned unchanged.
//
//	Shorten("payment") // "pymnt"
//	Shorten("method")  // "mtd"
func Shorten(word string) string {
	w := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		w[i] = lower(word[i])
	}
	if string(w) == "id" {
		return "id"
	}

	out := make([]byte, 0, len(w))
	for i, c := range w {
		var p, n byte
		if i > 0 {
			p = w[i-1]
		}
		if i+1 < len(w) {
			n = w[i+1]
		}
		if !SkipLetter(p, c, n) {
			out = append(out, c)
		}
	}
	return string(out)
}

// ShortenAll returns the shortened form of every word in ws, in order.
func ShortenAll(ws []string) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = Shorten(w)
	}
	return out
}
