package pathway

import (
	"strings"
	"unicode"
)

// fillerWords are dropped from institution names before comparison. They
// carry no identity ("University of Florida" vs "Florida University").
var fillerWords = map[string]bool{
	"UNIVERSITY": true,
	"THE":        true,
	"OF":         true,
	"AT":         true,
}

// NormalizeName canonicalizes an institution name for deduplication: strips
// parenthetical text and punctuation, removes filler words, collapses
// whitespace, and uppercases. "Florida International University (FIU)" and
// "florida international" normalize to the same key.
func NormalizeName(name string) string {
	// Drop parenthetical segments.
	var b strings.Builder
	depth := 0
	for _, r := range name {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
				b.WriteRune(r)
			} else {
				b.WriteRune(' ')
			}
		}
	}

	words := strings.Fields(strings.ToUpper(b.String()))
	kept := words[:0]
	for _, w := range words {
		if !fillerWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
