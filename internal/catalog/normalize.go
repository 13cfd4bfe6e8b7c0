package catalog

import (
	"strings"
	"unicode"
)

// NormalizeTitle produces the canonical comparison key for a title: letters
// and digits upper-cased, runs of whitespace collapsed to a single space,
// everything else stripped. Total and idempotent; empty input yields an
// empty key.
func NormalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingSpace := false
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}
