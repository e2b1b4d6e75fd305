package match

import (
	"strings"
	"unicode"
)

// Words splits an identifier into words. Underscores, hyphens and spaces
// separate words, as do lower-to-upper transitions; a run of capitals stays
// one word unless it is followed by a lowercase letter:
//
//	todo_entry  -> todo, entry
//	todoEntry   -> todo, Entry
//	HTTPServer  -> HTTP, Server
func Words(s string) []string {
	var (
		words []string
		cur   strings.Builder
	)

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		cur.WriteRune(r)
	}

	flush()

	return words
}

// Fold reduces an identifier to lowercase letters and digits so that
// "todo_entry", "todo-entry" and "TodoEntry" compare equal.
func Fold(s string) string {
	return strings.ToLower(strings.Join(Words(s), ""))
}
