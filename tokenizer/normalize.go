package tokenizer

import (
	"strings"
	"unicode"
)

// Normalize lowercases a raw token and deletes every rune that is not a
// letter, a digit or an underscore. Deleting, not replacing: the surviving
// runes become adjacent, so "co-op" normalizes to "coop". A token made of
// punctuation only normalizes to the empty string. Normalizing an already
// normalized token gives it back unchanged.
func Normalize(token string) string {
	var normalized strings.Builder
	for _, r := range strings.ToLower(token) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			normalized.WriteRune(r)
		}
	}
	return normalized.String()
}
