package pure

import "unicode/utf8"

// Reverse returns s with its runes in reverse order, computed recursively.
// Bytes that are not valid UTF-8 are moved one at a time and left untouched.
func Reverse(s string) string {
	if utf8.RuneCountInString(s) <= 1 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return Reverse(s[size:]) + s[:size]
}
