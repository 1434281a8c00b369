package prompt

import "strings"

// defaultMatch builds the built-in predicate: a case-insensitive substring
// test against the display text.
func defaultMatch[T any](text func(T) string) func(T, string) bool {
	return func(v T, term string) bool {
		return strings.Contains(strings.ToLower(text(v)), strings.ToLower(term))
	}
}

// applySearchKey edits the search text for one key event and reports whether
// it changed. Printable literal runes append, backspace removes the last
// rune, everything else is a no-op.
func applySearchKey(text string, ev KeyEvent) (string, bool) {
	switch {
	case ev.Code == KeyBackspace:
		if text == "" {
			return text, false
		}
		runes := []rune(text)
		return string(runes[:len(runes)-1]), true
	case printableRune(ev.Rune):
		return text + string(ev.Rune), true
	}
	return text, false
}
