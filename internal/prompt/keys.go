package prompt

import "unicode"

// KeyCode is the symbolic identity of a keystroke. Anything the controller
// does not recognize maps to KeyOther, which only matters when the event
// also carries a printable rune.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
)

// KeyEvent is one keystroke as seen by the controller: a symbolic key plus
// the literal rune it carried, if any (0 when none).
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

// Rune returns a KeyOther event carrying a literal character.
func Rune(r rune) KeyEvent {
	return KeyEvent{Code: KeyOther, Rune: r}
}

// Control runes never count as search input.
func printableRune(r rune) bool {
	return r != 0 && !unicode.IsControl(r)
}
