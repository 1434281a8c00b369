package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySearchKey(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		ev      KeyEvent
		want    string
		changed bool
	}{
		{"append rune", "ap", Rune('p'), "app", true},
		{"append to empty", "", Rune('x'), "x", true},
		{"backspace", "abc", KeyEvent{Code: KeyBackspace}, "ab", true},
		{"backspace multibyte", "aä", KeyEvent{Code: KeyBackspace}, "a", true},
		{"backspace empty", "", KeyEvent{Code: KeyBackspace}, "", false},
		{"control rune ignored", "a", KeyEvent{Code: KeyOther, Rune: '\t'}, "a", false},
		{"bare nav key ignored", "a", KeyEvent{Code: KeyDown}, "a", false},
		{"no rune ignored", "a", KeyEvent{Code: KeyOther}, "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := applySearchKey(tt.text, tt.ev)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestDefaultMatchIsCaseInsensitive(t *testing.T) {
	match := defaultMatch(func(s string) string { return s })

	assert.True(t, match("Banana", "NaN"))
	assert.True(t, match("Banana", ""))
	assert.False(t, match("Banana", "melon"))
}
