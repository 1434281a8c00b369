package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"quickpick/internal/config"
)

func TestViewRendersCatalog(t *testing.T) {
	m := newTestModel(t, nil)

	out := m.View()
	assert.Contains(t, out, "quickpick")
	assert.Contains(t, out, "Fruit")
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "Carrot")
	assert.Contains(t, out, "type to search")
}

func TestViewShowsSearchText(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	assert.Contains(t, m.View(), "/b")
}

func TestViewFilterHidesNonMatches(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) {
		cfg.Picker.FilterMatches = true
	})

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	out := m.View()
	assert.Contains(t, out, "Banana")
	assert.NotContains(t, out, "Apple")

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	assert.Contains(t, m.View(), "no matches")
}

func TestViewEmptyCatalog(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) {
		cfg.Entries = nil
	})
	assert.Contains(t, m.View(), "catalog is empty")
}

func TestViewScrollIndicators(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) {
		cfg.Entries = nil
		for i := 0; i < 40; i++ {
			cfg.Entries = append(cfg.Entries, config.Entry{Label: string(rune('a' + i%26))})
		}
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = updated.(Model)

	assert.Contains(t, m.View(), "more below")

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Contains(t, m.View(), "more above")
}

func TestViewBlankAfterQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.View())
}

func TestCatalogDump(t *testing.T) {
	m := newTestModel(t, nil)

	dump := m.catalogDump()
	assert.Contains(t, dump, "> ")
	assert.Contains(t, dump, "Fruit\n")
	assert.Contains(t, dump, "  Apple")

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	assert.Contains(t, m.catalogDump(), "search: b")
}
