package ui

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quickpick/internal/config"
	"quickpick/internal/prompt"
)

// Model is the Bubble Tea model wrapping a prompt controller. All list
// semantics live in the controller; the model only translates key messages,
// keeps the viewport in sync, and carries the accept/cancel outcome out of
// the program.
type Model struct {
	ctl       *prompt.Controller[string]
	picker    config.Picker
	hasGroups bool
	keys      KeyMap
	help      help.Model
	styles    *Styles
	pager     *PagerOps

	width  int
	height int
	offset int

	status    string
	statusErr bool
	accepted  bool
	canceled  bool
	result    string
}

// NewModel builds the picker over the configured catalog.
func NewModel(cfg *config.Config) (Model, error) {
	items := catalogItems(cfg.Entries)

	ctl, err := prompt.New(items, prompt.Options[string]{
		PageSize:      cfg.Picker.PageSize,
		WrapAround:    cfg.Picker.WrapAround,
		LeafOnly:      cfg.Picker.LeafOnly,
		SkipGroups:    cfg.Picker.SkipGroups,
		Search:        cfg.Picker.Search,
		FilterMatches: cfg.Picker.FilterMatches,
		Text:          func(s string) string { return s },
	})
	if err != nil {
		return Model{}, fmt.Errorf("failed to build prompt: %w", err)
	}

	hasGroups := false
	for _, it := range items {
		if it.IsGroup {
			hasGroups = true
			break
		}
	}

	return Model{
		ctl:       ctl,
		picker:    cfg.Picker,
		hasGroups: hasGroups,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    NewStyles(),
		pager:     &PagerOps{},
	}, nil
}

// catalogItems converts config entries into prompt items, preserving order.
func catalogItems(entries []config.Entry) []prompt.Item[string] {
	items := make([]prompt.Item[string], len(entries))
	for i, e := range entries {
		if e.Group {
			items[i] = prompt.Group(e.Label)
		} else {
			items[i] = prompt.Leaf(e.Label)
		}
	}
	return items
}

// Pager exposes the pager operations so the program reference can be wired
// in after tea.NewProgram.
func (m Model) Pager() *PagerOps {
	return m.pager
}

// Result returns the accepted label, if any.
func (m Model) Result() (string, bool) {
	return m.result, m.accepted
}

// Canceled reports whether the picker was dismissed without a choice.
func (m Model) Canceled() bool {
	return m.canceled
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("pager error: %v", msg.err)
			m.status, m.statusErr = fmt.Sprintf("pager: %v", msg.err), true
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Accept):
		item, ok := m.ctl.Current()
		if !ok {
			m.status, m.statusErr = "nothing to accept", true
			return m, nil
		}
		if item.IsGroup && m.picker.LeafOnly {
			m.status, m.statusErr = "group rows cannot be accepted", true
			return m, nil
		}
		m.result, m.accepted = item.Value, true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Copy):
		item, ok := m.ctl.Current()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(item.Value); err != nil {
			log.Printf("clipboard error: %v", err)
			m.status, m.statusErr = fmt.Sprintf("copy failed: %v", err), true
			return m, nil
		}
		m.status, m.statusErr = fmt.Sprintf("copied %q", item.Value), false
		return m, nil

	case key.Matches(msg, m.keys.Pager):
		content := m.catalogDump()
		ops := m.pager
		return m, func() tea.Msg {
			return pagerDoneMsg{err: ops.Show(content)}
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.ctl.Transition(keyEventFor(msg)) {
		m.status = ""
		m.ensureVisible()
	}
	return m, nil
}

// keyEventFor translates a Bubble Tea key message into a prompt key event.
// Anything unrecognized maps to the no-op key code.
func keyEventFor(msg tea.KeyMsg) prompt.KeyEvent {
	switch msg.Type {
	case tea.KeyUp:
		return prompt.KeyEvent{Code: prompt.KeyUp}
	case tea.KeyDown:
		return prompt.KeyEvent{Code: prompt.KeyDown}
	case tea.KeyHome:
		return prompt.KeyEvent{Code: prompt.KeyHome}
	case tea.KeyEnd:
		return prompt.KeyEvent{Code: prompt.KeyEnd}
	case tea.KeyPgUp:
		return prompt.KeyEvent{Code: prompt.KeyPageUp}
	case tea.KeyPgDown:
		return prompt.KeyEvent{Code: prompt.KeyPageDown}
	case tea.KeyBackspace:
		return prompt.KeyEvent{Code: prompt.KeyBackspace}
	case tea.KeySpace:
		return prompt.Rune(' ')
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return prompt.Rune(msg.Runes[0])
		}
	}
	return prompt.KeyEvent{Code: prompt.KeyOther}
}

// filterMode reports whether the rendered list is the filtered view rather
// than the full catalog.
func (m Model) filterMode() bool {
	return m.picker.Search && m.picker.FilterMatches
}

// visibleRows returns the catalog positions to render, top to bottom.
func (m Model) visibleRows() []int {
	if m.filterMode() {
		return m.ctl.ViewIndexes()
	}
	rows := make([]int, len(m.ctl.Items()))
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// cursorRow returns the row the highlight sits on, or -1 when the list is
// empty. Both representations of the controller index collapse to the row
// number: in filter mode the index already is a view position, otherwise
// every catalog position is rendered.
func (m Model) cursorRow() int {
	rows := m.visibleRows()
	if len(rows) == 0 {
		return -1
	}
	row := m.ctl.Index()
	if row >= len(rows) {
		row = len(rows) - 1
	}
	return row
}

// listHeight is the number of rows available to the list itself after the
// fixed chrome (title, search line, status, help).
func (m Model) listHeight() int {
	h := m.height - 7
	if h < 3 {
		h = 3
	}
	return h
}

// ensureVisible scrolls the viewport so the highlighted row stays on screen.
func (m *Model) ensureVisible() {
	cursor := m.cursorRow()
	if cursor < 0 {
		m.offset = 0
		return
	}
	h := m.listHeight()
	if cursor < m.offset {
		m.offset = cursor
	}
	if cursor >= m.offset+h {
		m.offset = cursor - h + 1
	}
	if max := len(m.visibleRows()) - h; m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
