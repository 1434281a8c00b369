package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// View implements tea.Model
func (m Model) View() string {
	if m.accepted || m.canceled {
		return ""
	}

	content := &strings.Builder{}

	rows := m.visibleRows()
	total := len(m.ctl.Items())

	// Title with the visible/total count
	content.WriteString(m.styles.Title.Render("quickpick"))
	content.WriteString("  ")
	content.WriteString(m.styles.Count.Render(fmt.Sprintf("%d/%d", len(rows), total)))
	content.WriteString("\n")

	if m.picker.Search {
		if text := m.ctl.SearchText(); text != "" {
			content.WriteString(m.styles.Search.Render("/" + text))
		} else {
			content.WriteString(m.styles.Dim.Render("/ type to search"))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(m.renderList(rows))
	content.WriteString("\n")

	if m.status != "" {
		content.WriteString("\n")
		if m.statusErr {
			content.WriteString(m.styles.StatusErr.Render(m.status))
		} else {
			content.WriteString(m.styles.Status.Render(m.status))
		}
	}

	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	return m.styles.Main.MaxHeight(m.height).Render(content.String())
}

// renderList renders the visible window of rows with scroll indicators.
func (m Model) renderList(rows []int) string {
	if len(rows) == 0 {
		if m.filterMode() && m.ctl.SearchText() != "" {
			return m.styles.Dim.Render("no matches")
		}
		return m.styles.Dim.Render("catalog is empty")
	}

	cursor := m.cursorRow()
	h := m.listHeight()
	start := m.offset
	if start > len(rows) {
		start = len(rows)
	}
	end := start + h
	if end > len(rows) {
		end = len(rows)
	}

	var lines []string
	if start > 0 {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(rows[i], i == cursor))
	}
	if end < len(rows) {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(rows)-end)))
	}

	return strings.Join(lines, "\n")
}

// renderRow renders one catalog row. Group headers keep their own style; in
// highlight search mode non-matching leaves are dimmed instead of hidden.
func (m Model) renderRow(pos int, selected bool) string {
	it := m.ctl.Items()[pos]

	maxWidth := m.width - 8
	if maxWidth < 20 {
		maxWidth = 20
	}
	label := runewidth.Truncate(it.Value, maxWidth, "…")

	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	if it.IsGroup {
		return cursor + m.styles.Group.Render("▾ "+label)
	}

	indent := ""
	if m.hasGroups {
		indent = "  "
	}

	highlightMode := m.picker.Search && !m.picker.FilterMatches && m.ctl.SearchText() != ""
	switch {
	case highlightMode && m.ctl.IsMatch(pos):
		label = m.styles.Match.Render(label)
	case highlightMode:
		label = m.styles.Dim.Render(label)
	default:
		label = m.styles.Item.Render(label)
	}
	return cursor + indent + label
}

// catalogDump produces the plain catalog listing shown in the pager.
func (m Model) catalogDump() string {
	var b strings.Builder
	b.WriteString("quickpick catalog\n\n")

	cur, ok := m.ctl.CatalogIndex()
	for i, it := range m.ctl.Items() {
		marker := "  "
		if ok && i == cur {
			marker = "> "
		}
		if it.IsGroup {
			b.WriteString(marker + it.Value + "\n")
		} else {
			b.WriteString(marker + "  " + it.Value + "\n")
		}
	}

	if text := m.ctl.SearchText(); text != "" {
		b.WriteString(fmt.Sprintf("\nsearch: %s\n", text))
	}
	return b.String()
}
