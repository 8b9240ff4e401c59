// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/searchfield/internal/core/domain"
)

// ResultList renders dropdown items with one highlighted row.
// Navigation is owned by the search field; the list only displays it.
type ResultList struct {
	items       []domain.SearchItem
	highlighted int
	styles      *styles.Styles
	width       int
	maxRows     int
}

// NewResultList creates an empty result list.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		highlighted: domain.NoHighlight,
		styles:      s,
		width:       60,
		maxRows:     8,
	}
}

// SetItems replaces the items and highlight.
func (r *ResultList) SetItems(items []domain.SearchItem, highlighted int) {
	r.items = items
	r.highlighted = highlighted
}

// Items returns the current items.
func (r *ResultList) Items() []domain.SearchItem {
	return r.items
}

// Highlighted returns the highlighted index or domain.NoHighlight.
func (r *ResultList) Highlighted() int {
	return r.highlighted
}

// View renders the visible window of rows, keeping the highlight in view.
func (r *ResultList) View() string {
	if len(r.items) == 0 {
		return ""
	}

	start, end := r.window()
	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i))
	}
	if end-start < len(r.items) {
		lines = append(lines, r.styles.Muted.Render(
			fmt.Sprintf("  %d-%d of %d", start+1, end, len(r.items))))
	}
	return strings.Join(lines, "\n")
}

func (r *ResultList) window() (start, end int) {
	visible := r.maxRows
	if visible < 1 {
		visible = 1
	}
	if r.highlighted >= visible {
		start = r.highlighted - visible + 1
	}
	end = start + visible
	if end > len(r.items) {
		end = len(r.items)
	}
	return start, end
}

func (r *ResultList) renderRow(index int) string {
	name := r.items[index].Name
	if name == "" {
		name = r.items[index].ID
	}

	maxWidth := r.width - 4
	if maxWidth < 10 {
		maxWidth = 10
	}
	name = Truncate(name, maxWidth)

	if index == r.highlighted {
		return r.styles.Highlighted.Render("> " + runewidth.FillRight(name, maxWidth))
	}
	return r.styles.Normal.Render("  " + name)
}

// Truncate shortens s to at most width terminal cells, marking the cut with "…".
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// SetDimensions sets the row width and the number of visible rows.
func (r *ResultList) SetDimensions(width, maxRows int) {
	r.width = width
	r.maxRows = maxRows
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// MaxRows returns the number of visible rows.
func (r *ResultList) MaxRows() int {
	return r.maxRows
}

// Count returns the number of items.
func (r *ResultList) Count() int {
	return len(r.items)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.items) == 0
}
