package services

import "github.com/custodia-labs/searchfield/internal/core/domain"

// Dropdown is the keyboard and selection state machine of a field's list.
// It is not safe for concurrent use; SearchField guards it.
type Dropdown struct {
	state domain.DropdownState
}

// NewDropdown returns a closed dropdown.
func NewDropdown() *Dropdown {
	return &Dropdown{state: domain.NewDropdownState()}
}

// State returns a copy of the current state.
func (d *Dropdown) State() domain.DropdownState {
	s := d.state
	if s.Items != nil {
		s.Items = append([]domain.SearchItem{}, s.Items...)
	}
	return s
}

// HasResults reports whether results were received for the current text.
func (d *Dropdown) HasResults() bool {
	return d.state.Items != nil
}

// Items returns the current items without copying.
func (d *Dropdown) Items() []domain.SearchItem {
	return d.state.Items
}

// StartLoading opens the list in the loading phase.
func (d *Dropdown) StartLoading() {
	d.state.Open = true
	d.state.Loading = true
	d.state.Highlighted = domain.NoHighlight
}

// ShowResults opens the list with items. An empty list opens the empty phase.
func (d *Dropdown) ShowResults(items []domain.SearchItem) {
	if items == nil {
		items = []domain.SearchItem{}
	}
	d.state.Items = items
	d.state.Open = true
	d.state.Loading = false
	d.state.Highlighted = domain.NoHighlight
}

// Reopen opens the list from the current results. It reports false when
// there is nothing to show.
func (d *Dropdown) Reopen() bool {
	if !d.HasResults() {
		return false
	}
	d.state.Open = true
	d.state.Loading = false
	return true
}

// Close hides the list and clears the highlight. Items are kept for Reopen.
func (d *Dropdown) Close() {
	d.state.Open = false
	d.state.Loading = false
	d.state.Highlighted = domain.NoHighlight
}

// Reset closes the list and drops its items.
func (d *Dropdown) Reset() {
	d.Close()
	d.state.Items = nil
}

// ClearHighlight resets the highlight without closing.
func (d *Dropdown) ClearHighlight() {
	d.state.Highlighted = domain.NoHighlight
}

// Move shifts the highlight by delta, clamped to [0, len-1].
// It reports false when the list is closed, loading or empty.
func (d *Dropdown) Move(delta int) bool {
	n := len(d.state.Items)
	if !d.state.Open || d.state.Loading || n == 0 {
		return false
	}
	next := d.state.Highlighted + delta
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	d.state.Highlighted = next
	return true
}

// At returns the item at index.
func (d *Dropdown) At(index int) (domain.SearchItem, bool) {
	if index < 0 || index >= len(d.state.Items) {
		return domain.SearchItem{}, false
	}
	return d.state.Items[index], true
}

// Key applies a navigation key. It returns the item to commit on Enter and
// reports whether the key was consumed.
func (d *Dropdown) Key(key domain.Key) (*domain.SearchItem, bool) {
	switch key {
	case domain.KeyArrowDown:
		return nil, d.Move(1)
	case domain.KeyArrowUp:
		return nil, d.Move(-1)
	case domain.KeyEnter:
		if !d.state.Open || d.state.Loading {
			return nil, false
		}
		item := d.state.HighlightedItem()
		return item, item != nil
	case domain.KeyEscape:
		wasOpen := d.state.Open
		d.Close()
		return nil, wasOpen
	default:
		return nil, false
	}
}
