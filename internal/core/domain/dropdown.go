package domain

// Phase is the observable state of a dropdown.
type Phase string

// Dropdown phases.
const (
	PhaseClosed      Phase = "closed"
	PhaseOpenLoading Phase = "open_loading"
	PhaseOpenResults Phase = "open_results"
	PhaseOpenEmpty   Phase = "open_empty"
)

// NoHighlight marks a dropdown with no highlighted row.
const NoHighlight = -1

// DropdownState is the list part of a search field.
type DropdownState struct {
	// Open reports whether the list is shown.
	Open bool

	// Items are the results for the current query.
	Items []SearchItem

	// Highlighted is NoHighlight or a valid index into Items.
	Highlighted int

	// Loading reports whether a remote search is in flight.
	Loading bool
}

// NewDropdownState returns a closed dropdown with nothing highlighted.
func NewDropdownState() DropdownState {
	return DropdownState{Highlighted: NoHighlight}
}

// Phase derives the dropdown phase.
func (d DropdownState) Phase() Phase {
	switch {
	case !d.Open && !d.Loading:
		return PhaseClosed
	case d.Loading:
		return PhaseOpenLoading
	case len(d.Items) == 0:
		return PhaseOpenEmpty
	default:
		return PhaseOpenResults
	}
}

// HighlightedItem returns the highlighted item, or nil if none.
func (d DropdownState) HighlightedItem() *SearchItem {
	if d.Highlighted < 0 || d.Highlighted >= len(d.Items) {
		return nil
	}
	item := d.Items[d.Highlighted]
	return &item
}

// Key is a navigation key delivered to a field.
type Key int

// Keys understood by the keyboard state machine.
const (
	KeyOther Key = iota
	KeyArrowDown
	KeyArrowUp
	KeyEnter
	KeyEscape
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "Other"
	}
}

// Value is the text of a field together with its confirmed selection.
type Value struct {
	Text string      `json:"text"`
	Item *SearchItem `json:"item"`
}

// FieldState is a read-only snapshot of a search field.
type FieldState struct {
	Query      QueryState
	Dropdown   DropdownState
	Selection  *SearchItem
	Validation ValidationState
	Attached   bool
	Disabled   bool
	Destroyed  bool
}
