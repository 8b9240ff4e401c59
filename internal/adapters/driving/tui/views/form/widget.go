package form

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// Ensure Widget implements the interface.
var _ driven.View = (*Widget)(nil)

// surface is what the search field last asked the widget to show.
type surface struct {
	text          string
	textChanged   bool
	placeholder   string
	open          bool
	loading       bool
	loadingText   string
	items         []domain.SearchItem
	highlighted   int
	noResults     bool
	noResultsText string
	hint          bool
	minLength     int
	errMessage    string
	disabled      bool
}

// Widget is the terminal rendering of one search field.
//
// The field calls the driven.View methods from any goroutine with its own
// lock held. They only record the surface and post a notification; Sync
// copies the surface into the bubbles components on the program loop.
type Widget struct {
	name   string
	notify func(field string)
	queued atomic.Bool

	mu      sync.Mutex
	surface surface

	styles  *styles.Styles
	input   *input.FieldInput
	list    *list.ResultList
	spinner spinner.Model
}

// NewWidget creates a widget for the field name, labelled label.
// notify is called without blocking whenever the surface changed; it may be nil.
func NewWidget(s *styles.Styles, name, label string, notify func(field string)) *Widget {
	if s == nil {
		s = styles.DefaultStyles()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Muted

	return &Widget{
		name:    name,
		notify:  notify,
		surface: surface{highlighted: domain.NoHighlight},
		styles:  s,
		input:   input.NewFieldInput(s, label),
		list:    list.NewResultList(s),
		spinner: sp,
	}
}

// Name returns the field name.
func (w *Widget) Name() string {
	return w.name
}

func (w *Widget) record(fn func(*surface)) {
	w.mu.Lock()
	fn(&w.surface)
	w.mu.Unlock()

	if w.notify != nil && w.queued.CompareAndSwap(false, true) {
		w.notify(w.name)
	}
}

// SetText replaces the input text.
func (w *Widget) SetText(text string) {
	w.record(func(s *surface) {
		s.text = text
		s.textChanged = true
	})
}

// SetPlaceholder sets the hint shown while the input is empty.
func (w *Widget) SetPlaceholder(text string) {
	w.record(func(s *surface) { s.placeholder = text })
}

// SetOpen shows or hides the dropdown.
func (w *Widget) SetOpen(open bool) {
	w.record(func(s *surface) { s.open = open })
}

// SetLoading shows or hides the spinner.
func (w *Widget) SetLoading(loading bool, text string) {
	w.record(func(s *surface) {
		s.loading = loading
		s.loadingText = text
	})
}

// RenderResults replaces the list.
func (w *Widget) RenderResults(items []domain.SearchItem, highlighted int) {
	w.record(func(s *surface) {
		s.items = items
		s.highlighted = highlighted
	})
}

// ShowNoResults shows or hides the empty-result message.
func (w *Widget) ShowNoResults(show bool, text string) {
	w.record(func(s *surface) {
		s.noResults = show
		s.noResultsText = text
	})
}

// ShowMinLengthHint shows or hides the minimum length hint.
func (w *Widget) ShowMinLengthHint(show bool, minLength int) {
	w.record(func(s *surface) {
		s.hint = show
		s.minLength = minLength
	})
}

// ShowError displays a validation message.
func (w *Widget) ShowError(message string) {
	w.record(func(s *surface) { s.errMessage = message })
}

// SetDisabled enables or disables the input.
func (w *Widget) SetDisabled(disabled bool) {
	w.record(func(s *surface) { s.disabled = disabled })
}

// Sync applies the recorded surface to the components.
// It must run on the program loop.
func (w *Widget) Sync() {
	w.apply()
}

func (w *Widget) apply() surface {
	w.queued.Store(false)

	w.mu.Lock()
	s := w.surface
	w.surface.textChanged = false
	w.mu.Unlock()

	if s.textChanged {
		w.input.SetValue(s.text)
	}
	w.input.SetPlaceholder(s.placeholder)
	w.input.SetDisabled(s.disabled)
	w.list.SetItems(s.items, s.highlighted)
	return s
}

// Open reports whether the dropdown is shown.
func (w *Widget) Open() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface.open || w.surface.loading
}

// Loading reports whether a search is in flight.
func (w *Widget) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface.loading
}

// Error returns the displayed validation message.
func (w *Widget) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface.errMessage
}

// Value returns the text in the input component.
func (w *Widget) Value() string {
	return w.input.Value()
}

// Focus focuses the input component.
func (w *Widget) Focus() tea.Cmd {
	return w.input.Focus()
}

// Blur blurs the input component.
func (w *Widget) Blur() {
	w.input.Blur()
}

// Focused reports whether the input component has focus.
func (w *Widget) Focused() bool {
	return w.input.Focused()
}

// Update forwards msg to the input and spinner. It reports whether the
// input text changed.
func (w *Widget) Update(msg tea.Msg) (tea.Cmd, bool) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(tick)
		return cmd, false
	}
	before := w.input.Value()
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd, w.input.Value() != before
}

// Tick starts the spinner animation.
func (w *Widget) Tick() tea.Cmd {
	return w.spinner.Tick
}

// SetWidth sets the width of the input and dropdown.
func (w *Widget) SetWidth(width int) {
	w.input.SetWidth(width)
	w.list.SetDimensions(width-4, w.list.MaxRows())
}

// View renders the input with its hint, error and dropdown.
func (w *Widget) View() string {
	s := w.apply()

	var b strings.Builder
	b.WriteString(w.input.View())

	if s.hint {
		b.WriteString("\n" + w.styles.Muted.Render(fmt.Sprintf("请至少输入 %d 个字符", s.minLength)))
	}
	if s.errMessage != "" {
		b.WriteString("\n" + w.styles.Error.Render(s.errMessage))
	}

	switch {
	case s.loading:
		b.WriteString("\n" + w.styles.Dropdown.Render(w.spinner.View()+" "+s.loadingText))
	case s.open && s.noResults:
		b.WriteString("\n" + w.styles.Dropdown.Render(w.styles.Muted.Render(s.noResultsText)))
	case s.open && !w.list.IsEmpty():
		b.WriteString("\n" + w.styles.Dropdown.Render(w.list.View()))
	}
	return b.String()
}
