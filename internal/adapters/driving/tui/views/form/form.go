// Package form provides the form view: one widget per registered search field.
package form

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

// ErrNoFields indicates that the registry holds no fields.
var ErrNoFields = errors.New("form has no fields")

// View renders every field of a registry and routes keys to the focused one.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	help      help.Model
	statusbar *status.Bar

	registry driving.FieldRegistry
	sink     driven.ErrorSink
	ctx      context.Context

	fields  []driving.SearchField
	widgets []*Widget
	focus   int

	title    string
	showHelp bool
	width    int
	height   int
}

// NewView attaches a widget to every field of registry, in registration order.
// labels maps field names to display labels; notify is passed to every widget.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	registry driving.FieldRegistry,
	sink driven.ErrorSink,
	labels map[string]string,
	notify func(field string),
) (*View, error) {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		help:      help.New(),
		statusbar: status.NewBar(s, km),
		registry:  registry,
		sink:      sink,
		ctx:       context.Background(),
		focus:     -1,
		title:     "Search fields",
		width:     80,
		height:    24,
	}

	for _, name := range registry.Names() {
		field, ok := registry.Get(name)
		if !ok {
			continue
		}
		label := labels[name]
		if label == "" {
			label = name
		}
		w := NewWidget(s, name, label, notify)
		if err := field.Attach(w); err != nil {
			return nil, err
		}
		v.fields = append(v.fields, field)
		v.widgets = append(v.widgets, w)
	}
	if len(v.fields) == 0 {
		return nil, ErrNoFields
	}
	return v, nil
}

// WithContext sets the context used for manual searches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithTitle sets the header.
func (v *View) WithTitle(title string) *View {
	v.title = title
	return v
}

// Init focuses the first enabled field and starts the spinners.
func (v *View) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(v.widgets)+1)
	for _, w := range v.widgets {
		w.Sync()
		cmds = append(cmds, w.Tick())
	}
	if i := v.nextEnabled(0, 1); i >= 0 && v.focus < 0 {
		cmds = append(cmds, v.focusField(i), v.widgets[i].input.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for _, w := range v.widgets {
			cmd, _ := w.Update(msg)
			cmds = append(cmds, cmd)
		}
		return v, tea.Batch(cmds...)

	case messages.FieldUpdated:
		if w := v.widget(msg.Field); w != nil {
			w.Sync()
		}
		v.refreshStatus()
		return v, nil

	case messages.SearchRequested:
		return v, v.search(msg.Field)

	case messages.FormValidated:
		v.statusbar.SetErrors(msg.Errors)
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Help):
		v.showHelp = !v.showHelp
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Next):
		return v, v.moveFocus(1)
	case keymap.Matches(keyStr, v.keymap.Prev):
		return v, v.moveFocus(-1)
	case keymap.Matches(keyStr, v.keymap.Submit):
		return v, v.validateAll()
	}

	if v.focus < 0 {
		return v, nil
	}
	field, w := v.fields[v.focus], v.widgets[v.focus]

	switch {
	case keymap.Matches(keyStr, v.keymap.Down):
		v.key(field, w, domain.KeyArrowDown)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Up):
		v.key(field, w, domain.KeyArrowUp)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Select):
		v.key(field, w, domain.KeyEnter)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Close):
		v.key(field, w, domain.KeyEscape)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Search):
		return v, v.search(field.Name())
	case keymap.Matches(keyStr, v.keymap.Clear):
		field.Clear()
		w.Sync()
		v.refreshStatus()
		return v, nil
	}

	cmd, changed := w.Update(msg)
	if changed {
		field.Input(w.Value())
		w.Sync()
		v.refreshStatus()
	}
	return v, cmd
}

func (v *View) key(field driving.SearchField, w *Widget, k domain.Key) {
	if field.Key(k) {
		w.Sync()
		v.refreshStatus()
	}
}

// moveFocus blurs the focused field and focuses the next enabled one in dir.
func (v *View) moveFocus(dir int) tea.Cmd {
	start := 0
	if v.focus >= 0 {
		start = v.focus + dir
	}
	next := v.nextEnabled(start, dir)
	if next < 0 || next == v.focus {
		return nil
	}
	return v.focusField(next)
}

func (v *View) focusField(i int) tea.Cmd {
	if v.focus >= 0 {
		v.widgets[v.focus].Blur()
		v.fields[v.focus].Blur()
		v.widgets[v.focus].Sync()
	}
	v.focus = i
	cmd := v.widgets[i].Focus()
	v.fields[i].Focus()
	v.widgets[i].Sync()
	v.refreshStatus()
	return cmd
}

// nextEnabled returns the first enabled field from start in dir, wrapping
// around, or -1 if every field is disabled.
func (v *View) nextEnabled(start, dir int) int {
	n := len(v.fields)
	for step := 0; step < n; step++ {
		i := ((start+dir*step)%n + n) % n
		if !v.fields[i].State().Disabled {
			return i
		}
	}
	return -1
}

func (v *View) search(name string) tea.Cmd {
	field, ok := v.registry.Get(name)
	if !ok {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		field.Search(ctx)
		return messages.FieldUpdated{Field: name}
	}
}

func (v *View) validateAll() tea.Cmd {
	registry, sink := v.registry, v.sink
	return func() tea.Msg {
		results := registry.ValidateAll()
		var errs map[string]string
		if sink != nil {
			errs = sink.All()
		} else {
			errs = make(map[string]string)
			for name, ok := range results {
				if f, found := registry.Get(name); found && !ok {
					errs[name] = f.Validation().ActiveError()
				}
			}
		}
		return messages.FormValidated{Results: results, Errors: errs}
	}
}

// refreshStatus mirrors the loading state, the focused dropdown and the
// form errors into the status bar.
func (v *View) refreshStatus() {
	loading := false
	for _, w := range v.widgets {
		if w.Loading() {
			loading = true
			break
		}
	}
	switch state := v.statusbar.State(); {
	case loading:
		v.statusbar.SetState(status.StateSearching)
	case state == status.StateSearching:
		v.statusbar.SetState(status.StateReady)
	case (state == status.StateInvalid || state == status.StateValid) && v.sink != nil:
		v.statusbar.SetErrors(v.sink.All())
	}
	v.statusbar.SetDropdownOpen(v.focus >= 0 && v.widgets[v.focus].Open())
}

func (v *View) widget(name string) *Widget {
	for _, w := range v.widgets {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.title))
	b.WriteString("\n\n")

	for i, w := range v.widgets {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(w.View())
	}

	if v.showHelp {
		b.WriteString("\n\n")
		b.WriteString(v.help.FullHelpView(v.keymap.FullHelp()))
	}

	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.statusbar.SetWidth(width)
	fieldWidth := width - 4
	if fieldWidth > 80 {
		fieldWidth = 80
	}
	for _, w := range v.widgets {
		w.SetWidth(fieldWidth)
	}
}

// Focused returns the name of the focused field, or "" if none.
func (v *View) Focused() string {
	if v.focus < 0 || v.focus >= len(v.fields) {
		return ""
	}
	return v.fields[v.focus].Name()
}

// Widget returns the widget of the named field.
func (v *View) Widget(name string) (*Widget, bool) {
	w := v.widget(name)
	return w, w != nil
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// ShowingHelp reports whether the key list is shown.
func (v *View) ShowingHelp() bool {
	return v.showHelp
}
