package tui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to the fields and their error map.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// formView renders the fields.
	formView *form.View

	// program receives field updates posted from timer and network goroutines.
	program atomic.Pointer[tea.Program]

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// It attaches a widget to every field in the registry.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	a := &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
	}
	formView, err := form.NewView(a.styles, nil, ports.Fields, ports.Errors, ports.Labels, a.notify)
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	a.formView = formView
	return a, nil
}

// notify posts a field update to the running program. Fields call it with
// their lock held, so the send must not block.
func (a *App) notify(field string) {
	if p := a.program.Load(); p != nil {
		go p.Send(messages.FieldUpdated{Field: field})
	}
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.formView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("searchfield"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
		logger.Warn("tui: %v", msg.Err)

	case messages.FormValidated:
		if msg.Valid() {
			logger.Debug("form valid")
		} else {
			logger.Debug("form invalid: %v", msg.Errors)
		}
	}

	a.formView, cmd = a.formView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.formView.View()
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	a.program.Store(p)
	defer a.program.Store(nil)

	_, err := p.Run()
	return err
}

// Form returns the form view.
func (a *App) Form() *form.View {
	return a.formView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.formView.SetDimensions(width, height)
}
