package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// Ensure SearchField implements the interface.
var _ driving.SearchField = (*SearchField)(nil)

// errClockRequired is returned by NewSearchField without a clock.
var errClockRequired = errors.New("clock is required")

// FieldDeps are the collaborators of a search field.
type FieldDeps struct {
	// Fetcher issues remote searches. Ignored when Gateway is set.
	Fetcher driven.RecordFetcher

	// Gateway overrides the gateway built from Fetcher and Cache.
	Gateway *Gateway

	// Cache is the field's private result cache. Used only when caching is enabled.
	Cache driven.ResultCache

	// Sink is the owning form's error map. Optional.
	Sink driven.ErrorSink

	// Clock drives debounce and blur timers. Required.
	Clock driven.Clock
}

// SearchField orchestrates debounce, cache, dropdown and validation for one input.
//
// State is guarded by a mutex. Timer callbacks and network results
// re-enter through the same lock. Each dispatched search carries a sequence
// number and its text; a response is applied only while both still match.
// Option callbacks run after the lock is released.
type SearchField struct {
	mu sync.Mutex

	id      string
	name    string
	opts    domain.FieldOptions
	gateway *Gateway
	cache   driven.ResultCache
	clock   driven.Clock
	log     logger.Scoped

	view      driven.View
	attached  bool
	inert     bool
	disabled  bool
	destroyed bool
	focused   bool

	text         string
	committed    string
	selection    *domain.SearchItem
	lastIssuedAt time.Time

	dropdown  *Dropdown
	validator *Validator
	debounce  *Debouncer
	blur      *Debouncer

	seq    uint64
	ctx    context.Context
	cancel context.CancelFunc

	effects []func()
}

// NewSearchField creates an unattached field named name.
func NewSearchField(name string, opts domain.FieldOptions, deps FieldDeps) (*SearchField, error) {
	if deps.Clock == nil {
		return nil, errClockRequired
	}
	opts = opts.WithDefaults()
	if opts.Validation.FieldName == "" {
		opts.Validation.FieldName = name
	}

	var cache driven.ResultCache
	if opts.EnableCache {
		cache = deps.Cache
	}
	gateway := deps.Gateway
	if gateway == nil {
		gateway = NewGateway(deps.Fetcher, cache)
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &SearchField{
		id:        uuid.NewString(),
		name:      name,
		opts:      opts,
		gateway:   gateway,
		cache:     cache,
		clock:     deps.Clock,
		log:       logger.For("field:" + name),
		disabled:  opts.Disabled,
		dropdown:  NewDropdown(),
		validator: NewValidator(opts.Validation, deps.Sink),
		ctx:       ctx,
		cancel:    cancel,
	}
	f.debounce = NewDebouncer(deps.Clock, opts.DebounceDelay, f.fireSearch)
	f.blur = NewDebouncer(deps.Clock, opts.BlurDelay, f.fireBlurClose)
	return f, nil
}

// ID returns the unique instance identifier.
func (f *SearchField) ID() string {
	return f.id
}

// Name returns the field name.
func (f *SearchField) Name() string {
	return f.name
}

// Attach binds the field to view. Only the first call has effect.
func (f *SearchField) Attach(view driven.View) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.destroyed {
		return domain.ErrFieldDestroyed
	}
	if f.attached || f.inert {
		return nil
	}
	if view == nil {
		f.inert = true
		f.log.Warn("attach aborted: %v", domain.ErrViewRequired)
		return domain.ErrViewRequired
	}

	f.view = view
	f.attached = true
	view.SetPlaceholder(f.opts.Placeholder)
	view.SetText(f.text)
	view.SetDisabled(f.disabled)
	view.ShowMinLengthHint(false, f.opts.MinLengthFor(f.text))
	view.ShowError("")
	f.render()
	f.log.Debug("attached (%s)", f.id)
	return nil
}

// Input handles a text edit.
func (f *SearchField) Input(text string) {
	f.do(func() {
		if f.disabled {
			return
		}
		f.focused = true
		f.blur.Cancel()
		f.text = text
		f.dropdown.ClearHighlight()

		if f.selection != nil && text != f.opts.FormatDisplay(*f.selection) {
			f.log.Debug("selection %s cleared by edit", f.selection.ID)
			f.selection = nil
		}

		minLength := f.opts.MinLengthFor(text)
		if text != "" && domain.TextLength(text) >= minLength {
			f.view.ShowMinLengthHint(false, minLength)
			f.debounce.Schedule()
		} else {
			f.debounce.Cancel()
			f.seq++
			f.dropdown.Reset()
			f.view.ShowMinLengthHint(text != "", minLength)
		}
		f.render()

		f.emitChange(text, f.selection)
		f.runValidation(domain.TriggerInput)
	})
}

// Focus reopens the list from current or cached results without a network call.
func (f *SearchField) Focus() {
	f.do(func() {
		if f.disabled {
			return
		}
		f.focused = true
		f.blur.Cancel()

		if !f.query().Searchable() {
			return
		}
		if !f.dropdown.Reopen() {
			items, ok := f.gateway.Cached(f.opts.APIURL, f.text)
			if !ok {
				return
			}
			f.dropdown.ShowResults(items)
		}
		f.render()
	})
}

// Blur fires change for a modified value, validates, and closes the list
// after the blur delay.
func (f *SearchField) Blur() {
	f.do(func() {
		if f.disabled {
			return
		}
		f.focused = false
		if f.text != f.committed {
			f.change()
		}
		f.runValidation(domain.TriggerBlur)
		f.blur.Schedule()
	})
}

// Change marks the current value as committed.
func (f *SearchField) Change() {
	f.do(f.change)
}

// Key handles a navigation key and reports whether it was consumed.
func (f *SearchField) Key(key domain.Key) bool {
	consumed := false
	f.do(func() {
		if f.disabled {
			return
		}
		var item *domain.SearchItem
		item, consumed = f.dropdown.Key(key)
		if item != nil {
			f.commit(*item)
			return
		}
		if consumed {
			f.render()
		}
	})
	return consumed
}

// Pick commits the item at index. It pre-empts a pending blur close.
func (f *SearchField) Pick(index int) {
	f.do(func() {
		if f.disabled {
			return
		}
		item, ok := f.dropdown.At(index)
		if !ok {
			return
		}
		f.blur.Cancel()
		f.commit(item)
	})
}

// Search runs a search for the current text now, cancelling a pending debounce.
func (f *SearchField) Search(ctx context.Context) {
	f.mu.Lock()
	if !f.active() || f.disabled {
		f.mu.Unlock()
		return
	}
	f.debounce.Cancel()
	f.mu.Unlock()
	f.run(ctx)
}

// SetSource switches the endpoint and drops results cached for the old one.
func (f *SearchField) SetSource(apiURL string) {
	f.do(func() {
		old := f.opts.APIURL
		if old == apiURL {
			return
		}
		f.opts.APIURL = apiURL
		if f.cache != nil {
			f.cache.InvalidateSource(old)
		}
		f.debounce.Cancel()
		f.seq++
		f.dropdown.Reset()
		f.render()
		f.log.Debug("source changed from %q to %q", old, apiURL)
	})
}

// SetValue sets text and selection without searching or notifying.
func (f *SearchField) SetValue(text string, item *domain.SearchItem) {
	f.do(func() {
		f.debounce.Cancel()
		f.seq++
		f.text = text
		f.committed = text
		f.selection = copyItem(item)
		f.dropdown.Reset()
		f.view.SetText(text)
		f.view.ShowMinLengthHint(false, f.opts.MinLengthFor(text))
		f.render()
	})
}

// Value returns the text and selection.
func (f *SearchField) Value() domain.Value {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.Value{Text: f.text, Item: copyItem(f.selection)}
}

// Clear resets text, selection and validation.
func (f *SearchField) Clear() {
	f.do(f.clear)
}

// SetDisabled enables or disables the field. Disabling clears it.
func (f *SearchField) SetDisabled(disabled bool) {
	f.do(func() {
		f.disabled = disabled
		f.view.SetDisabled(disabled)
		if disabled {
			f.clear()
		}
	})
}

// Validate runs the validation pipeline.
func (f *SearchField) Validate() bool {
	valid := true
	f.do(func() {
		valid = f.validator.Run(f.text, f.selection)
		f.showValidation()
	})
	return valid
}

// Validation returns the last validation outcome.
func (f *SearchField) Validation() domain.ValidationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validator.State()
}

// State returns a snapshot of the field.
func (f *SearchField) State() domain.FieldState {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.query()
	q.LastIssuedAt = f.lastIssuedAt
	return domain.FieldState{
		Query:      q,
		Dropdown:   f.dropdown.State(),
		Selection:  copyItem(f.selection),
		Validation: f.validator.State(),
		Attached:   f.attached,
		Disabled:   f.disabled,
		Destroyed:  f.destroyed,
	}
}

// Destroy releases timers, cache and view.
func (f *SearchField) Destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.seq++
	f.debounce.Stop()
	f.blur.Stop()
	f.cancel()
	if f.cache != nil {
		f.cache.Clear()
	}
	f.view = nil
	f.effects = nil
	f.log.Debug("destroyed")
}

// do runs fn under the lock when the field is live, then runs queued callbacks.
func (f *SearchField) do(fn func()) {
	f.mu.Lock()
	if !f.active() {
		f.mu.Unlock()
		return
	}
	fn()
	effects := f.effects
	f.effects = nil
	f.mu.Unlock()

	for _, effect := range effects {
		effect()
	}
}

func (f *SearchField) active() bool {
	return f.attached && !f.destroyed
}

func (f *SearchField) query() domain.QueryState {
	return domain.QueryState{Text: f.text, MinLength: f.opts.MinLengthFor(f.text)}
}

func (f *SearchField) request(text string) driven.SearchRequest {
	return driven.SearchRequest{
		URL:         f.opts.APIURL,
		SearchParam: f.opts.SearchParam,
		SizeParam:   f.opts.SizeParam,
		Size:        f.opts.DefaultSize,
		Text:        text,
	}
}

func (f *SearchField) fireSearch() {
	f.run(f.ctx)
}

// run dispatches a search for the current text and applies its result
// if no newer search or edit superseded it.
func (f *SearchField) run(ctx context.Context) {
	f.mu.Lock()
	if !f.active() || f.disabled || !f.query().Searchable() {
		f.mu.Unlock()
		return
	}
	f.seq++
	seq := f.seq
	text := f.text
	req := f.request(text)

	if items, ok := f.gateway.Cached(req.URL, text); ok {
		f.log.Debug("cache hit for %q", text)
		f.showResults(items)
		f.flush()
		return
	}

	f.lastIssuedAt = f.clock.Now()
	f.dropdown.StartLoading()
	f.render()
	if cb := f.opts.OnSearch; cb != nil {
		f.effects = append(f.effects, func() { cb(text) })
	}
	format := f.opts.FormatItem
	f.flush()

	f.log.Debug("search #%d %q", seq, text)
	items, err := f.gateway.Search(ctx, req, format)

	f.mu.Lock()
	if f.destroyed || seq != f.seq || text != f.text {
		f.mu.Unlock()
		f.log.Debug("dropped stale response #%d %q", seq, text)
		return
	}
	if err != nil {
		f.log.Warn("search %q failed: %v", text, err)
		f.dropdown.Reset()
		f.render()
		if cb := f.opts.OnError; cb != nil {
			f.effects = append(f.effects, func() { cb(err) })
		}
	} else {
		f.showResults(items)
	}
	f.flush()
}

// flush releases the lock and runs queued callbacks.
func (f *SearchField) flush() {
	effects := f.effects
	f.effects = nil
	f.mu.Unlock()
	for _, effect := range effects {
		effect()
	}
}

func (f *SearchField) showResults(items []domain.SearchItem) {
	f.dropdown.ShowResults(items)
	if !f.focused {
		f.dropdown.Close()
	}
	f.render()
}

func (f *SearchField) fireBlurClose() {
	f.do(func() {
		if f.focused {
			return
		}
		f.dropdown.Close()
		f.render()
	})
}

func (f *SearchField) commit(item domain.SearchItem) {
	sel := item
	f.selection = &sel
	f.text = f.opts.FormatDisplay(sel)
	f.committed = f.text
	f.debounce.Cancel()
	f.seq++
	f.dropdown.Close()
	f.view.SetText(f.text)
	f.view.ShowMinLengthHint(false, f.opts.MinLengthFor(f.text))
	f.render()
	f.log.Debug("selected %s %q", sel.ID, f.text)

	if cb := f.opts.OnSelect; cb != nil {
		selected := sel
		f.effects = append(f.effects, func() { cb(selected) })
	}
	f.emitChange(f.text, &sel)
	f.runValidation(domain.TriggerChange)
}

func (f *SearchField) change() {
	f.committed = f.text
	f.runValidation(domain.TriggerChange)
}

func (f *SearchField) clear() {
	f.debounce.Cancel()
	f.seq++
	f.text = ""
	f.committed = ""
	f.selection = nil
	f.dropdown.Reset()
	f.validator.Reset()
	f.view.SetText("")
	f.view.ShowMinLengthHint(false, f.opts.MinQueryLength)
	f.view.ShowError("")
	f.render()
	f.emitChange("", nil)
}

func (f *SearchField) emitChange(text string, item *domain.SearchItem) {
	cb := f.opts.OnChange
	if cb == nil {
		return
	}
	selected := copyItem(item)
	f.effects = append(f.effects, func() { cb(text, selected) })
}

func (f *SearchField) runValidation(trigger domain.Trigger) {
	if _, ran := f.validator.RunOn(trigger, f.text, f.selection); ran {
		f.showValidation()
	}
}

func (f *SearchField) showValidation() {
	if f.view != nil {
		f.view.ShowError(f.validator.Displayed())
	}
}

func (f *SearchField) render() {
	if f.view == nil {
		return
	}
	st := f.dropdown.state
	f.view.SetLoading(st.Loading, f.opts.LoadingText)
	f.view.RenderResults(st.Items, st.Highlighted)
	f.view.ShowNoResults(st.Open && !st.Loading && len(st.Items) == 0, f.opts.NoResultsText)
	f.view.SetOpen(st.Open)
}

func copyItem(item *domain.SearchItem) *domain.SearchItem {
	if item == nil {
		return nil
	}
	c := *item
	return &c
}
