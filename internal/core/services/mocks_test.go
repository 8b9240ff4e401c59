package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/custodia-labs/searchfield/internal/adapters/driven/clock"
	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newFakeClock() *clock.Fake {
	return clock.NewFake(epoch)
}

// MockView is a mock implementation of driven.View.
// It also keeps the last rendered state for assertions.
type MockView struct {
	mock.Mock

	mu          sync.Mutex
	text        string
	open        bool
	items       []domain.SearchItem
	highlighted int
	errMessage  string
	hint        bool
}

// newMockView returns a view that accepts every call.
func newMockView() *MockView {
	v := &MockView{highlighted: domain.NoHighlight}
	v.On("SetText", mock.Anything).Maybe()
	v.On("SetPlaceholder", mock.Anything).Maybe()
	v.On("SetOpen", mock.Anything).Maybe()
	v.On("SetLoading", mock.Anything, mock.Anything).Maybe()
	v.On("RenderResults", mock.Anything, mock.Anything).Maybe()
	v.On("ShowNoResults", mock.Anything, mock.Anything).Maybe()
	v.On("ShowMinLengthHint", mock.Anything, mock.Anything).Maybe()
	v.On("ShowError", mock.Anything).Maybe()
	v.On("SetDisabled", mock.Anything).Maybe()
	return v
}

func (m *MockView) SetText(text string) {
	m.Called(text)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

func (m *MockView) SetPlaceholder(text string) { m.Called(text) }

func (m *MockView) SetOpen(open bool) {
	m.Called(open)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = open
}

func (m *MockView) SetLoading(loading bool, text string) { m.Called(loading, text) }

func (m *MockView) RenderResults(items []domain.SearchItem, highlighted int) {
	m.Called(items, highlighted)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	m.highlighted = highlighted
}

func (m *MockView) ShowNoResults(show bool, text string) { m.Called(show, text) }

func (m *MockView) ShowMinLengthHint(show bool, minLength int) {
	m.Called(show, minLength)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hint = show
}

func (m *MockView) ShowError(message string) {
	m.Called(message)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMessage = message
}

func (m *MockView) SetDisabled(disabled bool) { m.Called(disabled) }

func (m *MockView) rendered() (items []domain.SearchItem, highlighted int, open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items, m.highlighted, m.open
}

func (m *MockView) shownText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *MockView) shownError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMessage
}

func (m *MockView) hintShown() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hint
}

// stubFetcher answers searches from canned records and records every request.
type stubFetcher struct {
	mu       sync.Mutex
	requests []driven.SearchRequest
	records  map[string][]domain.RawRecord
	errs     map[string]error
	gates    map[string]chan struct{}
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		records: make(map[string][]domain.RawRecord),
		errs:    make(map[string]error),
		gates:   make(map[string]chan struct{}),
	}
}

func (s *stubFetcher) respond(text string, records ...domain.RawRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[text] = records
}

func (s *stubFetcher) fail(text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[text] = err
}

// gate makes searches for text wait until the returned channel is closed.
func (s *stubFetcher) gate(text string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.gates[text] = ch
	return ch
}

func (s *stubFetcher) Fetch(ctx context.Context, req driven.SearchRequest) ([]domain.RawRecord, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	gate := s.gates[req.Text]
	records := s.records[req.Text]
	err := s.errs[req.Text]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return records, err
}

func (s *stubFetcher) calls() []driven.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]driven.SearchRequest(nil), s.requests...)
}

func (s *stubFetcher) texts() []string {
	var out []string
	for _, r := range s.calls() {
		out = append(out, r.Text)
	}
	return out
}
