package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchfield/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui"
	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	coreservices "github.com/custodia-labs/searchfield/internal/core/services"
)

// stubFetcher answers every search from a fixed record list keyed by query.
type stubFetcher struct {
	records  map[string][]domain.RawRecord
	requests []driven.SearchRequest
}

func (s *stubFetcher) Fetch(_ context.Context, req driven.SearchRequest) ([]domain.RawRecord, error) {
	s.requests = append(s.requests, req)
	return s.records[req.Text], nil
}

func testSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.Fields = []domain.FieldSettings{{
		Name:   "accountId",
		Label:  "Account",
		Preset: "account",
		Validation: domain.ValidationSettings{
			Enabled: true,
			Rules:   []domain.RuleSettings{{Type: "required"}, {Type: "required_selection"}},
		},
	}}
	return s
}

// setupTestServices installs a bootstrap backed by in-memory adapters and
// resets the package state afterwards.
func setupTestServices(t *testing.T) *stubFetcher {
	t.Helper()
	fetcher := &stubFetcher{records: map[string][]domain.RawRecord{
		"acme": {
			{"id": float64(3), "remark": "ACME Corp"},
			{"id": float64(4), "remark": "Acme Labs"},
		},
		"ACME Corp": {
			{"id": float64(3), "remark": "ACME Corp"},
		},
	}}
	settings := testSettings()
	store := memory.NewSettingsStore(settings)

	SetBootstrap(func(context.Context, string) (*Services, error) {
		return &Services{
			Lookup:   coreservices.NewLookupService(fetcher, nil, settings),
			Settings: store,
			Form: func(context.Context) (*tui.Ports, func(), error) {
				return nil, func() {}, nil
			},
		}, nil
	})
	t.Cleanup(func() {
		SetBootstrap(nil)
		services = nil
		lookupJSON, lookupSize, checkJSON, configForce = false, 0, false, false
		verbose, configPath = false, ""
	})
	return fetcher
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func requireContains(t *testing.T, out string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		require.Contains(t, out, p)
	}
}
