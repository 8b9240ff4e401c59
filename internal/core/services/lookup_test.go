package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchfield/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

func lookupSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.Fields = []domain.FieldSettings{
		{
			Name:   "accountId",
			Preset: "account",
			Validation: domain.ValidationSettings{
				Enabled: true,
				Rules:   []domain.RuleSettings{{Type: "required"}, {Type: "required_selection"}},
			},
		},
		{
			Name: "note",
			Validation: domain.ValidationSettings{
				Enabled: true,
				Rules:   []domain.RuleSettings{{Type: "max_length", Value: 3}},
			},
		},
	}
	return s
}

func TestLookupService_LookupPreset(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.respond("acme", domain.RawRecord{"id": float64(3), "remark": "ACME Corp"})
	svc := NewLookupService(fetcher, nil, lookupSettings())

	items, err := svc.Lookup(context.Background(), driving.LookupRequest{Target: "account", Query: " acme "})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "ACME Corp", items[0].Name)

	calls := fetcher.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/api/admin/accounts", calls[0].URL)
	assert.Equal(t, 20, calls[0].Size)
}

func TestLookupService_LookupURLAndSize(t *testing.T) {
	fetcher := newStubFetcher()
	svc := NewLookupService(fetcher, nil, lookupSettings())

	items, err := svc.Lookup(context.Background(), driving.LookupRequest{Target: "/search", Query: "xy", Size: 5})

	require.NoError(t, err)
	assert.Empty(t, items)
	calls := fetcher.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/search", calls[0].URL)
	assert.Equal(t, 5, calls[0].Size)
}

func TestLookupService_LookupConfiguredField(t *testing.T) {
	fetcher := newStubFetcher()
	svc := NewLookupService(fetcher, nil, lookupSettings())

	_, err := svc.Lookup(context.Background(), driving.LookupRequest{Target: "accountId", Query: "xy"})

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/accounts", fetcher.calls()[0].URL)
}

func TestLookupService_LookupErrors(t *testing.T) {
	fetcher := newStubFetcher()
	svc := NewLookupService(fetcher, nil, lookupSettings())
	ctx := context.Background()

	_, err := svc.Lookup(ctx, driving.LookupRequest{Target: "invoice", Query: "xy"})
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)

	_, err = svc.Lookup(ctx, driving.LookupRequest{Target: "account", Query: "x"})
	assert.ErrorIs(t, err, domain.ErrQueryTooShort)

	_, err = svc.Lookup(ctx, driving.LookupRequest{Target: "account", Query: "中"})
	assert.NoError(t, err)

	fetcher.fail("zz", domain.ErrNetworkFailure)
	items, err := svc.Lookup(ctx, driving.LookupRequest{Target: "account", Query: "zz"})
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
	assert.Empty(t, items)
}

func TestLookupService_CheckWithSelection(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.respond("ACME Corp", domain.RawRecord{"id": "3", "remark": "ACME Corp"})
	svc := NewLookupService(fetcher, nil, lookupSettings())

	result, err := svc.Check(context.Background(), "accountId", "ACME Corp")

	require.NoError(t, err)
	assert.True(t, result.Valid)
	require.NotNil(t, result.Selection)
	assert.Equal(t, "3", result.Selection.ID)
	assert.Empty(t, result.Errors)
}

func TestLookupService_CheckWithoutMatch(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.respond("ACME", domain.RawRecord{"id": "3", "remark": "ACME Corp"})
	svc := NewLookupService(fetcher, nil, lookupSettings())

	result, err := svc.Check(context.Background(), "accountId", "ACME")

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Nil(t, result.Selection)
	assert.Equal(t, "请从下拉列表中选择一项", result.Message)

	result, err = svc.Check(context.Background(), "accountId", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"此字段为必填项", "请从下拉列表中选择一项"}, result.Errors)
	assert.Equal(t, "此字段为必填项", result.Message)
}

func TestLookupService_CheckLocalRules(t *testing.T) {
	fetcher := newStubFetcher()
	svc := NewLookupService(fetcher, nil, lookupSettings())

	result, err := svc.Check(context.Background(), "note", "abcd")

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "最多只能输入 3 个字符", result.Message)
	assert.Empty(t, fetcher.calls())

	_, err = svc.Check(context.Background(), "missing", "x")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestLookupService_SetSettings(t *testing.T) {
	svc := NewLookupService(newStubFetcher(), nil, domain.DefaultSettings())
	assert.Empty(t, svc.Fields())

	svc.SetSettings(lookupSettings())

	assert.Len(t, svc.Fields(), 2)
}

func TestLookupService_SizeBypassesCache(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.respond("acme",
		domain.RawRecord{"id": float64(3), "remark": "ACME Corp"},
		domain.RawRecord{"id": float64(4), "remark": "Acme Labs"},
	)
	clk := newFakeClock()
	cache := memory.NewResultCache(clk, domain.DefaultCacheExpiration)
	svc := NewLookupService(fetcher, cache, lookupSettings())
	ctx := context.Background()

	_, err := svc.Lookup(ctx, driving.LookupRequest{Target: "account", Query: "acme", Size: 1})
	require.NoError(t, err)
	_, err = svc.Lookup(ctx, driving.LookupRequest{Target: "account", Query: "acme", Size: 50})
	require.NoError(t, err)

	calls := fetcher.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, 1, calls[0].Size)
	assert.Equal(t, 50, calls[1].Size)
	assert.Zero(t, cache.Len())

	_, err = svc.Lookup(ctx, driving.LookupRequest{Target: "account", Query: "acme"})
	require.NoError(t, err)
	_, err = svc.Lookup(ctx, driving.LookupRequest{Target: "account", Query: "acme", Size: 20})
	require.NoError(t, err)

	assert.Len(t, fetcher.calls(), 3)
	assert.Equal(t, 1, cache.Len())
}
