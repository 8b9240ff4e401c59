package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

func TestServer_handleLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("returns items", func(t *testing.T) {
		lookup := &mockLookupService{
			items: []domain.SearchItem{
				{ID: "3", Name: "ACME Corp"},
				{ID: "4", Name: "Acme Labs"},
			},
		}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, output, err := server.handleLookup(ctx, nil, LookupInput{Target: "account", Query: "acme", Size: 5})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, ItemOutput{ID: "3", Name: "ACME Corp"}, output.Items[0])
		assert.Equal(t, driving.LookupRequest{Target: "account", Query: "acme", Size: 5}, lookup.lastRequest)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Lookup: &mockLookupService{}})
		require.NoError(t, err)

		_, output, err := server.handleLookup(ctx, nil, LookupInput{Target: "/search", Query: "zz"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Items)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		lookup := &mockLookupService{err: domain.ErrQueryTooShort}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, _, err = server.handleLookup(ctx, nil, LookupInput{Target: "account", Query: "a"})

		assert.ErrorIs(t, err, domain.ErrQueryTooShort)
	})
}

func TestServer_handleCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("returns check result", func(t *testing.T) {
		lookup := &mockLookupService{
			check: driving.CheckResult{Valid: false, Message: "请从下拉列表中选择一项"},
		}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, output, err := server.handleCheck(ctx, nil, CheckInput{Field: "accountId", Text: "acme"})

		require.NoError(t, err)
		assert.Equal(t, "accountId", output.Field)
		assert.Equal(t, "acme", output.Text)
		assert.False(t, output.Valid)
		assert.Equal(t, "请从下拉列表中选择一项", output.Message)
	})

	t.Run("unknown field", func(t *testing.T) {
		lookup := &mockLookupService{err: domain.ErrUnknownField}
		server, err := NewServer(&Ports{Lookup: lookup})
		require.NoError(t, err)

		_, _, err = server.handleCheck(ctx, nil, CheckInput{Field: "nope"})

		assert.True(t, errors.Is(err, domain.ErrUnknownField))
	})
}
