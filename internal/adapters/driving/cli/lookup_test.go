package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

func TestLookupCmd_Use(t *testing.T) {
	assert.Equal(t, "lookup <field|preset|url> <query>", lookupCmd.Use)
}

func TestLookupCmd_RequiresTwoArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "lookup", "account")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestLookupCmd_HasFlags(t *testing.T) {
	size := lookupCmd.Flags().Lookup("size")
	require.NotNil(t, size)
	assert.Equal(t, "n", size.Shorthand)
	assert.Equal(t, "0", size.DefValue)
	assert.NotNil(t, lookupCmd.Flags().Lookup("json"))
}

func TestLookupCmd_PrintsItems(t *testing.T) {
	fetcher := setupTestServices(t)

	out, err := execute(t, "lookup", "account", "acme")

	require.NoError(t, err)
	requireContains(t, out, "[1] ACME Corp (id 3)", "[2] Acme Labs (id 4)")
	require.Len(t, fetcher.requests, 1)
	assert.Equal(t, "/api/admin/accounts", fetcher.requests[0].URL)
}

func TestLookupCmd_SizeFlag(t *testing.T) {
	fetcher := setupTestServices(t)

	_, err := execute(t, "lookup", "--size", "5", "/search", "acme")

	require.NoError(t, err)
	require.Len(t, fetcher.requests, 1)
	assert.Equal(t, 5, fetcher.requests[0].Size)
	assert.Equal(t, "/search", fetcher.requests[0].URL)
}

func TestLookupCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "lookup", "--json", "account", "acme")

	require.NoError(t, err)
	var items []domain.SearchItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[0].ID)
}

func TestLookupCmd_NoResults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "lookup", "account", "zzz")

	require.NoError(t, err)
	assert.Contains(t, out, domain.DefaultNoResultsText)
}

func TestLookupCmd_QueryTooShort(t *testing.T) {
	fetcher := setupTestServices(t)

	_, err := execute(t, "lookup", "account", "a")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQueryTooShort)
	assert.Empty(t, fetcher.requests)
}

func TestLookupCmd_UnknownPreset(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "lookup", "nope", "acme")

	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
}

func TestLookupCmd_NotConfigured(t *testing.T) {
	services = nil

	_, err := execute(t, "lookup", "account", "acme")

	assert.ErrorIs(t, err, errNotConfigured)
}
