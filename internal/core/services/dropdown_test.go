package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

func threeItems() []domain.SearchItem {
	return []domain.SearchItem{{ID: "1", Name: "alpha"}, {ID: "2", Name: "beta"}, {ID: "3", Name: "gamma"}}
}

func TestDropdown_Phases(t *testing.T) {
	d := NewDropdown()
	assert.Equal(t, domain.PhaseClosed, d.State().Phase())
	assert.False(t, d.HasResults())

	d.StartLoading()
	assert.Equal(t, domain.PhaseOpenLoading, d.State().Phase())

	d.ShowResults(nil)
	assert.Equal(t, domain.PhaseOpenEmpty, d.State().Phase())
	assert.True(t, d.HasResults())

	d.ShowResults(threeItems())
	assert.Equal(t, domain.PhaseOpenResults, d.State().Phase())

	d.Close()
	assert.Equal(t, domain.PhaseClosed, d.State().Phase())
	assert.True(t, d.Reopen())
	assert.Equal(t, domain.PhaseOpenResults, d.State().Phase())

	d.Reset()
	assert.False(t, d.Reopen())
	assert.Equal(t, domain.PhaseClosed, d.State().Phase())
}

func TestDropdown_MoveClamps(t *testing.T) {
	d := NewDropdown()
	d.ShowResults(threeItems())

	_, consumed := d.Key(domain.KeyArrowUp)
	assert.True(t, consumed)
	assert.Equal(t, 0, d.State().Highlighted)

	for i := 0; i < 10; i++ {
		d.Key(domain.KeyArrowDown)
		h := d.State().Highlighted
		assert.True(t, h >= 0 && h <= 2)
	}
	assert.Equal(t, 2, d.State().Highlighted)

	for i := 0; i < 10; i++ {
		d.Key(domain.KeyArrowUp)
	}
	assert.Equal(t, 0, d.State().Highlighted)
}

func TestDropdown_MoveIgnoredWhenClosedOrEmpty(t *testing.T) {
	d := NewDropdown()

	_, consumed := d.Key(domain.KeyArrowDown)
	assert.False(t, consumed)

	d.ShowResults(nil)
	_, consumed = d.Key(domain.KeyArrowDown)
	assert.False(t, consumed)
	assert.Equal(t, domain.NoHighlight, d.State().Highlighted)

	d.ShowResults(threeItems())
	d.StartLoading()
	_, consumed = d.Key(domain.KeyArrowDown)
	assert.False(t, consumed)
}

func TestDropdown_Enter(t *testing.T) {
	d := NewDropdown()
	d.ShowResults(threeItems())

	item, consumed := d.Key(domain.KeyEnter)
	assert.Nil(t, item)
	assert.False(t, consumed)

	d.Key(domain.KeyArrowDown)
	d.Key(domain.KeyArrowDown)
	item, consumed = d.Key(domain.KeyEnter)
	require.NotNil(t, item)
	assert.True(t, consumed)
	assert.Equal(t, "beta", item.Name)
}

func TestDropdown_Escape(t *testing.T) {
	d := NewDropdown()
	d.ShowResults(threeItems())
	d.Key(domain.KeyArrowDown)

	_, consumed := d.Key(domain.KeyEscape)
	assert.True(t, consumed)
	assert.Equal(t, domain.PhaseClosed, d.State().Phase())
	assert.Equal(t, domain.NoHighlight, d.State().Highlighted)

	_, consumed = d.Key(domain.KeyEscape)
	assert.False(t, consumed)
}

func TestDropdown_At(t *testing.T) {
	d := NewDropdown()
	d.ShowResults(threeItems())

	item, ok := d.At(2)
	assert.True(t, ok)
	assert.Equal(t, "gamma", item.Name)

	_, ok = d.At(3)
	assert.False(t, ok)
	_, ok = d.At(-1)
	assert.False(t, ok)
}

func TestDropdown_StateIsCopy(t *testing.T) {
	d := NewDropdown()
	d.ShowResults(threeItems())

	s := d.State()
	s.Items[0].Name = "mutated"

	assert.Equal(t, "alpha", d.Items()[0].Name)
}
