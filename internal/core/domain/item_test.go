package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawRecord_String(t *testing.T) {
	raw := RawRecord{
		"id":      float64(1),
		"big":     float64(1234567),
		"ratio":   0.5,
		"name":    "Xylophone",
		"enabled": true,
		"nothing": nil,
		"count":   3,
	}

	assert.Equal(t, "1", raw.String("id"))
	assert.Equal(t, "1234567", raw.String("big"))
	assert.Equal(t, "0.5", raw.String("ratio"))
	assert.Equal(t, "Xylophone", raw.String("name"))
	assert.Equal(t, "true", raw.String("enabled"))
	assert.Equal(t, "", raw.String("nothing"))
	assert.Equal(t, "", raw.String("missing"))
	assert.Equal(t, "3", raw.String("count"))
}

func TestRawRecord_First(t *testing.T) {
	raw := RawRecord{"name": "", "label": "Fallback"}

	assert.Equal(t, "Fallback", raw.First("name", "label"))
	assert.Equal(t, "", raw.First("missing"))
}

func TestDefaultFormatItem(t *testing.T) {
	t.Run("uses name", func(t *testing.T) {
		item := DefaultFormatItem(RawRecord{"id": float64(1), "name": "Xylophone"})

		assert.Equal(t, "1", item.ID)
		assert.Equal(t, "Xylophone", item.Name)
		assert.NotNil(t, item.Record)
	})

	t.Run("falls back to label", func(t *testing.T) {
		item := DefaultFormatItem(RawRecord{"id": "a-1", "label": "Tokyo"})

		assert.Equal(t, "a-1", item.ID)
		assert.Equal(t, "Tokyo", item.Name)
	})

	t.Run("empty record", func(t *testing.T) {
		item := DefaultFormatItem(RawRecord{})

		assert.Equal(t, "", item.ID)
		assert.Equal(t, "", item.Name)
	})
}

func TestDefaultFormatDisplay(t *testing.T) {
	assert.Equal(t, "Xylophone", DefaultFormatDisplay(SearchItem{ID: "1", Name: "Xylophone"}))
}
