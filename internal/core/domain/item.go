package domain

import (
	"fmt"
	"strconv"
)

// RawRecord is one element of the records array returned by the admin API.
// Values keep their JSON types (string, float64, bool, nil, []any, map[string]any).
type RawRecord map[string]any

// String returns the value at key rendered as text.
// Numbers are formatted without a trailing fraction, so 1 renders as "1".
// Missing and null values render as "".
func (r RawRecord) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// First returns the first non-empty value among keys.
func (r RawRecord) First(keys ...string) string {
	for _, k := range keys {
		if s := r.String(k); s != "" {
			return s
		}
	}
	return ""
}

// SearchItem is a normalised search result.
type SearchItem struct {
	// ID identifies the item. Two items are the same item when their IDs match.
	ID string `json:"id"`

	// Name is the text shown in the list and copied into the input on selection.
	Name string `json:"name"`

	// Record is the raw record the item was built from.
	Record RawRecord `json:"record,omitempty"`
}

// ItemFormatter maps a raw record to a display item.
type ItemFormatter func(RawRecord) SearchItem

// DisplayFormatter renders the input text for a selected item.
type DisplayFormatter func(SearchItem) string

// DefaultFormatItem exposes the raw id, and name falling back to label.
func DefaultFormatItem(raw RawRecord) SearchItem {
	return SearchItem{
		ID:     raw.String("id"),
		Name:   raw.First("name", "label"),
		Record: raw,
	}
}

// DefaultFormatDisplay returns the item's name.
func DefaultFormatDisplay(item SearchItem) string {
	return item.Name
}
