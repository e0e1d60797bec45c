package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Item is one listing in a batch. In JSON it is either a bare string or an
// object {"id": ..., "text": ...}.
type Item struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

func (it *Item) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*it = Item{Text: s}
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*it = Item{}
		return nil
	}
	type plain Item
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("batch item must be a string or {id, text}: %w", err)
	}
	*it = Item(p)
	return nil
}

// Texts wraps bare strings as items.
func Texts(texts ...string) []Item {
	out := make([]Item, len(texts))
	for i, t := range texts {
		out[i] = Item{Text: t}
	}
	return out
}

// ReadItems decodes a JSON array of items, or an object {"items": [...]}.
func ReadItems(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Items []Item `json:"items"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("decode batch: %w", err)
		}
		return wrapped.Items, nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return items, nil
}
