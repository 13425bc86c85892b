package api

import (
	"bytes"
	"encoding/json"
)

// Page is the canonical list payload. The server answers list endpoints in one
// of two shapes: a bare array (full result set, no true server-side total) or
// an {items, total} object. Both decode into Page so nothing outside this file
// has to branch on the shape. Counted records which shape was seen; the pager
// falls back to the "short page" heuristic when it is false.
type Page[T any] struct {
	Items   []T
	Total   int
	Counted bool
}

type pageEnvelope[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		p.Items = items
		p.Total = len(items)
		p.Counted = false
		return nil
	}

	var env pageEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	p.Items = env.Items
	p.Total = env.Total
	p.Counted = true
	return nil
}
