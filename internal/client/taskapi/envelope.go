package taskapi

import (
	"bytes"
	"encoding/json"
)

// Envelope is the paginated list shape of the API.
type Envelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ExtractResults accepts either a bare JSON array or an Envelope and returns
// its items. Any other shape yields an empty list and ok == false.
func ExtractResults[T any](raw []byte) (items []T, ok bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []T{}, false
	}

	switch raw[0] {
	case '[':
		return decodeList[T](raw)
	case '{':
		var env struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return []T{}, false
		}
		results := bytes.TrimSpace(env.Results)
		if len(results) == 0 || results[0] != '[' {
			return []T{}, false
		}
		return decodeList[T](results)
	}
	return []T{}, false
}

func decodeList[T any](raw []byte) ([]T, bool) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, false
	}
	if items == nil {
		items = []T{}
	}
	return items, true
}
