package models

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is a metric record: an insertion-ordered mapping from semantic keys
// to values. Values are nil, float64, string, []any or *Record.
type Record struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: orderedmap.New[string, any]()}
}

// Set stores v under key. Re-setting a key keeps its original position.
func (r *Record) Set(key string, v any) *Record {
	if r.values == nil {
		r.values = orderedmap.New[string, any]()
	}
	r.values.Set(key, v)
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil || r.values == nil {
		return nil, false
	}
	return r.values.Get(key)
}

// Keys returns the record keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil || r.values == nil {
		return nil
	}
	out := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil || r.values == nil {
		return 0
	}
	return r.values.Len()
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	if r.values == nil {
		return []byte("{}"), nil
	}
	return r.values.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object in document order. Nested objects
// become *Record so their key order survives too.
func (r *Record) UnmarshalJSON(data []byte) error {
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}
	r.values = orderedmap.New[string, any](orderedmap.WithCapacity[string, any](raw.Len()))
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		v, err := decodeRecordValue(pair.Value)
		if err != nil {
			return err
		}
		r.values.Set(pair.Key, v)
	}
	return nil
}

func decodeRecordValue(data json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '{':
		rec := NewRecord()
		if err := rec.UnmarshalJSON(trimmed); err != nil {
			return nil, err
		}
		return rec, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := decodeRecordValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, err
	}
	return v, nil
}
