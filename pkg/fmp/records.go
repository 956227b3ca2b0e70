package fmp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one provider record. Field order matters downstream (it drives
// the axis order of normalized tables), and encoding/json maps do not keep
// it, so records decode token-by-token into an ordered structure. Values are
// JSON scalars; segmentation payloads nest further *Record values.
type Record struct {
	fields []string
	values map[string]any
}

// Fields returns the field names in document order.
func (r *Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Value returns the named field value and whether it is present.
func (r *Record) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Set stores a field value, appending unseen names in order. Used by tests
// to build fixtures; duplicate names keep the last value.
func (r *Record) Set(name string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[name]; !ok {
		r.fields = append(r.fields, name)
	}
	r.values[name] = value
}

// UnmarshalJSON decodes a JSON object preserving key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := decodeOrdered(dec)
	if err != nil {
		return err
	}
	rec, ok := v.(*Record)
	if !ok {
		return fmt.Errorf("fmp: expected JSON object, got %T", v)
	}
	*r = *rec
	return nil
}

func decodeOrdered(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		rec := &Record{values: make(map[string]any)}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("fmp: unexpected object key %v", keyTok)
			}
			val, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(key, val)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return rec, nil
	case '[':
		var arr []any
		for dec.More() {
			val, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("fmp: unexpected delimiter %v", delim)
	}
}
