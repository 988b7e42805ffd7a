package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NotProvided is the placeholder value forms use for fields the visitor skipped.
const NotProvided = "Not provided"

type FormEntry struct {
	Key   string
	Value string
}

// FormData is a string mapping that remembers insertion order.
// Order only matters for display; stores may persist it as a plain JSON object.
type FormData []FormEntry

func (d FormData) Get(key string) (string, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// First returns the first non-empty value among keys.
func (d FormData) First(keys ...string) string {
	for _, k := range keys {
		if v, ok := d.Get(k); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Set replaces the value of an existing key in place or appends a new entry.
func (d *FormData) Set(key, value string) {
	for i := range *d {
		if (*d)[i].Key == key {
			(*d)[i].Value = value
			return
		}
	}
	*d = append(*d, FormEntry{Key: key, Value: value})
}

// Presented returns the entries worth showing to an operator: non-empty and not the NotProvided sentinel.
func (d FormData) Presented() FormData {
	out := make(FormData, 0, len(d))
	for _, e := range d {
		if strings.TrimSpace(e.Value) == "" || e.Value == NotProvided {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (d FormData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON keeps the key order of the JSON object. Non-string scalars are kept as their JSON text.
func (d *FormData) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("form_data: expected object, got %v", tok)
	}

	out := FormData{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("form_data: expected string key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		out.Set(key, rawToString(raw))
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = out
	return nil
}

func rawToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return ""
	}
	return trimmed
}
