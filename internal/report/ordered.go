package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedMap is a JSON object that remembers the key order of the
// source document. The analytics document is produced with stable key
// order and the dashboard renders steps and file rows in that order,
// so decoding into a plain Go map would scramble what the pipeline
// kept deterministic.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func (m *orderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	m.keys = nil
	m.values = make(map[string]V)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		if _, dup := m.values[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.values[key] = v
	}

	_, err = dec.Token()
	return err
}

func (m orderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get looks up a key. The second result reports presence.
func (m *orderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set inserts or replaces a key, appending new keys at the end.
func (m *orderedMap[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Len returns the number of entries.
func (m *orderedMap[V]) Len() int {
	return len(m.keys)
}

// Each visits entries in document order.
func (m *orderedMap[V]) Each(fn func(key string, v V)) {
	for _, key := range m.keys {
		fn(key, m.values[key])
	}
}

// Transcripts maps scene_<n> keys to recognized text, in document order.
type Transcripts struct {
	orderedMap[Transcript]
}

// AudioFiles maps scene_<n> keys to narration files, in document order.
type AudioFiles struct {
	orderedMap[AudioFile]
}

// Steps maps pipeline stage names to timing entries, in document order.
type Steps struct {
	orderedMap[Step]
}

// UnmarshalJSON keeps time_taken separate from the remaining free-form
// fields so the dashboard can show both.
func (s *Step) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Step{}
	if t, ok := raw["time_taken"]; ok {
		if f, ok := t.(float64); ok {
			v := f
			s.TimeTaken = &v
		}
		delete(raw, "time_taken")
	}
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

func (s Step) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(s.Extra)+1)
	for k, v := range s.Extra {
		raw[k] = v
	}
	if s.TimeTaken != nil {
		raw["time_taken"] = *s.TimeTaken
	}
	return json.Marshal(raw)
}
