package world

import "github.com/mitchellh/copystructure"

// State is the free-form world state: an open key-value mapping.
// Values may be any data: scalars, slices, maps, structs or pointers to them.
type State map[string]any

// Clone returns a deep copy of s. Nested maps, slices and pointers are
// copied so the clone never aliases s. Values that cannot be copied
// (funcs, channels) are shared.
func (s State) Clone() State {
	if s == nil {
		return State{}
	}
	out := make(State, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge returns a deep copy of s overlaid with a deep copy of partial.
// Keys in partial overwrite keys in s; other keys are preserved.
// Neither s nor partial is modified.
func (s State) Merge(partial State) State {
	out := s.Clone()
	for k, v := range partial {
		out[k] = cloneValue(v)
	}
	return out
}

// String returns the string stored under key, or def.
func (s State) String(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the bool stored under key, or def.
func (s State) Bool(key string, def bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return def
}

// Float returns the number stored under key as a float64, or def.
// Integers decoded from YAML are accepted.
func (s State) Float(key string, def float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	c, err := copystructure.Copy(v)
	if err != nil {
		return v
	}
	return c
}
