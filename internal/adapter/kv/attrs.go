package kv

import (
	"encoding/json"
	"math"
	"slices"
)

// String returns the named attribute as a string, or "" when absent.
func (it Item) String(name string) string {
	s, _ := it.Attrs[name].(string)
	return s
}

// Int returns the named attribute as an int64, or 0 when absent.
func (it Item) Int(name string) int64 {
	n, _ := toInt64(it.Attrs[name])
	return n
}

// Strings returns the named attribute as a string list. Absent or null
// attributes yield an empty, non-nil slice.
func (it Item) Strings(name string) []string {
	return toStrings(it.Attrs[name])
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func isList(v any) bool {
	switch v.(type) {
	case []string, []any:
		return true
	}
	return false
}

func toStrings(v any) []string {
	switch l := v.(type) {
	case []string:
		return slices.Clone(l)
	case []any:
		out := make([]string, 0, len(l))
		for _, e := range l {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// Equal reports whether two attribute values are the same once backend
// encodings are normalised.
func Equal(a, b any) bool {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if _, ok := b.(string); ok {
		return false
	}
	if isList(a) || isList(b) {
		return isList(a) && isList(b) && slices.Equal(toStrings(a), toStrings(b))
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ai, ok := toInt64(a)
	if !ok {
		return false
	}
	bi, ok := toInt64(b)
	return ok && ai == bi
}

// CloneAttrs returns a copy of attrs with string lists copied.
func CloneAttrs(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if ss, ok := v.([]string); ok {
			v = slices.Clone(ss)
		}
		out[k] = v
	}
	return out
}
