package pure

import (
	"math"
	"reflect"
	"slices"
)

// CheckMatchingLeaves reports whether every leaf reachable from obj, at any depth,
// is the same value as every other leaf. Branches are compared by their
// representative leaf only, so {a: 1, b: {c: {d: 1}}} matches.
//
// An empty structure matches vacuously. Cyclic structures never terminate.
func CheckMatchingLeaves(obj map[string]any) bool {
	return matchingLeaves(sortedValues(obj))
}

func matchingLeaves(children []any) bool {
	if len(children) == 0 {
		return true
	}
	reference := LeafOf(children[0])
	for _, current := range children {
		if sub, ok := asStructure(current); ok && !matchingLeaves(sub) {
			return false
		}
		if !SameValue(LeafOf(current), reference) {
			return false
		}
	}
	return true
}

// LeafOf returns the representative leaf of v: v itself when it is not a nested
// structure, otherwise the representative leaf of its first child. Map children
// are ordered by key, sequence children by index. An empty structure has no leaf
// and yields nil.
func LeafOf(v any) any {
	for {
		children, ok := asStructure(v)
		if !ok {
			return v
		}
		if len(children) == 0 {
			return nil
		}
		v = children[0]
	}
}

// asStructure reports whether v is a nested keyed structure and returns its
// values in key order. Sequences count as structures keyed by index.
func asStructure(v any) ([]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return sortedValues(m), true
	}
	if s, ok := asSequence(v); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	})
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = rv.MapIndex(k).Interface()
	}
	return values, true
}

func sortedValues(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return values
}

// SameValue compares two leaves without type coercion: values of different
// dynamic types are never equal, NaN equals NaN and +0 differs from -0.
// Non-comparable values fall back to reflect.DeepEqual.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		fa, fb := va.Float(), vb.Float()
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return math.IsNaN(fa) && math.IsNaN(fb)
		}
		return fa == fb && math.Signbit(fa) == math.Signbit(fb)
	}

	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
