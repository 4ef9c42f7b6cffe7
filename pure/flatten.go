package pure

import "reflect"

// Flatten returns every leaf of a nested sequence in left-to-right depth-first order.
// Elements that are themselves slices or arrays (of any element type) are flattened
// recursively; everything else is appended as is. The input is never mutated.
func Flatten(elements []any) []any {
	return flattenInto(make([]any, 0, len(elements)), elements)
}

func flattenInto(memo []any, elements []any) []any {
	for _, item := range elements {
		if inner, ok := asSequence(item); ok {
			memo = flattenInto(memo, inner)
			continue
		}
		memo = append(memo, item)
	}
	return memo
}

// asSequence reports whether v is a nested sequence and returns its elements.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case nil, string, bool, int, int64, float64:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return elems, true
	default:
		return nil, false
	}
}
