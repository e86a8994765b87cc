package verdict

import "reflect"

// Equal reports whether a and b are strictly equal: both nil, or the same
// dynamic type and equal under ==. Values of uncomparable types (slices,
// maps, funcs, or structs holding them) are never equal, not even to
// themselves.
func Equal(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// A comparable struct or array type can still hold an uncomparable
	// value in an interface field.
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// EqualAny reports whether v strictly equals at least one candidate.
func EqualAny(v any, candidates []any) bool {
	for _, c := range candidates {
		if Equal(v, c) {
			return true
		}
	}
	return false
}
