package verdict

import (
	"iter"
	"reflect"
)

// Iterate probes v for the ability to produce elements and returns them
// paired with their position. The second result is false when v is not
// iterable.
//
// Iterable values are, in order of precedence: Iterable implementations,
// iter.Seq[any], iter.Seq2[int, any], slices, arrays, non-nil pointers to
// arrays, strings of any string kind (one element per rune) and
// range-over-func iterators of a single value. Maps, channels, nil, nil
// iterator funcs, Iterables yielding a nil sequence and scalars are not
// iterable.
func Iterate(v any) (iter.Seq2[int, any], bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case Iterable:
		elements := val.Elements()
		if elements == nil {
			return nil, false
		}
		return positioned(elements), true
	case iter.Seq[any]:
		if val == nil {
			return nil, false
		}
		return positioned(val), true
	case iter.Seq2[int, any]:
		if val == nil {
			return nil, false
		}
		return val, true
	case string:
		return runes(val), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() || rv.Type().Elem().Kind() != reflect.Array {
			return nil, false
		}
		return indexed(rv.Elem()), true
	case reflect.Slice, reflect.Array:
		return indexed(rv), true
	case reflect.String:
		return runes(rv.String()), true
	case reflect.Func:
		if rv.IsNil() || !rv.Type().CanSeq() {
			return nil, false
		}
		return reflected(rv), true
	}
	return nil, false
}

func positioned(seq iter.Seq[any]) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		i := 0
		for elem := range seq {
			if !yield(i, elem) {
				return
			}
			i++
		}
	}
}

func runes(s string) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		i := 0
		for _, r := range s {
			if !yield(i, r) {
				return
			}
			i++
		}
	}
}

func indexed(rv reflect.Value) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 0; i < rv.Len(); i++ {
			if !yield(i, rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func reflected(rv reflect.Value) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		i := 0
		for elem := range rv.Seq() {
			if !yield(i, elem.Interface()) {
				return
			}
			i++
		}
	}
}
