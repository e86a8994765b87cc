package verdict

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"testing"
)

type iterateCountdown struct{ from int }

func (c iterateCountdown) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := c.from; i > 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

type iterateLabel string

type iterateEmpty struct{}

func (iterateEmpty) Elements() iter.Seq[any] { return nil }

func collect(t *testing.T, v any) []any {
	t.Helper()
	seq, ok := Iterate(v)
	if !ok {
		t.Fatalf("Iterate(%#v) not iterable", v)
	}
	var out []any
	want := 0
	for i, elem := range seq {
		if i != want {
			t.Fatalf("position = %d, want %d", i, want)
		}
		want++
		out = append(out, elem)
	}
	return out
}

func TestIterate(t *testing.T) {
	arr := [2]string{"x", "y"}

	tests := []struct {
		name string
		in   any
		want []any
	}{
		{"any slice", []any{1, "2", nil}, []any{1, "2", nil}},
		{"typed slice", []int{1, 2}, []any{1, 2}},
		{"empty slice", []int{}, nil},
		{"array", [3]int{4, 5, 6}, []any{4, 5, 6}},
		{"array pointer", &arr, []any{"x", "y"}},
		{"string runes", "héllo", []any{'h', 'é', 'l', 'l', 'o'}},
		{"string kind", iterateLabel("ab"), []any{'a', 'b'}},
		{"iterable", iterateCountdown{3}, []any{3, 2, 1}},
		{"seq any", iter.Seq[any](slices.Values([]any{"a", "b"})), []any{"a", "b"}},
		{"seq2 int any", iter.Seq2[int, any](slices.All([]any{true})), []any{true}},
		{"typed seq", slices.Values([]int{7, 8}), []any{7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("elements = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestIterate_NotIterable(t *testing.T) {
	var nilArr *[2]int
	var nilSeq iter.Seq[int]

	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"int", 42},
		{"bool", true},
		{"map", map[string]any{"a": 1}},
		{"channel", make(chan int)},
		{"struct", struct{ A int }{1}},
		{"nil array pointer", nilArr},
		{"slice pointer", &[]int{1}},
		{"nil func", nilSeq},
		{"plain func", func() {}},
		{"two value seq", maps.All(map[string]int{"a": 1})},
		{"nil seq any", iter.Seq[any](nil)},
		{"nil seq2 int any", iter.Seq2[int, any](nil)},
		{"iterable with nil elements", iterateEmpty{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Iterate(tt.in); ok {
				t.Errorf("Iterate(%T) should not be iterable", tt.in)
			}
		})
	}
}

func TestIterate_EarlyStop(t *testing.T) {
	seq, _ := Iterate([]int{1, 2, 3})

	var seen []any
	for _, elem := range seq {
		seen = append(seen, elem)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 {
		t.Errorf("seen %d elements, want 2", len(seen))
	}
}
