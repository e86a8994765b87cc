package expect

import (
	"reflect"

	"github.com/zoobzio/verdict"
)

// Type passes when the candidate's dynamic type is exactly T. Assignability
// does not count: Type[error]() never passes, use InstanceOf for that.
func Type[T any]() verdict.Check {
	return typeCheck(reflect.TypeFor[T]())
}

// TypeOf is Type for a type known only at run time.
//
// Panics with a *verdict.ConfigError if rt is nil.
func TypeOf(rt reflect.Type) verdict.Check {
	if rt == nil {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.TypeOf", "nil type")
	}
	return typeCheck(rt)
}

func typeCheck(want reflect.Type) verdict.Check {
	return func(value any) *verdict.CheckErr {
		got := reflect.TypeOf(value)
		if got == want {
			return nil
		}
		return verdict.FailWith(verdict.ErrType, want, got)
	}
}

// Optional passes when the candidate's dynamic type is exactly T or the
// candidate strictly equals one of nilValues.
//
//	expect.Optional[string](nil, "")
//
// Panics with a *verdict.ConfigError if no nil values are given.
func Optional[T any](nilValues ...any) verdict.Check {
	return optional("expect.Optional", reflect.TypeFor[T](), nilValues)
}

// OptionalOf is Optional for a type known only at run time.
//
// Panics with a *verdict.ConfigError if rt is nil or no nil values are given.
func OptionalOf(rt reflect.Type, nilValues ...any) verdict.Check {
	if rt == nil {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.OptionalOf", "nil type")
	}
	return optional("expect.OptionalOf", rt, nilValues)
}

func optional(op string, want reflect.Type, nilValues []any) verdict.Check {
	if len(nilValues) == 0 {
		verdict.Misuse(verdict.ErrNoNilValues, op, want.String())
	}
	nilValues = append([]any(nil), nilValues...)
	return func(value any) *verdict.CheckErr {
		if reflect.TypeOf(value) == want || verdict.EqualAny(value, nilValues) {
			return nil
		}
		expected := make([]any, 0, len(nilValues)+1)
		expected = append(expected, want)
		expected = append(expected, nilValues...)
		return verdict.FailWith(verdict.ErrType, expected, value)
	}
}

// InstanceOf passes when the candidate is assignable to T: for an interface
// T, when it implements T; otherwise when its type is T.
func InstanceOf[T any]() verdict.Check {
	want := reflect.TypeFor[T]()
	return func(value any) *verdict.CheckErr {
		if _, ok := value.(T); ok {
			return nil
		}
		return verdict.FailWith(verdict.ErrInstance, want, value)
	}
}

// InstanceOfType is InstanceOf for a type known only at run time.
//
// Panics with a *verdict.ConfigError if rt is nil.
func InstanceOfType(rt reflect.Type) verdict.Check {
	if rt == nil {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.InstanceOfType", "nil type")
	}
	return func(value any) *verdict.CheckErr {
		got := reflect.TypeOf(value)
		if got != nil && (got == rt || (rt.Kind() == reflect.Interface && got.Implements(rt))) {
			return nil
		}
		return verdict.FailWith(verdict.ErrInstance, rt, value)
	}
}
