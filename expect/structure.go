package expect

import (
	"reflect"
	"slices"

	"github.com/zoobzio/verdict"
)

// Property passes when the candidate's key property strictly equals
// expected. A missing property reads as nil. See verdict.Get for how keys
// resolve on maps and structs.
func Property(key string, expected any) verdict.Check {
	return func(value any) *verdict.CheckErr {
		got, _ := verdict.Get(value, key)
		if verdict.Equal(got, expected) {
			return nil
		}
		return verdict.Fail(expected, got).WithProperty(key)
	}
}

// Properties runs each check against the matching property of the
// candidate. Every property is checked, in sorted key order; the failures
// are folded into one ErrProperties record, each located at its key.
//
// Panics with a *verdict.ConfigError if checks is empty or holds a nil check.
func Properties(checks map[string]verdict.Check) verdict.Check {
	return properties("expect.Properties", checks)
}

// PropertiesOf is Properties with keys validated against struct type T at
// construction.
//
// Panics with a *verdict.ConfigError if T is not a struct or a key names no
// field of T.
func PropertiesOf[T any](checks map[string]verdict.Check) verdict.Check {
	known, err := verdict.FieldKeys[T]()
	if err != nil {
		panic(err)
	}
	for key := range checks {
		if !slices.Contains(known, key) {
			verdict.Misuse(verdict.ErrUnknownField, "expect.PropertiesOf", key)
		}
	}
	return properties("expect.PropertiesOf", checks)
}

func properties(op string, checks map[string]verdict.Check) verdict.Check {
	if len(checks) == 0 {
		verdict.Misuse(verdict.ErrNoProperties, op, "")
	}
	keys := make([]string, 0, len(checks))
	bound := make(map[string]verdict.Check, len(checks))
	for key, c := range checks {
		if c == nil {
			verdict.Misuse(verdict.ErrInvalidArgument, op, "nil check for "+key)
		}
		keys = append(keys, key)
		bound[key] = c
	}
	slices.Sort(keys)

	return func(value any) *verdict.CheckErr {
		var errs []*verdict.CheckErr
		for _, key := range keys {
			got, _ := verdict.Get(value, key)
			if ce := bound[key](got); ce != nil {
				errs = append(errs, ce.WithProperty(key))
			}
		}
		if len(errs) == 0 {
			return nil
		}
		return verdict.Aggregate(verdict.ErrProperties, len(keys), len(keys)-len(errs), errs)
	}
}

// ForOf runs c against every element of the candidate. Non-iterable
// candidates fail with ErrNotIterable; otherwise every element is checked
// and the failures are folded into one ErrElements record, each located at
// its position. See verdict.Iterate for what counts as iterable.
//
// Panics with a *verdict.ConfigError if c is nil.
func ForOf(c verdict.Check) verdict.Check {
	if c == nil {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.ForOf", "nil check")
	}
	return func(value any) *verdict.CheckErr {
		elements, ok := verdict.Iterate(value)
		if !ok {
			return verdict.FailWith(verdict.ErrNotIterable, "iterable", reflect.TypeOf(value))
		}
		var errs []*verdict.CheckErr
		n := 0
		for i, elem := range elements {
			n++
			if ce := c(elem); ce != nil {
				errs = append(errs, ce.WithIndex(i))
			}
		}
		if len(errs) == 0 {
			return nil
		}
		return verdict.Aggregate(verdict.ErrElements, n, n-len(errs), errs)
	}
}
