// Package verdict provides declarative value validation built from small,
// reusable checks.
//
// A Check inspects a candidate value and returns nil on success or a
// *CheckErr describing what was expected and what was received. Checks are
// built once at configuration time and applied any number of times:
//
//	account := logic.And(
//	    expect.Type[Account](),
//	    expect.Properties(map[string]verdict.Check{
//	        "Email": expect.Not(""),
//	        "Role":  expect.Any("admin", "member"),
//	        "Tags":  expect.ForOf(expect.Type[string]()),
//	    }),
//	)
//
//	result := verdict.Run(acc, account)
//	if !result.IsValid() {
//	    return result.Err()
//	}
//
// # Packages
//
//   - verdict: Check, CheckErr, Result and the Run entrypoint
//   - verdict/expect: leaf predicates (Value, Any, Not, Type, Optional,
//     InstanceOf, Property, Properties, ForOf, Func, Digest, Masked)
//   - verdict/logic: combinators (And, Or)
//   - verdict/json, xml, yaml, msgpack, bson: codecs for failure reports
//
// # Evaluation
//
// Run applies every check in order and never stops at the first failure,
// so the Result always holds the complete failure set. Aggregating checks
// behave the same way: Properties checks every field, ForOf every element,
// And and Or every sub-check.
//
// # Errors
//
// There are two tiers:
//
//   - *ConfigError: raised as a panic when a factory, combinator or Run is
//     misused (empty check list, missing nil values, nil arguments). These
//     are programmer errors and surface during development.
//   - *CheckErr: data describing why a value failed. Run never panics with
//     these. Result.Err returns them as one *ValidationError and Result.Must
//     panics with it.
//
// Every CheckErr carries a kind sentinel (ErrMismatch, ErrType,
// ErrNotIterable, ...) reachable through errors.Is, including from the root
// of an aggregate.
//
// # Capabilities
//
// Property lookup and iteration are capability probes rather than ad hoc
// reflection at each call site. Types may opt in directly:
//
//   - Propertied: answers Property(key) for Property/Properties checks
//   - Iterable: produces elements for ForOf
//
// Structs are read through cached field plans built from sentinel metadata.
// A `verdict:"name"` tag renames a field; nested structs are addressed with
// dotted keys ("Address.City").
//
// # Observability
//
// Run emits capitan signals (verdict.run.start, verdict.run.complete) with
// the value type, check count, failure count and duration.
package verdict

import "reflect"

// Check inspects a candidate value. It returns nil when the value passes and
// a failure record otherwise. A Check must not mutate the candidate.
type Check func(value any) *CheckErr

// Typed adapts a statically typed predicate into a Check. Candidates that
// are not a T fail with ErrType.
//
// Panics with a *ConfigError if fn is nil.
func Typed[T any](fn func(T) *CheckErr) Check {
	if fn == nil {
		Misuse(ErrInvalidArgument, "verdict.Typed", "nil func")
	}
	want := reflect.TypeFor[T]()
	return func(value any) *CheckErr {
		v, ok := value.(T)
		if !ok {
			return FailWith(ErrType, want, reflect.TypeOf(value))
		}
		return fn(v)
	}
}
