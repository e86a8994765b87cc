package expect

import "github.com/zoobzio/verdict"

// Value passes when the candidate strictly equals expected.
func Value(expected any) verdict.Check {
	return func(value any) *verdict.CheckErr {
		if verdict.Equal(value, expected) {
			return nil
		}
		return verdict.Fail(expected, value)
	}
}

// Any passes when the candidate strictly equals at least one candidate.
// Each candidate is compared on its own.
//
// Panics with a *verdict.ConfigError if no candidates are given.
func Any(candidates ...any) verdict.Check {
	if len(candidates) == 0 {
		verdict.Misuse(verdict.ErrNoCandidates, "expect.Any", "")
	}
	candidates = append([]any(nil), candidates...)
	return func(value any) *verdict.CheckErr {
		if verdict.EqualAny(value, candidates) {
			return nil
		}
		return verdict.FailWith(verdict.ErrNoMatch, append([]any(nil), candidates...), value)
	}
}

// Not passes when the candidate strictly equals none of excluded.
//
// Panics with a *verdict.ConfigError if nothing is excluded.
func Not(excluded ...any) verdict.Check {
	if len(excluded) == 0 {
		verdict.Misuse(verdict.ErrNoCandidates, "expect.Not", "")
	}
	excluded = append([]any(nil), excluded...)
	return func(value any) *verdict.CheckErr {
		if !verdict.EqualAny(value, excluded) {
			return nil
		}
		return verdict.FailWith(verdict.ErrExcluded, append([]any(nil), excluded...), value)
	}
}

// Func passes when pred reports true. expected describes the requirement in
// failure records.
//
// Panics with a *verdict.ConfigError if pred is nil.
func Func(expected any, pred func(value any) bool) verdict.Check {
	if pred == nil {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.Func", "nil predicate")
	}
	return func(value any) *verdict.CheckErr {
		if pred(value) {
			return nil
		}
		return verdict.Fail(expected, value)
	}
}
