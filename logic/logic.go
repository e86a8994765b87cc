// Package logic combines verdict checks.
//
// Both combinators evaluate every sub-check, whatever the earlier outcome,
// so the full failure set is always available.
package logic

import "github.com/zoobzio/verdict"

// And passes when every check passes. On failure it returns one ErrAll
// record holding only the failing checks' records, in order; expected is the
// number of checks and received the number that passed.
//
// Panics with a *verdict.ConfigError if checks is empty or holds nil.
func And(checks ...verdict.Check) verdict.Check {
	checks = validate("logic.And", checks)
	return func(value any) *verdict.CheckErr {
		errs := run(checks, value)
		if len(errs) == 0 {
			return nil
		}
		return verdict.Aggregate(verdict.ErrAll, len(checks), len(checks)-len(errs), errs)
	}
}

// Or passes when at least one check passes. When all fail it returns one
// ErrAny record holding every check's record, in order.
//
// Panics with a *verdict.ConfigError if checks is empty or holds nil.
func Or(checks ...verdict.Check) verdict.Check {
	checks = validate("logic.Or", checks)
	return func(value any) *verdict.CheckErr {
		errs := run(checks, value)
		if len(errs) < len(checks) {
			return nil
		}
		return verdict.Aggregate(verdict.ErrAny, 1, 0, errs)
	}
}

func validate(op string, checks []verdict.Check) []verdict.Check {
	if len(checks) == 0 {
		verdict.Misuse(verdict.ErrNoChecks, op, "")
	}
	for _, c := range checks {
		if c == nil {
			verdict.Misuse(verdict.ErrInvalidArgument, op, "nil check")
		}
	}
	return append([]verdict.Check(nil), checks...)
}

// run applies every check and returns the failures in order.
func run(checks []verdict.Check, value any) []*verdict.CheckErr {
	var errs []*verdict.CheckErr
	for _, c := range checks {
		if ce := c(value); ce != nil {
			errs = append(errs, ce)
		}
	}
	return errs
}
