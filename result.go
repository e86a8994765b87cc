package verdict

import (
	"context"
	"time"
)

// Result holds the failures produced by one evaluation, in the order the
// checks were supplied. A Result belongs to the call that created it.
type Result struct {
	errs []*CheckErr
}

// Run applies every check to value and collects the failures.
// Checks run in order and all of them run, whatever the earlier outcome.
//
// Panics with a *ConfigError if no checks are supplied or one is nil.
func Run(value any, checks ...Check) *Result {
	return RunContext(context.Background(), value, checks...)
}

// RunContext is Run with a context for the emitted signals.
// Evaluation itself never blocks and ignores cancellation.
func RunContext(ctx context.Context, value any, checks ...Check) *Result {
	if len(checks) == 0 {
		Misuse(ErrNoChecks, "verdict.Run", "")
	}
	for _, c := range checks {
		if c == nil {
			Misuse(ErrInvalidArgument, "verdict.Run", "nil check")
		}
	}

	start := time.Now()
	typeName := typeNameOf(value)
	emitRunStart(ctx, typeName, len(checks))

	r := &Result{}
	for _, c := range checks {
		if ce := c(value); ce != nil {
			r.errs = append(r.errs, ce)
		}
	}

	emitRunComplete(ctx, typeName, len(checks), len(r.errs), time.Since(start), r.Err())
	return r
}

// IsValid reports whether no check failed.
func (r *Result) IsValid() bool {
	return len(r.errs) == 0
}

// Len returns the number of failures.
func (r *Result) Len() int {
	return len(r.errs)
}

// Errors returns the failures in insertion order.
func (r *Result) Errors() []*CheckErr {
	if len(r.errs) == 0 {
		return nil
	}
	return append([]*CheckErr(nil), r.errs...)
}

// Err returns nil when valid, otherwise a *ValidationError holding every
// failure in insertion order.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return newValidationError(r.errs)
}

// Must panics with a *ValidationError holding every failure. It does nothing
// when the result is valid.
func (r *Result) Must() {
	if r.IsValid() {
		return
	}
	verr := newValidationError(r.errs)
	emitMustPanic(context.Background(), len(r.errs), verr)
	panic(verr)
}
