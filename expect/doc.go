// Package expect provides the leaf and structural checks of verdict.
//
// Every function here is a factory: it validates its arguments once,
// panicking with a *verdict.ConfigError on misuse, and returns a
// verdict.Check closed over that configuration. Checks are pure and safe to
// share between goroutines.
//
// Equality is strict throughout (see verdict.Equal): 5 and 5.0 differ, and
// slices or maps never equal anything.
package expect
