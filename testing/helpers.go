// Package testing provides fixtures and assertions for tests that use verdict.
package testing

import (
	"errors"
	"iter"
	"testing"

	"github.com/zoobzio/verdict"
)

// RequireValid fails the test if r holds any failure.
func RequireValid(tb testing.TB, r *verdict.Result) {
	tb.Helper()
	if !r.IsValid() {
		tb.Fatalf("expected valid result, got %d failure(s): %v", r.Len(), r.Err())
	}
}

// RequireFailures fails the test unless r holds exactly n failures.
func RequireFailures(tb testing.TB, r *verdict.Result, n int) []*verdict.CheckErr {
	tb.Helper()
	if r.Len() != n {
		tb.Fatalf("expected %d failure(s), got %d: %v", n, r.Len(), r.Err())
	}
	return r.Errors()
}

// RequireConfigPanic fails the test unless fn panics with a
// *verdict.ConfigError wrapping sentinel.
func RequireConfigPanic(tb testing.TB, sentinel error, fn func()) *verdict.ConfigError {
	tb.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	if recovered == nil {
		tb.Fatalf("expected panic with %v, got none", sentinel)
		return nil
	}
	err, ok := recovered.(error)
	if !ok {
		tb.Fatalf("expected error panic, got %T: %v", recovered, recovered)
		return nil
	}
	var cfg *verdict.ConfigError
	if !errors.As(err, &cfg) {
		tb.Fatalf("expected *verdict.ConfigError, got %T: %v", err, err)
		return nil
	}
	if !errors.Is(cfg, sentinel) {
		tb.Fatalf("expected %v, got %v", sentinel, cfg)
	}
	return cfg
}

// Digest hashes plaintext with algo and returns the encoded digest, for use
// with expect.Digest. Argon2 and bcrypt use their cheapest parameters.
func Digest(tb testing.TB, algo verdict.HashAlgo, plaintext string) string {
	tb.Helper()

	var h verdict.Hasher
	switch algo {
	case verdict.HashArgon2:
		h = verdict.Argon2WithParams(verdict.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16, SaltLen: 8})
	case verdict.HashBcrypt:
		h = verdict.BcryptWithCost(verdict.BcryptMinCost)
	default:
		var ok bool
		if h, ok = verdict.HasherFor(algo); !ok {
			tb.Fatalf("unknown hash algorithm %q", algo)
			return ""
		}
	}

	digest, err := h.Hash([]byte(plaintext))
	if err != nil {
		tb.Fatalf("hash %s: %v", algo, err)
	}
	return digest
}

// Address is a nested fixture.
type Address struct {
	City    string
	Country string `verdict:"country"`
}

// Account is a fixture exercising renamed, hidden, nested and pointer fields.
type Account struct {
	ID       string
	Email    string `verdict:"email"`
	Role     string
	Age      int
	Tags     []string
	Password string `verdict:"-"`
	Home     Address
	Billing  *Address
}

// Bag is a Propertied fixture backed by a map.
type Bag map[string]any

// Property implements verdict.Propertied.
func (b Bag) Property(key string) (any, bool) {
	v, ok := b[key]
	return v, ok
}

// Countdown is an Iterable fixture yielding From down to 1.
type Countdown struct {
	From int
}

// Elements implements verdict.Iterable.
func (c Countdown) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := c.From; i > 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}
