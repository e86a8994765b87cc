package expect

import (
	"reflect"

	"github.com/zoobzio/verdict"
)

// Digest passes when the candidate, a string or []byte, produces the encoded
// digest under algo. Failures never carry the candidate: received is
// verdict.Redacted.
//
//	expect.Digest(verdict.HashBcrypt, storedHash)
//
// Panics with a *verdict.ConfigError if algo is unknown or encoded is not a
// well formed digest for it.
func Digest(algo verdict.HashAlgo, encoded string) verdict.Check {
	if !verdict.IsValidHashAlgo(algo) {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.Digest", "hash algorithm "+string(algo))
	}
	hasher, _ := verdict.HasherFor(algo)
	if err := hasher.Parse(encoded); err != nil {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.Digest", err.Error())
	}

	return func(value any) *verdict.CheckErr {
		var plaintext []byte
		switch v := value.(type) {
		case string:
			plaintext = []byte(v)
		case []byte:
			plaintext = v
		default:
			return verdict.FailWith(verdict.ErrType, reflect.TypeFor[string](), reflect.TypeOf(value))
		}
		// encoded was parsed above, so Verify cannot fail on format.
		if ok, err := hasher.Verify(plaintext, encoded); ok && err == nil {
			return nil
		}
		return verdict.FailWith(verdict.ErrDigest, string(algo), verdict.Redacted)
	}
}

// Masked runs c and masks the received values of any failure it reports,
// so sensitive input does not leak into messages or reports.
//
// Panics with a *verdict.ConfigError if mt is unknown or c is nil.
func Masked(mt verdict.MaskType, c verdict.Check) verdict.Check {
	if !verdict.IsValidMaskType(mt) {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.Masked", "mask type "+string(mt))
	}
	if c == nil {
		verdict.Misuse(verdict.ErrInvalidArgument, "expect.Masked", "nil check")
	}
	masker, _ := verdict.MaskerFor(mt)

	return func(value any) *verdict.CheckErr {
		ce := c(value)
		if ce == nil {
			return nil
		}
		return ce.Masked(masker)
	}
}
