package verdict

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds. Every CheckErr carries one of these (or a caller supplied
// sentinel) so callers can classify failures with errors.Is.
var (
	// ErrMismatch indicates a value did not equal the expected value.
	ErrMismatch = errors.New("value mismatch")

	// ErrNoMatch indicates a value equalled none of the candidates.
	ErrNoMatch = errors.New("no candidate matched")

	// ErrExcluded indicates a value equalled an excluded value.
	ErrExcluded = errors.New("value excluded")

	// ErrType indicates a value's dynamic type was not the expected type.
	ErrType = errors.New("type mismatch")

	// ErrInstance indicates a value was not assignable to the expected type.
	ErrInstance = errors.New("not an instance")

	// ErrProperties indicates one or more property checks failed.
	ErrProperties = errors.New("properties invalid")

	// ErrElements indicates one or more element checks failed.
	ErrElements = errors.New("elements invalid")

	// ErrNotIterable indicates an element check was applied to a value that
	// cannot produce elements.
	ErrNotIterable = errors.New("not iterable")

	// ErrAll indicates not every combined check passed.
	ErrAll = errors.New("not all checks passed")

	// ErrAny indicates none of the combined checks passed.
	ErrAny = errors.New("no check passed")

	// ErrDigest indicates a secret did not match its stored digest.
	ErrDigest = errors.New("digest mismatch")
)

// Configuration sentinels. These surface as the Err of a *ConfigError
// raised when a factory, combinator or Run is misused.
var (
	// ErrNoChecks indicates an empty check list.
	ErrNoChecks = errors.New("no checks supplied")

	// ErrNoCandidates indicates an empty candidate or exclusion list.
	ErrNoCandidates = errors.New("no candidates supplied")

	// ErrNoNilValues indicates Optional was built without nil values.
	ErrNoNilValues = errors.New("no nil values supplied")

	// ErrNoProperties indicates an empty property map.
	ErrNoProperties = errors.New("no properties supplied")

	// ErrUnknownField indicates a property key that names no field of the type.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidArgument indicates an argument of the wrong kind or a nil argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Report encoding sentinels.
var (
	// ErrMarshal indicates the codec failed to marshal a report.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal a report.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// CodecError represents a report marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}

// ConfigError reports misuse of a factory, combinator or Run.
// It is raised as a panic value at construction time; it never describes
// the data being validated.
type ConfigError struct {
	Err error  // Underlying sentinel (ErrNoChecks, ErrInvalidArgument, etc.)
	Op  string // Operation that was misused, e.g. "expect.Optional"
	Arg string // Offending argument, if any
}

func (e *ConfigError) Error() string {
	if e.Op != "" && e.Arg != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Op, e.Err.Error(), e.Arg)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
	}
	if e.Arg != "" {
		return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Arg)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Misuse panics with a *ConfigError. Factories outside this package call it
// to fail fast on bad arguments.
func Misuse(sentinel error, op, arg string) {
	panic(&ConfigError{Err: sentinel, Op: op, Arg: arg})
}

// ValidationError carries every failure of one evaluation as a single error.
// It is what Result.Err returns and what Result.Must panics with.
type ValidationError struct {
	errs []*CheckErr
}

func newValidationError(errs []*CheckErr) *ValidationError {
	return &ValidationError{errs: append([]*CheckErr(nil), errs...)}
}

// Errors returns the failures in insertion order.
func (e *ValidationError) Errors() []*CheckErr {
	return append([]*CheckErr(nil), e.errs...)
}

func (e *ValidationError) Error() string {
	if len(e.errs) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.errs))
	for i, ce := range e.errs {
		parts[i] = ce.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.errs))
	for i, ce := range e.errs {
		errs[i] = ce
	}
	return errs
}
