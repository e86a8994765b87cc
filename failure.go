package verdict

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// CheckErr describes one failed expectation. Aggregating checks (property,
// element and logical combinators) fold the failures of their sub-checks into
// Errs, each carrying the property or index it was found at.
//
// A CheckErr is immutable. Locators are attached by building a new record
// with WithProperty or WithIndex.
type CheckErr struct {
	kind     error
	expected any
	received any
	property string
	index    int
	located  locator
	errs     []*CheckErr
}

// locator records which locator fields are set.
type locator uint8

const (
	atProperty locator = 1 << iota
	atIndex
)

// Fail returns a value mismatch failure.
func Fail(expected, received any) *CheckErr {
	return FailWith(ErrMismatch, expected, received)
}

// FailWith returns a failure of the given kind.
// A nil kind is treated as ErrMismatch.
func FailWith(kind error, expected, received any) *CheckErr {
	if kind == nil {
		kind = ErrMismatch
	}
	return &CheckErr{kind: kind, expected: expected, received: received}
}

// Aggregate returns a failure holding the given child failures in order.
// Nil children are dropped.
func Aggregate(kind error, expected, received any, errs []*CheckErr) *CheckErr {
	ce := FailWith(kind, expected, received)
	for _, child := range errs {
		if child != nil {
			ce.errs = append(ce.errs, child)
		}
	}
	return ce
}

// WithProperty returns a copy of e located at the given property key.
func (e *CheckErr) WithProperty(key string) *CheckErr {
	c := *e
	c.property = key
	c.located |= atProperty
	return &c
}

// WithIndex returns a copy of e located at the given element position.
func (e *CheckErr) WithIndex(i int) *CheckErr {
	c := *e
	c.index = i
	c.located |= atIndex
	return &c
}

// Masked returns a copy of the failure tree with the received value of every
// leaf passed through m. Type values and aggregate counts are left untouched.
func (e *CheckErr) Masked(m Masker) *CheckErr {
	c := *e
	if len(e.errs) == 0 {
		c.received = maskValue(m, e.received)
		return &c
	}
	c.errs = make([]*CheckErr, len(e.errs))
	for i, child := range e.errs {
		c.errs[i] = child.Masked(m)
	}
	return &c
}

func maskValue(m Masker, v any) any {
	switch val := v.(type) {
	case nil, reflect.Type:
		return v
	case string:
		return m.Mask(val)
	case []byte:
		return m.Mask(string(val))
	case fmt.Stringer:
		return m.Mask(val.String())
	default:
		return m.Mask(fmt.Sprint(val))
	}
}

// Kind returns the sentinel classifying this failure.
func (e *CheckErr) Kind() error { return e.kind }

// Expected returns what was required: a value, a type, a candidate list or,
// for aggregates, the number of sub-checks that had to pass.
func (e *CheckErr) Expected() any { return e.expected }

// Received returns what was found: the value, its type for type checks or,
// for aggregates, the number of sub-checks that passed.
func (e *CheckErr) Received() any { return e.received }

// Property returns the key this failure was found at, if any.
func (e *CheckErr) Property() (string, bool) {
	return e.property, e.located&atProperty != 0
}

// Index returns the element position this failure was found at, if any.
func (e *CheckErr) Index() (int, bool) {
	return e.index, e.located&atIndex != 0
}

// Errs returns the child failures of an aggregate, in order.
func (e *CheckErr) Errs() []*CheckErr {
	if len(e.errs) == 0 {
		return nil
	}
	return append([]*CheckErr(nil), e.errs...)
}

func (e *CheckErr) Error() string {
	var b strings.Builder
	b.WriteString(e.location())
	b.WriteString(e.kind.Error())
	if len(e.errs) == 0 {
		fmt.Fprintf(&b, ": expected %s, received %s", Describe(e.expected), Describe(e.received))
		return b.String()
	}
	b.WriteString(" (")
	for i, child := range e.errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(child.Error())
	}
	b.WriteString(")")
	return b.String()
}

func (e *CheckErr) location() string {
	switch {
	case e.located&atProperty != 0 && e.located&atIndex != 0:
		return fmt.Sprintf("%s[%d]: ", e.property, e.index)
	case e.located&atProperty != 0:
		return e.property + ": "
	case e.located&atIndex != 0:
		return "[" + strconv.Itoa(e.index) + "]: "
	}
	return ""
}

// Unwrap exposes the kind followed by the children so errors.Is matches
// kinds anywhere in the tree.
func (e *CheckErr) Unwrap() []error {
	errs := make([]error, 0, len(e.errs)+1)
	errs = append(errs, e.kind)
	for _, child := range e.errs {
		errs = append(errs, child)
	}
	return errs
}

// Describe renders an expected or received value for messages and reports.
func Describe(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case reflect.Type:
		return val.String()
	case string:
		return strconv.Quote(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Describe(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}
