package verdict

import (
	"strings"
	"unicode"
)

// MaskType names a masking rule for received values in failure records.
type MaskType string

const (
	MaskRedact MaskType = "redact" // anything -> ***
	MaskEmail  MaskType = "email"  // alice@example.com -> a***@example.com
	MaskCard   MaskType = "card"   // 4111111111111111 -> ************1111
	MaskPhone  MaskType = "phone"  // (555) 123-4567 -> (***) ***-4567
	MaskName   MaskType = "name"   // John Smith -> J*** S****
)

// Masker hides sensitive parts of a value.
type Masker interface {
	Mask(value string) string
}

// MaskerFunc adapts a function to Masker.
type MaskerFunc func(string) string

// Mask calls f(value).
func (f MaskerFunc) Mask(value string) string { return f(value) }

// MaskerFor returns the builtin masker for mt.
func MaskerFor(mt MaskType) (Masker, bool) {
	switch mt {
	case MaskRedact:
		return MaskerFunc(redact), true
	case MaskEmail:
		return MaskerFunc(maskEmail), true
	case MaskCard:
		return MaskerFunc(maskCard), true
	case MaskPhone:
		return MaskerFunc(maskPhone), true
	case MaskName:
		return MaskerFunc(maskName), true
	}
	return nil, false
}

func redact(string) string { return Redacted }

func maskEmail(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return strings.Repeat("*", len(value))
	}
	return value[:1] + "***" + value[at:]
}

func maskCard(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

func maskPhone(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return strings.Repeat("*", len(value))
	}
	last4 := digits[len(digits)-4:]
	switch {
	case strings.HasPrefix(value, "(") && len(digits) >= 10:
		return "(***) ***-" + last4
	case len(digits) >= 10:
		return "***-***-" + last4
	default:
		return "***-" + last4
	}
}

func maskName(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(word)
		words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}
	return strings.Join(words, " ")
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
