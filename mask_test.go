package verdict

import "testing"

func TestMaskers(t *testing.T) {
	tests := []struct {
		mt    MaskType
		input string
		want  string
	}{
		{MaskRedact, "anything at all", "***"},
		{MaskRedact, "", "***"},
		{MaskEmail, "alice@example.com", "a***@example.com"},
		{MaskEmail, "a@b.com", "a***@b.com"},
		{MaskEmail, "noatsign", "********"},
		{MaskEmail, "@example.com", "************"},
		{MaskCard, "4111111111111111", "************1111"},
		{MaskCard, "4111-1111-1111-1111", "************1111"},
		{MaskCard, "123", "***"},
		{MaskPhone, "(555) 123-4567", "(***) ***-4567"},
		{MaskPhone, "555-123-4567", "***-***-4567"},
		{MaskPhone, "123-4567", "***-4567"},
		{MaskPhone, "12", "**"},
		{MaskName, "John Smith", "J*** S****"},
		{MaskName, "Zoë", "Z**"},
		{MaskName, "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.mt)+"/"+tt.input, func(t *testing.T) {
			m, ok := MaskerFor(tt.mt)
			if !ok {
				t.Fatalf("MaskerFor(%q) missing", tt.mt)
			}
			if got := m.Mask(tt.input); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskerFor_Unknown(t *testing.T) {
	if _, ok := MaskerFor("ssn"); ok {
		t.Error("MaskerFor(ssn) should not exist")
	}
}

func TestMaskerFunc(t *testing.T) {
	m := MaskerFunc(func(s string) string { return "<" + s + ">" })
	if got := m.Mask("x"); got != "<x>" {
		t.Errorf("Mask() = %q, want %q", got, "<x>")
	}
}
