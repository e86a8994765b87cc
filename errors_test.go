package verdict

import (
	"errors"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	err := &ConfigError{Err: ErrNoChecks, Op: "verdict.Run"}

	if !errors.Is(err, ErrNoChecks) {
		t.Error("ConfigError should unwrap to ErrNoChecks")
	}

	if errors.Is(err, ErrNoNilValues) {
		t.Error("ConfigError should not match ErrNoNilValues")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  &ConfigError{Err: ErrUnknownField, Op: "expect.PropertiesOf", Arg: "Nickname"},
			want: "expect.PropertiesOf: unknown field (Nickname)",
		},
		{
			name: "op only",
			err:  &ConfigError{Err: ErrNoChecks, Op: "logic.And"},
			want: "logic.And: no checks supplied",
		},
		{
			name: "arg only",
			err:  &ConfigError{Err: ErrInvalidArgument, Arg: "nil check"},
			want: "invalid argument (nil check)",
		},
		{
			name: "sentinel only",
			err:  &ConfigError{Err: ErrNoProperties},
			want: "no properties supplied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMisuse_Panics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*ConfigError)
		if !ok {
			t.Fatalf("recover() = %T, want *ConfigError", r)
		}
		if err.Op != "expect.Any" || !errors.Is(err, ErrNoCandidates) {
			t.Errorf("unexpected ConfigError: %v", err)
		}
	}()

	Misuse(ErrNoCandidates, "expect.Any", "")
	t.Fatal("Misuse() should not return")
}

func TestValidationError(t *testing.T) {
	first := Fail(1, 2)
	second := FailWith(ErrType, "int", "string").WithProperty("age")
	err := newValidationError([]*CheckErr{first, second})

	want := `validation failed: value mismatch: expected 1, received 2; age: type mismatch: expected "int", received "string"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrType) {
		t.Error("ValidationError should reach child kinds through errors.Is")
	}

	var ce *CheckErr
	if !errors.As(err, &ce) || ce != first {
		t.Error("errors.As should extract the first *CheckErr")
	}

	errs := err.Errors()
	errs[0] = nil
	if err.Errors()[0] != first {
		t.Error("Errors() should return a copy")
	}
}

func TestValidationError_Empty(t *testing.T) {
	err := &ValidationError{}
	if got := err.Error(); got != "validation failed" {
		t.Errorf("Error() = %q, want %q", got, "validation failed")
	}
}

func TestCodecError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := newCodecError(ErrUnmarshal, "application/json", cause)

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}
	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}

	want := "unmarshal failed (application/json): unexpected EOF"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noCause := &CodecError{Err: ErrMarshal, ContentType: "application/xml"}
	if got := noCause.Error(); got != "marshal failed (application/xml)" {
		t.Errorf("Error() = %q", got)
	}
}
