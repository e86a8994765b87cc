package yaml

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/verdict"
	"github.com/zoobzio/verdict/expect"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestReportRoundTrip(t *testing.T) {
	c := New()

	r := verdict.Run(map[string]any{"a": 2, "tags": []any{"x", 1}},
		expect.Properties(map[string]verdict.Check{
			"a":    expect.Value(1),
			"tags": expect.ForOf(expect.Type[string]()),
		}),
	)

	data, err := r.Encode(c)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	restored, err := verdict.DecodeReport(c, data)
	if err != nil {
		t.Fatalf("DecodeReport() error: %v", err)
	}

	if !reflect.DeepEqual(restored, r.Report()) {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, r.Report())
	}
}

func TestValidReportRoundTrip(t *testing.T) {
	c := New()

	data, err := verdict.Run("x", expect.Type[string]()).Encode(c)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	restored, err := verdict.DecodeReport(c, data)
	if err != nil {
		t.Fatalf("DecodeReport() error: %v", err)
	}
	if !restored.Valid || len(restored.Errors) != 0 {
		t.Errorf("DecodeReport() = %+v, want valid report", restored)
	}
}

func TestMarshalShape(t *testing.T) {
	data, err := verdict.Run(2, expect.Value(1)).Encode(New())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	for _, want := range []string{"valid: false", "kind: value mismatch", `expected: "1"`, `received: "2"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Encode() = %s, missing %q", data, want)
		}
	}
	if strings.Contains(string(data), "property") {
		t.Errorf("Encode() = %s, empty property should be omitted", data)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var report verdict.Report
	if err := c.Unmarshal([]byte("valid: [unclosed"), &report); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}

	if _, err := verdict.DecodeReport(c, []byte("valid: [unclosed")); err == nil {
		t.Error("DecodeReport(invalid) should return error")
	}
}

func TestNewIndented(t *testing.T) {
	r := verdict.Run(map[string]any{"a": 2}, expect.Properties(map[string]verdict.Check{"a": expect.Value(1)}))

	data, err := r.Encode(NewIndented(4))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	compact, err := r.Encode(New())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if len(data) <= len(compact) {
		t.Errorf("Encode() with indent 4 = %d bytes, want more than %d", len(data), len(compact))
	}

	restored, err := verdict.DecodeReport(NewIndented(0), data)
	if err != nil {
		t.Fatalf("DecodeReport() error: %v", err)
	}
	if !reflect.DeepEqual(restored, r.Report()) {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, r.Report())
	}
}
