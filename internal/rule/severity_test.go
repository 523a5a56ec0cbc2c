package rule

import (
	"errors"
	"testing"
)

func TestParseSeverity_Recognized(t *testing.T) {
	tests := []struct {
		in   any
		want Severity
	}{
		{0, Off},
		{1, Warn},
		{2, Error},
		{float64(0), Off},
		{float64(1), Warn},
		{float64(2), Error},
		{"off", Off},
		{"warn", Warn},
		{"error", Error},
		{"allow", Off},
		{"deny", Error},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if err != nil {
			t.Errorf("ParseSeverity(%v) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeverity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSeverity_Rejected(t *testing.T) {
	for _, in := range []any{3, -1, float64(1.5), "banana", "warning", "", nil, true} {
		_, err := ParseSeverity(in)
		if err == nil {
			t.Errorf("ParseSeverity(%v) should fail", in)
			continue
		}
		var invalid *InvalidSeverityError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseSeverity(%v) error = %v, want InvalidSeverityError", in, err)
		}
	}
}

func TestParse_SeverityOnly(t *testing.T) {
	r, err := Parse("no-console", "warn")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Name != "no-console" || r.Severity != Warn || r.HasConfig() {
		t.Errorf("unexpected rule: %+v", r)
	}
}

func TestParse_SeverityWithConfig(t *testing.T) {
	r, err := Parse("max-len", []any{"error", map[string]any{"code": float64(120)}})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Severity != Error {
		t.Errorf("severity = %v, want error", r.Severity)
	}
	if !r.HasConfig() {
		t.Error("config payload should be carried")
	}
}

func TestParse_NormalizesName(t *testing.T) {
	r, err := Parse("@typescript-eslint/no-unused-vars", 2)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Name != "typescript/no-unused-vars" {
		t.Errorf("name = %q, want typescript/no-unused-vars", r.Name)
	}
}

func TestParse_EmptySequence(t *testing.T) {
	if _, err := Parse("no-console", []any{}); err == nil {
		t.Error("empty sequence should fail")
	}
}
