package rule

import (
	"fmt"
)

// Severity is the three-valued rule severity shared by both ecosystems.
//
// ESLint encodes severity as 0/1/2 or "off"/"warn"/"error"; oxlint
// additionally accepts "allow" and "deny". All wire forms are collapsed
// into this one model at the parsing boundary so downstream logic never
// re-inspects raw tokens.
type Severity int

const (
	Off Severity = iota
	Warn
	Error
)

// String returns the canonical string form ("off", "warn", "error").
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Enabled reports whether the severity turns the rule on.
func (s Severity) Enabled() bool {
	return s != Off
}

// InvalidSeverityError is returned when a severity token is outside the
// recognized set. It always names the offending value.
type InvalidSeverityError struct {
	Value any
}

func (e *InvalidSeverityError) Error() string {
	return fmt.Sprintf("invalid severity: %v", e.Value)
}

// ParseSeverity normalizes any recognized wire encoding of a severity
// into the Severity model.
//
// Accepted inputs:
//   - numeric codes 0, 1, 2 (JSON numbers decode as float64)
//   - string tokens "off", "warn", "error"
//   - oxlint tokens "allow" (= off) and "deny" (= error)
//
// Anything else fails with *InvalidSeverityError. A rule cannot be
// classified without a valid severity, so callers must treat this as
// fatal for the rule being parsed.
func ParseSeverity(v any) (Severity, error) {
	switch t := v.(type) {
	case Severity:
		return t, nil
	case int:
		return severityFromCode(float64(t), v)
	case float64:
		return severityFromCode(t, v)
	case string:
		switch t {
		case "off", "allow":
			return Off, nil
		case "warn":
			return Warn, nil
		case "error", "deny":
			return Error, nil
		}
	}
	return Off, &InvalidSeverityError{Value: v}
}

func severityFromCode(code float64, orig any) (Severity, error) {
	switch code {
	case 0:
		return Off, nil
	case 1:
		return Warn, nil
	case 2:
		return Error, nil
	}
	return Off, &InvalidSeverityError{Value: orig}
}
