package applications

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError is a field-level rule violation. Reason is safe to
// return to the caller verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// minLength enforces a minimum length in characters, not bytes, so a
// one-rune multibyte name is still one character. Values are
// deliberately not trimmed before measuring. When allowEmpty is true an
// empty value passes unchanged (optional field).
func minLength(field, label, value string, min int, allowEmpty bool) error {
	if value == "" && allowEmpty {
		return nil
	}
	if utf8.RuneCountInString(value) < min {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%s must be at least %d characters", label, min),
		}
	}
	return nil
}

// normalizeEmail checks the raw value (non-empty, contains '@') and
// returns the canonical stored form: trimmed and lower-cased.
func normalizeEmail(email string) (string, error) {
	if email == "" || !strings.Contains(email, "@") {
		return "", &ValidationError{Field: "email", Reason: "Valid email address is required"}
	}
	return strings.ToLower(strings.TrimSpace(email)), nil
}

// normalizePhone trims the value and, when something is left, requires
// at least 10 characters (runes, not bytes). Empty after trimming
// counts as absent. There is intentionally no digits-only check.
func normalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone != "" && utf8.RuneCountInString(phone) < 10 {
		return "", &ValidationError{Field: "phone", Reason: "Phone number must be at least 10 digits"}
	}
	return phone, nil
}
