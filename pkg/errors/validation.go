package errors

// ValidateRange checks that value lies in the closed interval [lo, hi].
// The returned error names the field and carries hint as a second line,
// so configuration problems read as actionable guidance.
func ValidateRange(field string, value, lo, hi int, hint string) error {
	if value >= lo && value <= hi {
		return nil
	}
	if hint == "" {
		return New(ErrCodeConfigInvalid, "invalid %s: %d. Must be between %d and %d.", field, value, lo, hi)
	}
	return New(ErrCodeConfigInvalid, "invalid %s: %d. Must be between %d and %d.\n%s", field, value, lo, hi, hint)
}

// ValidatePositive checks that value is at least 1.
func ValidatePositive(field string, value int) error {
	if value < 1 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %d", field, value)
	}
	return nil
}
