package subm

import (
	"strings"
	"unicode/utf8"
)

// disallowedChars would break out of an HTML attribute or tag if echoed
// back. Templates escape on output anyway; this is an input policy, not the
// security boundary.
const disallowedChars = `<>"'`

// ValidateField checks a single trimmed form field. Checks run in order
// (empty, length, charset) and the first failure is the one reported.
// fieldName is the user-facing label, e.g. "Category" or "Item 3".
func ValidateField(text string, maxLength int, fieldName string) error {
	if text == "" {
		return newErrEmptyField(fieldName)
	}
	if utf8.RuneCountInString(text) > maxLength {
		return newErrTooLong(fieldName, maxLength)
	}
	if strings.ContainsAny(text, disallowedChars) {
		return newErrInvalidCharacters(fieldName)
	}
	return nil
}
