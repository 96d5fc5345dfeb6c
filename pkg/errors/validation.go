package errors

import (
	"strings"
	"unicode"
)

// ValidateXRef validates a cross-reference identifier (e.g. "@I1@").
// An xref must be delimited by '@' on both sides and carry a non-empty body
// without whitespace or control characters.
func ValidateXRef(xref string) error {
	if xref == "" {
		return New(ErrCodeInvalidXRef, "xref cannot be empty")
	}

	if !strings.HasPrefix(xref, "@") || !strings.HasSuffix(xref, "@") || len(xref) < 3 {
		return New(ErrCodeInvalidXRef, "xref must be delimited by '@': %q", xref)
	}

	body := xref[1 : len(xref)-1]
	for _, r := range body {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidXRef, "xref contains invalid characters: %q", xref)
		}
	}

	return nil
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
