package errors

import (
	"strings"
	"unicode"
)

// ValidateTourID validates a tour identifier used in content files, progress
// records, and store keys.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - No path traversal sequences (IDs become file names in the file store)
//   - Maximum length of 128 characters
func ValidateTourID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTourID, "tour id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidTourID, "tour id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTourID, "tour id contains control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidTourID, "tour id contains whitespace")
		}
	}

	// IDs are used as file names by the file-backed progress store.
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidTourID, "tour id contains invalid sequence: %q", pattern)
		}
	}

	return nil
}

// ValidateTargetID validates a target identifier declared in a tour content
// file. Targets are looked up in the host's registry, so the same
// conservative rules as tour IDs apply minus the file-name restrictions.
func ValidateTargetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidStep, "step target cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidStep, "step target too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidStep, "step target contains control characters")
		}
	}

	return nil
}
