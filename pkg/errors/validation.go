package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds widget identifiers read from documents.
const maxIDLength = 128

// ValidateWidgetID checks an identifier read from a layout document.
// IDs end up in DOT output and CLI flags, so quotes, whitespace and control
// characters are rejected.
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocument, "widget id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidDocument, "widget id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidDocument, "widget id %q contains whitespace or control characters", id)
		}
	}
	if strings.ContainsAny(id, "\"\\,") {
		return New(ErrCodeInvalidDocument, "widget id %q contains invalid characters", id)
	}
	return nil
}

// ValidateSize rejects negative dimensions.
func ValidateSize(id string, width, height int) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidDocument, "widget %s has negative size %dx%d", id, width, height)
	}
	return nil
}
