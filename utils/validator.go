// utils/validator.go - Input validation
package utils

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid id")

// SanitizeInput trims spaces and strips null bytes.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ReplaceAll(input, "\x00", "")
}

// ParseID parses a path or query identifier. The nil UUID is rejected.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(SanitizeInput(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
