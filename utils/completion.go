package utils

import "strings"

// ProfileCompletion returns the percentage (0-100) of non-blank fields.
func ProfileCompletion(fields ...*string) int {
	if len(fields) == 0 {
		return 0
	}
	filled := 0
	for _, f := range fields {
		if f != nil && strings.TrimSpace(*f) != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}
