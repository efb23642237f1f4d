package utils

import (
	"fmt"
	"strings"
)

const (
	UnknownAuthors   = "Unknown Authors"
	UnknownPublisher = "Unknown Publisher"
)

// FormatAuthors renders an author list for display. Lists are joined with ", ",
// a single string is returned as is, and a missing value gives "Unknown Authors".
func FormatAuthors(authors interface{}) string {
	switch v := authors.(type) {
	case nil:
		return UnknownAuthors
	case string:
		if v == "" {
			return UnknownAuthors
		}
		return v
	case *string:
		if v == nil {
			return UnknownAuthors
		}
		return FormatAuthors(*v)
	case []string:
		if v == nil {
			return UnknownAuthors
		}
		return strings.Join(v, ", ")
	case []interface{}:
		if v == nil {
			return UnknownAuthors
		}
		parts := make([]string, 0, len(v))
		for _, a := range v {
			parts = append(parts, fmt.Sprint(a))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// FormatPublicationSource prefers the journal, then the publisher.
func FormatPublicationSource(journal, publisher *string) string {
	if s := trimmed(journal); s != "" {
		return s
	}
	if s := trimmed(publisher); s != "" {
		return s
	}
	return UnknownPublisher
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
