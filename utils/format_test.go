package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFormatAuthors(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"list", []string{"A", "B"}, "A, B"},
		{"single string", "Solo", "Solo"},
		{"missing", nil, UnknownAuthors},
		{"empty string", "", UnknownAuthors},
		{"nil string pointer", (*string)(nil), UnknownAuthors},
		{"string pointer", strPtr("Lee, Kim"), "Lee, Kim"},
		{"decoded json list", []interface{}{"A", "B", "C"}, "A, B, C"},
		{"empty list", []string{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatAuthors(tc.in))
		})
	}
}

func TestFormatPublicationSource(t *testing.T) {
	assert.Equal(t, "Nature", FormatPublicationSource(strPtr("Nature"), strPtr("Springer")))
	assert.Equal(t, "Springer", FormatPublicationSource(nil, strPtr("Springer")))
	assert.Equal(t, "Springer", FormatPublicationSource(strPtr("  "), strPtr("Springer")))
	assert.Equal(t, UnknownPublisher, FormatPublicationSource(nil, nil))
}

func TestProfileCompletion(t *testing.T) {
	assert.Equal(t, 0, ProfileCompletion())
	assert.Equal(t, 50, ProfileCompletion(strPtr("x"), nil))
	assert.Equal(t, 33, ProfileCompletion(strPtr("x"), strPtr(" "), nil))
	assert.Equal(t, 100, ProfileCompletion(strPtr("a"), strPtr("b")))
}
