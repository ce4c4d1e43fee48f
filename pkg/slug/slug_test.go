package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "The Forest Hiker", "the-forest-hiker"},
		{"already lowercase", "sea explorer", "sea-explorer"},
		{"punctuation collapsed", "The  Snow -- Adventurer!", "the-snow-adventurer"},
		{"leading and trailing junk", "  The Park Camper  ", "the-park-camper"},
		{"digits kept", "Tour 2024 Special", "tour-2024-special"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}
