package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYesNo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "yes", YesNo(true))
	assert.Equal(t, "no", YesNo(false))
}

func TestPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"short ascii", "A", 3, "A  "},
		{"symbol counts as one", "A♠", 3, "A♠ "},
		{"exact", "10♠", 3, "10♠"},
		{"longer", "Joker★", 3, "Joker★"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Pad(tt.input, tt.width))
		})
	}
}
