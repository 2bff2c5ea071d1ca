package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"true literal", "true", true},
		{"false literal", "false", false},
		{"decimal integer", "25", int64(25)},
		{"negative integer", "-1", int64(-1)},
		{"beyond int64 range", "18446744073709551615", uint64(18446744073709551615)},
		{"plain string", "30000/1001", "30000/1001"},
		{"hex identifier", "060e2b34010101020407010100000000", "060e2b34010101020407010100000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseValue(tt.input))
		})
	}
}
