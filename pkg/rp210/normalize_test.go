package rp210

import "testing"

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple two words", "Random Access", "random_access"},
		{"uppercase run splits after first letter", "MPEG Version", "m_peg_version"},
		{"camel case boundary", "RandomAccess", "random_access"},
		{"leading and trailing space", "  Track Name  ", "track_name"},
		{"multiple inner spaces collapse", "Track   Name", "track_name"},
		{"single word", "Duration", "duration"},
		{"digit before capital", "ISO7Bit", "i_so7_bit"},
		{"already normalized", "random_access", "random_access"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFieldName(tt.input); got != tt.expected {
				t.Errorf("NormalizeFieldName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeFieldNameIdempotent(t *testing.T) {
	inputs := []string{"Random Access", "MPEG Version", "Last Modified Date", "KAG Size", "Package UID"}
	for _, input := range inputs {
		once := NormalizeFieldName(input)
		twice := NormalizeFieldName(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
