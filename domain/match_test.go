package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmartMatch(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		stored  string
		matches bool
	}{
		{"exact match", "Sports", "Sports", true},
		{"case insensitive", "sports", "SPORTS", true},
		{"stored value with surrounding whitespace", "Sports", "  Sports  ", true},
		{"hindi variant", "खेल", "खेल", true},
		{"superstring does not match", "वित्त", "वित्त विभाग", false},
		{"substring does not match", "Sport", "Sports", false},
		{"internal spacing preserved", "Uttar Pradesh", "Uttar Pradesh", true},
		{"internal spacing not collapsed", "Uttar Pradesh", "Uttar  Pradesh", false},
		{"metacharacters are literal", "C++", "C++", true},
		{"pattern-looking filter stays literal", `C\d\d`, "C12", false},
		{"dot is literal", "U.P.", "U.P.", true},
		{"dot does not match any char", "U.P.", "UxPx", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := SmartMatch(tt.filter)
			assert.Equal(t, tt.matches, re.MatchString(tt.stored))
		})
	}
}

func TestSmartMatch_EmptyNameMatchesAnything(t *testing.T) {
	re := SmartMatch("")
	assert.True(t, re.MatchString(""))
	assert.True(t, re.MatchString("anything at all"))
}

func TestSmartMatchPattern_TrimsInputOnce(t *testing.T) {
	// Outer whitespace on the filter input is trimmed before embedding.
	assert.Equal(t, SmartMatchPattern("Sports"), SmartMatchPattern("  Sports  "))
}
