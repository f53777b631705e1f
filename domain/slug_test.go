package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Budget Session Begins", "budget-session-begins"},
		{"punctuation dropped", "PM's Speech: Key Points!", "pms-speech-key-points"},
		{"already lowercase", "monsoon update", "monsoon-update"},
		{"hindi-only title yields empty slug", "मौसम अपडेट", "-"},
		{"empty", "", ""},
		{"numbers kept", "Top 10 Stories of 2024", "top-10-stories-of-2024"},
		{"existing hyphens kept", "north-east report", "north-east-report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Business", FormatTitle("business"))
	assert.Equal(t, "Uttar Pradesh News", FormatTitle("uttar pradesh news"))
	assert.Equal(t, "", FormatTitle(""))
}
