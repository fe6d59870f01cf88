package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDimension(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		max  float64
		want string
	}{
		{name: "plain integer", raw: "3", max: 50, want: "3"},
		{name: "decimal with dot", raw: "2.5", max: 50, want: "2.5"},
		{name: "decimal with comma", raw: "2,5", max: 50, want: "2.5"},
		{name: "surrounding whitespace", raw: "  4.2  ", max: 50, want: "4.2"},
		{name: "clamped to max", raw: "120", max: 50, want: "50"},
		{name: "exactly max", raw: "50", max: 50, want: "50"},
		{name: "just above max", raw: "50.1", max: 50, want: "50"},
		{name: "empty input", raw: "", max: 50, want: ""},
		{name: "whitespace only", raw: "   ", max: 50, want: ""},
		{name: "letters", raw: "abc", max: 50, want: ""},
		{name: "mixed digits and letters", raw: "3m", max: 50, want: ""},
		{name: "two separators", raw: "1.2.3", max: 50, want: ""},
		{name: "comma and dot", raw: "1,2.3", max: 50, want: ""},
		{name: "negative sign rejected", raw: "-3", max: 50, want: ""},
		{name: "lone dot", raw: ".", max: 50, want: ""},
		{name: "leading dot parses", raw: ".5", max: 50, want: ".5"},
		{name: "zero allowed", raw: "0", max: 50, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDimension(tt.raw, tt.max))
		})
	}
}
