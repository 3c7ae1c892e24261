package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	candidates := []string{"present", "absent"}

	tests := []struct {
		input  string
		want   string
		wantOk bool
	}{
		{"absnet", "absent", true},
		{"presnt", "present", true},
		{"ABSENT", "absent", true},
		{"gone", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Closest(tt.input, candidates)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosest_TieBreaksAlphabetically(t *testing.T) {
	got, ok := Closest("yml", []string{"yaml", "xml"})
	assert.True(t, ok)
	assert.Equal(t, "xml", got)
}

func TestHint(t *testing.T) {
	assert.Equal(t, ` (did you mean "json"?)`, Hint("jsno", []string{"text", "json", "yaml"}))
	assert.Empty(t, Hint("xml", []string{"text", "json"}))
}
