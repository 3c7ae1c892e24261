package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	t.Run("replacement", func(t *testing.T) {
		got := Lines("a\nb\nc\n", "a\nB\nc\n")
		assert.Contains(t, got, Line{Kind: Equal, Text: "a"})
		assert.Contains(t, got, Line{Kind: Delete, Text: "b"})
		assert.Contains(t, got, Line{Kind: Insert, Text: "B"})
		assert.Contains(t, got, Line{Kind: Equal, Text: "c"})

		added, removed := Stats(got)
		assert.Equal(t, 1, added)
		assert.Equal(t, 1, removed)
	})

	t.Run("insertion into empty file", func(t *testing.T) {
		got := Lines("", "x=1\n")
		assert.Equal(t, []Line{{Kind: Insert, Text: "x=1"}}, got)
	})

	t.Run("identical", func(t *testing.T) {
		got := Lines("a\nb\n", "a\nb\n")
		added, removed := Stats(got)
		assert.Zero(t, added)
		assert.Zero(t, removed)
		assert.Len(t, got, 2)
	})
}

func TestContext(t *testing.T) {
	in := []Line{
		{Equal, "1"}, {Equal, "2"}, {Equal, "3"},
		{Insert, "new"},
		{Equal, "4"}, {Equal, "5"}, {Equal, "6"},
	}

	got := Context(in, 1)
	assert.Equal(t, []Line{
		{Kind: Skip},
		{Equal, "3"},
		{Insert, "new"},
		{Equal, "4"},
		{Kind: Skip},
	}, got)

	assert.Equal(t, in, Context(in, 10))
	assert.Equal(t, []Line{{Kind: Skip}}, Context([]Line{{Equal, "a"}}, 0))
}
