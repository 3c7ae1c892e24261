package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Document
	}{
		{"empty", "", Document{}},
		{"single terminated", "a\n", Document{"a\n"}},
		{"no trailing newline", "a\nb", Document{"a\n", "b"}},
		{"crlf kept", "a\r\nb\r\n", Document{"a\r\n", "b\r\n"}},
		{"blank lines", "\n\nx\n", Document{"\n", "\n", "x\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Split([]byte(tt.input))
			assert.Equal(t, tt.want, doc)
			assert.Equal(t, tt.input, doc.String(), "joining must reproduce the input")
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "a", Text("a\n"))
	assert.Equal(t, "a", Text("a\r\n"))
	assert.Equal(t, "a", Text("a"))
	assert.Equal(t, "", Text("\n"))
}

func TestDocumentEdits(t *testing.T) {
	sep := Separator
	doc := Document{"a" + sep, "b" + sep}

	t.Run("replace keeps length", func(t *testing.T) {
		out := doc.Replace(1, "B")
		assert.Equal(t, Document{"a" + sep, "B" + sep}, out)
		assert.Equal(t, "b"+sep, doc[1], "original must not be mutated")
	})

	t.Run("insert at top", func(t *testing.T) {
		out := doc.Insert(0, "top")
		assert.Equal(t, Document{"top" + sep, "a" + sep, "b" + sep}, out)
	})

	t.Run("insert in middle", func(t *testing.T) {
		out := doc.Insert(1, "mid")
		assert.Equal(t, Document{"a" + sep, "mid" + sep, "b" + sep}, out)
		assert.Len(t, doc, 2)
	})

	t.Run("append", func(t *testing.T) {
		out := doc.Append("end")
		assert.Equal(t, Document{"a" + sep, "b" + sep, "end" + sep}, out)
	})

	t.Run("append after unterminated last line", func(t *testing.T) {
		out := Document{"a" + sep, "b"}.Append("c")
		assert.Equal(t, Document{"a" + sep, "b" + sep, "c" + sep}, out)
	})

	t.Run("append to empty", func(t *testing.T) {
		out := Document{}.Append("only")
		assert.Equal(t, Document{"only" + sep}, out)
	})
}
