package lines

import (
	"runtime"
	"strings"
)

// Separator is the native line terminator used for lines this package writes.
var Separator = nativeSeparator()

func nativeSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Document is the ordered content of a file, one element per line, each
// element still carrying its terminator. Only the last line may lack one.
type Document []string

// Split breaks raw file content into a Document, keeping terminators.
func Split(data []byte) Document {
	if len(data) == 0 {
		return Document{}
	}

	content := string(data)
	doc := make(Document, 0, strings.Count(content, "\n")+1)
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			doc = append(doc, content)
			break
		}
		doc = append(doc, content[:i+1])
		content = content[i+1:]
	}
	return doc
}

// Bytes joins the Document back into file content.
func (d Document) Bytes() []byte {
	return []byte(d.String())
}

func (d Document) String() string {
	return strings.Join(d, "")
}

// Text returns a line without its terminator.
func Text(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Terminated reports whether a line ends with a line terminator.
func Terminated(line string) bool {
	return strings.HasSuffix(line, "\n")
}

// Replace returns a copy of the Document with line i set to text plus the
// native separator.
func (d Document) Replace(i int, text string) Document {
	out := make(Document, len(d))
	copy(out, d)
	out[i] = text + Separator
	return out
}

// Insert returns a copy of the Document with text inserted at position i.
// When the line just before i has no terminator (a file whose last line
// lacks a newline) it gets one, otherwise the new line would be glued onto it.
func (d Document) Insert(i int, text string) Document {
	out := make(Document, 0, len(d)+1)
	out = append(out, d[:i]...)
	if i > 0 && !Terminated(out[i-1]) {
		out[i-1] += Separator
	}
	out = append(out, text+Separator)
	out = append(out, d[i:]...)
	return out
}

// Append returns a copy of the Document with text added as the last line.
func (d Document) Append(text string) Document {
	return d.Insert(len(d), text)
}
