package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// Renderer turns the raw text of a topic file into what the help command
// prints. format is the file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim. It is used when no renderer is
// configured and by tests that compare raw text.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics for the terminal with glamour.
type GlamourRenderer struct {
	// Style is a glamour standard style name ("dark", "light", "notty") or
	// "auto" to follow the terminal.
	Style string
	// Width wraps lines at this column; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer creates a markdown renderer. NO_COLOR selects the
// plain "notty" style.
func NewGlamourRenderer() *GlamourRenderer {
	style := "auto"
	if os.Getenv("NO_COLOR") != "" {
		style = "notty"
	}
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to terminal output. Other formats and render
// failures fall back to the raw content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStandardStyle(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
