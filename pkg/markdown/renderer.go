package markdown

import (
	"bytes"
	stdhtml "html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts summary markdown to an HTML fragment. Conversion is pure
// and deterministic; raw HTML in the source is never passed through, so
// embedded scripts stay inert.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render returns the HTML fragment for the given markdown. Malformed input
// degrades to escaped literal text rather than failing.
func (r *Renderer) Render(source string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		// Convert cannot fail on an in-memory buffer, but keep the
		// degrade-to-text contract anyway.
		return escapeFragment(source)
	}
	return buf.String()
}

func escapeFragment(source string) string {
	return "<p>" + stdhtml.EscapeString(source) + "</p>\n"
}
