package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ContentFormat selects how article bodies are turned into markup.
type ContentFormat string

const (
	// FormatParagraphs splits content on newlines into escaped paragraphs.
	FormatParagraphs ContentFormat = "paragraphs"
	// FormatMarkdown renders content as GitHub-flavoured markdown with
	// highlighted code blocks.
	FormatMarkdown ContentFormat = "markdown"
)

// Valid reports whether f is a recognised format. The empty string is
// treated as FormatParagraphs.
func (f ContentFormat) Valid() bool {
	return f == "" || f == FormatParagraphs || f == FormatMarkdown
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Bodies come from the site's own bundled JSON.
			html.WithUnsafe(),
		),
	)
}

// renderMarkdown converts a markdown body to HTML.
func renderMarkdown(md goldmark.Markdown, content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
