package markdown

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTML renders a parsed Document as an HTML fragment. All text runs
// through html escaping, so the output is safe to inject into a page even
// when the source came from an untrusted author.
func RenderHTML(doc Document) string {
	var b strings.Builder

	for _, block := range doc.Blocks {
		switch block.Kind {
		case BlockHeading:
			fmt.Fprintf(&b, "<h%d id=%q>", block.Level, block.ID)
			writeInlines(&b, block.Inlines)
			fmt.Fprintf(&b, "</h%d>\n", block.Level)
		case BlockQuote:
			b.WriteString("<blockquote><p>")
			writeInlines(&b, block.Inlines)
			b.WriteString("</p></blockquote>\n")
		case BlockCode:
			if block.Lang != "" {
				fmt.Fprintf(&b, `<pre><code class="language-%s">`, html.EscapeString(block.Lang))
			} else {
				b.WriteString("<pre><code>")
			}
			b.WriteString(html.EscapeString(block.Code))
			b.WriteString("</code></pre>\n")
		case BlockParagraph:
			b.WriteString("<p>")
			writeInlines(&b, block.Inlines)
			b.WriteString("</p>\n")
		}
	}

	return b.String()
}

func writeInlines(b *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch in.Kind {
		case InlineBold:
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(in.Text))
			b.WriteString("</strong>")
		case InlineItalic:
			b.WriteString("<em>")
			b.WriteString(html.EscapeString(in.Text))
			b.WriteString("</em>")
		case InlineStrike:
			b.WriteString("<del>")
			b.WriteString(html.EscapeString(in.Text))
			b.WriteString("</del>")
		case InlineCode:
			b.WriteString("<code>")
			b.WriteString(html.EscapeString(in.Text))
			b.WriteString("</code>")
		case InlineLink:
			fmt.Fprintf(b, `<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
				html.EscapeString(in.URL), html.EscapeString(in.Text))
		case InlineBreak:
			b.WriteString("<br>\n")
		default:
			b.WriteString(html.EscapeString(in.Text))
		}
	}
}
