package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTML(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading carries its anchor",
			input: "## Setup",
			want:  "<h2 id=\"heading-0\">Setup</h2>\n",
		},
		{
			name:  "paragraph with spans",
			input: "a **b** and `c`",
			want:  "<p>a <strong>b</strong> and <code>c</code></p>\n",
		},
		{
			name:  "soft line break",
			input: "one\ntwo",
			want:  "<p>one<br>\ntwo</p>\n",
		},
		{
			name:  "link opens in a new tab",
			input: "[home](https://example.com)",
			want:  "<p><a href=\"https://example.com\" target=\"_blank\" rel=\"noopener noreferrer\">home</a></p>\n",
		},
		{
			name:  "blockquote",
			input: "> said so",
			want:  "<blockquote><p>said so</p></blockquote>\n",
		},
		{
			name:  "code block keeps language tag",
			input: "```go\na < b\n```",
			want:  "<pre><code class=\"language-go\">a &lt; b</code></pre>\n",
		},
		{
			name:  "text is escaped",
			input: "<script>alert(1)</script>",
			want:  "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>\n",
		},
		{
			name:  "strikethrough",
			input: "~~old~~ new",
			want:  "<p><del>old</del> new</p>\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderHTML(Parse(tc.input)))
		})
	}
}

// Quotes in attribute positions must be HTML-escaped; a raw quote would
// terminate the attribute and let the rest of the value parse as new
// attributes.
func TestRenderHTMLEscapesAttributes(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "quote in link url",
			input: `[click](u" onmouseover=location=name x=")`,
			want:  "<p><a href=\"u&#34; onmouseover=location=name x=&#34;\" target=\"_blank\" rel=\"noopener noreferrer\">click</a></p>\n",
		},
		{
			name:  "quote in fence language",
			input: "```go\" onmouseover=alert(1) y=\"\ncode\n```",
			want:  "<pre><code class=\"language-go&#34; onmouseover=alert(1) y=&#34;\">code</code></pre>\n",
		},
		{
			name:  "angle brackets in link url",
			input: "[x](<bad>)",
			want:  "<p><a href=\"&lt;bad&gt;\" target=\"_blank\" rel=\"noopener noreferrer\">x</a></p>\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderHTML(Parse(tc.input)))
		})
	}
}
