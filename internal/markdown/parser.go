package markdown

import (
	"fmt"
	"strings"
)

// Parse converts a restricted markdown dialect into a Document. It never
// fails: malformed or unterminated markup degrades to literal text, and an
// empty input yields an empty Document. Heading anchor ids restart at
// "heading-0" on every call.
func Parse(content string) Document {
	var doc Document

	if strings.TrimSpace(content) == "" {
		return doc
	}

	headingSeq := 0

	for _, raw := range strings.Split(content, "\n\n") {
		para := strings.TrimSpace(raw)
		if para == "" {
			continue
		}

		if block, ok := parseCodeBlock(para); ok {
			doc.Blocks = append(doc.Blocks, block)
			continue
		}

		if level, text, ok := headingLine(para); ok {
			id := fmt.Sprintf("heading-%d", headingSeq)
			headingSeq++

			doc.Blocks = append(doc.Blocks, Block{
				Kind:    BlockHeading,
				Level:   level,
				ID:      id,
				Inlines: parseInline(text),
			})
			doc.Headings = append(doc.Headings, Heading{ID: id, Title: text, Level: level})
			continue
		}

		if quoted, ok := blockquoteText(para); ok {
			doc.Blocks = append(doc.Blocks, Block{
				Kind:    BlockQuote,
				Inlines: parseLines(quoted),
			})
			continue
		}

		doc.Blocks = append(doc.Blocks, Block{
			Kind:    BlockParagraph,
			Inlines: parseLines(para),
		})
	}

	return doc
}

// parseCodeBlock recognizes a paragraph fenced by ``` on both ends. The
// word after the opening fence is kept as the language tag. A paragraph
// with an unclosed fence, or with text after the closing fence, is not a
// code block; it falls through to plain paragraph handling so every
// character stays visible.
func parseCodeBlock(para string) (Block, bool) {
	if !strings.HasPrefix(para, "```") {
		return Block{}, false
	}

	rest := para[3:]
	nl := strings.Index(rest, "\n")
	if nl < 0 {
		return Block{}, false
	}

	lang := strings.TrimSpace(rest[:nl])
	body := rest[nl+1:]

	end := strings.LastIndex(body, "```")
	if end < 0 || strings.TrimSpace(body[end+3:]) != "" {
		return Block{}, false
	}

	return Block{
		Kind: BlockCode,
		Lang: lang,
		Code: strings.TrimRight(body[:end], "\n"),
	}, true
}

// headingLine matches a paragraph that is entirely one heading. The most
// specific prefix wins: ### before ## before #.
func headingLine(para string) (level int, text string, ok bool) {
	for _, h := range []struct {
		prefix string
		level  int
	}{
		{"### ", 3},
		{"## ", 2},
		{"# ", 1},
	} {
		if strings.HasPrefix(para, h.prefix) {
			return h.level, strings.TrimSpace(para[len(h.prefix):]), true
		}
	}
	return 0, "", false
}

// blockquoteText matches a paragraph whose first line starts with ">" and
// strips the marker from each line.
func blockquoteText(para string) (string, bool) {
	if !strings.HasPrefix(para, ">") {
		return "", false
	}

	lines := strings.Split(para, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, ">")
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n"), true
}

// parseLines inline-parses each line of a paragraph, joining lines with
// soft break nodes.
func parseLines(text string) []Inline {
	var out []Inline

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out = append(out, Inline{Kind: InlineBreak})
		}
		out = append(out, parseInline(strings.TrimSpace(line))...)
	}

	return out
}

// marker describes one inline delimiter the scanner looks for. The slice
// order is the tie-break priority when two markers start at the same
// offset; bold must come before italic so "**" is never read as italics.
type marker struct {
	kind  InlineKind
	open  string
	close string
}

var inlineMarkers = []marker{
	{InlineBold, "**", "**"},
	{InlineStrike, "~~", "~~"},
	{InlineItalic, "_", "_"},
	{InlineCode, "`", "`"},
	{InlineLink, "[", ""},
}

// parseInline scans a single line left to right, emitting plain text and
// typed spans. An opener without a matching closer is emitted literally
// and the scan resumes after it, so no input can fail to parse.
func parseInline(line string) []Inline {
	var (
		out   []Inline
		plain strings.Builder
	)

	flush := func() {
		if plain.Len() > 0 {
			out = append(out, Inline{Kind: InlineText, Text: plain.String()})
			plain.Reset()
		}
	}

	pos := 0
	for pos < len(line) {
		m, start := nextMarker(line, pos)
		if start < 0 {
			plain.WriteString(line[pos:])
			break
		}

		plain.WriteString(line[pos:start])

		node, next, ok := matchSpan(line, start, m)
		if !ok {
			// Unterminated opener: keep the delimiter as literal text.
			plain.WriteString(m.open)
			pos = start + len(m.open)
			continue
		}

		flush()
		out = append(out, node)
		pos = next
	}

	flush()
	return out
}

// nextMarker finds the earliest marker opening at or after pos. Ties on
// the start offset resolve in inlineMarkers order.
func nextMarker(line string, pos int) (marker, int) {
	best := -1
	var bestMarker marker

	for _, m := range inlineMarkers {
		i := strings.Index(line[pos:], m.open)
		if i < 0 {
			continue
		}
		if best < 0 || pos+i < best {
			best = pos + i
			bestMarker = m
		}
	}

	return bestMarker, best
}

// matchSpan tries to close the marker opened at start. It returns the
// parsed node and the scan position after the closer.
func matchSpan(line string, start int, m marker) (Inline, int, bool) {
	if m.kind == InlineLink {
		return matchLink(line, start)
	}

	inner := start + len(m.open)
	end := strings.Index(line[inner:], m.close)
	if end < 0 {
		return Inline{}, 0, false
	}

	return Inline{Kind: m.kind, Text: line[inner : inner+end]}, inner + end + len(m.close), true
}

// matchLink parses [label](url) starting at the "[". Both the "](" joint
// and the final ")" must be present, otherwise the bracket is literal.
func matchLink(line string, start int) (Inline, int, bool) {
	joint := strings.Index(line[start:], "](")
	if joint < 0 {
		return Inline{}, 0, false
	}
	joint += start

	end := strings.Index(line[joint+2:], ")")
	if end < 0 {
		return Inline{}, 0, false
	}
	end += joint + 2

	return Inline{
		Kind: InlineLink,
		Text: line[start+1 : joint],
		URL:  line[joint+2 : end],
	}, end + 1, true
}
