package chat

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Block is a structural piece of a rendered message: a paragraph, a
// fenced code block, or a bullet list.
type Block interface {
	isBlock()
}

// Paragraph is a plain text block.
type Paragraph struct {
	Text string
}

// CodeBlock is a fenced code block with a language label.
type CodeBlock struct {
	Lang string
	Code string
}

// List is an unordered list.
type List struct {
	Items []string
}

func (Paragraph) isBlock() {}
func (CodeBlock) isBlock() {}
func (List) isBlock()      {}

var fencePattern = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

// Parse splits a message into blocks on blank lines. A paragraph opening
// with a ``` fence becomes a code block (default language "text"); a
// paragraph whose lines start with "- " becomes a list; everything else
// is a plain paragraph. Malformed fences are dropped.
func Parse(text string) []Block {
	var blocks []Block

	for _, para := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(para)
		switch {
		case trimmed == "":
			continue

		case strings.HasPrefix(trimmed, "```"):
			m := fencePattern.FindStringSubmatch(para)
			if m == nil {
				continue
			}
			lang := m[1]
			if lang == "" {
				lang = "text"
			}
			blocks = append(blocks, CodeBlock{Lang: lang, Code: m[2]})

		case strings.HasPrefix(trimmed, "- "):
			var items []string
			for _, line := range strings.Split(para, "\n") {
				l := strings.TrimSpace(line)
				if strings.HasPrefix(l, "- ") {
					items = append(items, l[2:])
				}
			}
			blocks = append(blocks, List{Items: items})

		default:
			blocks = append(blocks, Paragraph{Text: para})
		}
	}
	return blocks
}

// RenderHTML renders blocks as HTML. All raw text is escaped before
// interpolation; structural markup is the only markup emitted.
func RenderHTML(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch v := blk.(type) {
		case CodeBlock:
			fmt.Fprintf(&b,
				`<div class="code-block"><div class="code-header"><span class="code-filename">%s</span></div><pre><code>%s</code></pre></div>`,
				html.EscapeString(v.Lang), html.EscapeString(v.Code))
		case List:
			b.WriteString("<ul>")
			for _, item := range v.Items {
				fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(item))
			}
			b.WriteString("</ul>")
		case Paragraph:
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(v.Text))
		}
	}
	return b.String()
}

// RenderText renders blocks for terminal output.
func RenderText(blocks []Block) string {
	var parts []string
	for _, blk := range blocks {
		switch v := blk.(type) {
		case CodeBlock:
			parts = append(parts, fmt.Sprintf("[%s]\n%s", v.Lang, strings.TrimRight(v.Code, "\n")))
		case List:
			var lines []string
			for _, item := range v.Items {
				lines = append(lines, "  - "+item)
			}
			parts = append(parts, strings.Join(lines, "\n"))
		case Paragraph:
			parts = append(parts, v.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
