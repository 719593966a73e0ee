package chat

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseParagraphs(t *testing.T) {
	blocks := Parse("First paragraph.\n\nSecond paragraph.")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	p, ok := blocks[0].(Paragraph)
	if !ok || p.Text != "First paragraph." {
		t.Errorf("unexpected first block: %#v", blocks[0])
	}
}

func TestParseCodeFence(t *testing.T) {
	blocks := Parse("Intro:\n\n```javascript\nconsole.log('hi');\n```\n\nOutro.")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	code, ok := blocks[1].(CodeBlock)
	if !ok {
		t.Fatalf("expected code block, got %#v", blocks[1])
	}
	if code.Lang != "javascript" {
		t.Errorf("expected lang javascript, got %q", code.Lang)
	}
	if !strings.Contains(code.Code, "console.log('hi');") {
		t.Errorf("unexpected code %q", code.Code)
	}
}

func TestParseCodeFenceDefaultLang(t *testing.T) {
	blocks := Parse("```\nplain\n```")
	code, ok := blocks[0].(CodeBlock)
	if !ok || code.Lang != "text" {
		t.Fatalf("expected default lang text, got %#v", blocks[0])
	}
}

func TestParseList(t *testing.T) {
	blocks := Parse("- one\n- two\n- three")
	list, ok := blocks[0].(List)
	if !ok {
		t.Fatalf("expected list, got %#v", blocks[0])
	}
	if !reflect.DeepEqual(list.Items, []string{"one", "two", "three"}) {
		t.Errorf("unexpected items %v", list.Items)
	}
}

func TestRenderHTMLEscapesScript(t *testing.T) {
	payload := "<script>alert(1)</script>"

	for _, text := range []string{
		payload,
		"- " + payload,
		"```\n" + payload + "\n```",
	} {
		out := RenderHTML(Parse(text))
		if strings.Contains(out, "<script>") {
			t.Errorf("unescaped script tag in %q", out)
		}
		if !strings.Contains(out, "&lt;script&gt;") {
			t.Errorf("expected escaped payload in %q", out)
		}
	}
}

func TestRenderHTMLStructure(t *testing.T) {
	out := RenderHTML(Parse("Hello.\n\n- a\n- b\n\n```css\nbody {}\n```"))

	for _, want := range []string{"<p>Hello.</p>", "<ul><li>a</li><li>b</li></ul>", `<span class="code-filename">css</span>`, "<pre><code>body {}\n</code></pre>"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(Parse("Hello.\n\n- a\n- b"))
	if !strings.Contains(out, "Hello.") || !strings.Contains(out, "  - a") {
		t.Errorf("unexpected text rendering %q", out)
	}
}
