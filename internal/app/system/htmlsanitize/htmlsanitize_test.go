package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainTextUnchanged(t *testing.T) {
	if got := htmlsanitize.Sanitize("Hello, World!"); got != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_PreservesSafeMarkup(t *testing.T) {
	for _, input := range []string{
		"<p><strong>Bold</strong> and <em>italic</em></p>",
		"<ul><li>Item 1</li><li>Item 2</li></ul>",
		"<ol><li>First</li><li>Second</li></ol>",
		"<blockquote>A quote</blockquote>",
		"<h1>Heading 1</h1><h2>Heading 2</h2>",
		"<pre><code>function test() {}</code></pre>",
		"<u>underline</u> <s>strike</s> <sub>sub</sub> <sup>sup</sup> <mark>mark</mark>",
		"<table><thead><tr><th>Header</th></tr></thead><tbody><tr><td>Cell</td></tr></tbody></table>",
	} {
		if got := htmlsanitize.Sanitize(input); got != input {
			t.Errorf("Sanitize(%q): got %q, want unchanged", input, got)
		}
	}
}

func TestSanitize_PreservesTableAttributes(t *testing.T) {
	input := `<table class="roster"><tr><td colspan="2" rowspan="2">Cell</td></tr></table>`
	got := htmlsanitize.Sanitize(input)
	for _, want := range []string{`class="roster"`, `colspan="2"`, `rowspan="2"`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %s preserved, got %q", want, got)
		}
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlersAndIframes(t *testing.T) {
	got := htmlsanitize.Sanitize(`<button onclick="alert('xss')">Click</button><iframe src="https://evil.com"></iframe>`)
	if strings.Contains(got, "onclick") || strings.Contains(got, "iframe") {
		t.Errorf("expected dangerous markup removed, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	if got := htmlsanitize.Sanitize(input); got == input {
		t.Error("expected javascript: href to be removed")
	}
}

func TestSanitize_KeepsSafeLinks(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://example.com">Link</a>`)
	if !strings.Contains(got, "https://example.com") {
		t.Errorf("expected safe link preserved, got %q", got)
	}
}

func TestSanitizeToHTML(t *testing.T) {
	got := htmlsanitize.SanitizeToHTML("<p>Hello</p><script>x()</script>")
	if got != template.HTML("<p>Hello</p>") {
		t.Errorf("got %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"Hello, World!", true},
		{"5 < 10", true},
		{"5 > 3", true},
		{"<p>Hello</p>", false},
	}
	for _, c := range cases {
		if got := htmlsanitize.IsPlainText(c.in); got != c.want {
			t.Errorf("IsPlainText(%q): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	if got := htmlsanitize.PlainTextToHTML(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := htmlsanitize.PlainTextToHTML("Line 1\nLine 2"); got != "<p>Line 1<br>Line 2</p>" {
		t.Errorf("got %q", got)
	}
	if got := htmlsanitize.PlainTextToHTML("A & B"); got != "<p>A &amp; B</p>" {
		t.Errorf("got %q", got)
	}
	got := htmlsanitize.PlainTextToHTML("<script>alert('xss')</script>")
	if strings.Contains(got, "<script>") {
		t.Error("expected HTML escaped")
	}
}

func TestPrepareForDisplay(t *testing.T) {
	if got := htmlsanitize.PrepareForDisplay(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := htmlsanitize.PrepareForDisplay("plain note"); got != template.HTML("<p>plain note</p>") {
		t.Errorf("got %q", got)
	}
	if got := htmlsanitize.PrepareForDisplay("<p>rich</p><script>x()</script>"); got != template.HTML("<p>rich</p>") {
		t.Errorf("got %q", got)
	}
}
