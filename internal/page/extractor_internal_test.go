package page

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractorCollectsParagraphs(t *testing.T) {
	html := `<html>
<head><style>p { color: red }</style><script>var p = "<p>script</p>";</script></head>
<body>
	<header><p>Site header</p></header>
	<nav><p>Menu</p></nav>
	<p>  First paragraph.  </p>
	<p>   </p>
	<div><p>Second <b>paragraph</b>.</p></div>
	<p>Third paragraph.</p>
	<footer><p>Copyright</p></footer>
</body>
</html>`

	got, err := NewExtractor(DefaultMaxChars).Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "First paragraph. Second paragraph. Third paragraph."
	if got != want {
		t.Fatalf("unexpected text: got %q want %q", got, want)
	}
}

func TestExtractorWithoutParagraphsReturnsEmpty(t *testing.T) {
	html := `<html><body><div>Only div content</div><div><span>more</span></div></body></html>`

	got, err := NewExtractor(DefaultMaxChars).Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestExtractorTruncates(t *testing.T) {
	var b strings.Builder
	for range 2000 {
		b.WriteString("<p>Lorem ipsum dolor sit amet.</p>")
	}

	got, err := NewExtractor(DefaultMaxChars).Extract(b.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := utf8.RuneCountInString(got); n != DefaultMaxChars {
		t.Fatalf("expected %d characters, got %d", DefaultMaxChars, n)
	}
}

func TestExtractorTruncatesOnRuneBoundary(t *testing.T) {
	got, err := NewExtractor(3).Extract("<p>привет</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "при" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractorIsIdempotent(t *testing.T) {
	html := `<p>one</p><script>x()</script><p>two</p>`
	e := NewExtractor(DefaultMaxChars)

	first, err := e.Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := e.Extract(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical output, got %q vs %q", first, second)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("short", 10); got != "short" {
		t.Fatalf("unexpected text: %q", got)
	}

	if got := truncateRunes("exactly", 7); got != "exactly" {
		t.Fatalf("unexpected text: %q", got)
	}

	if got := truncateRunes("abcdef", 4); got != "abcd" {
		t.Fatalf("unexpected text: %q", got)
	}
}
