package page

import (
	"fmt"
	"strings"

	"web-summarizer/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultMaxChars = 5000

	nonContentSelector = "script, style, nav, header, footer"
	contentSelector    = "p"
)

// Extractor turns HTML into flat paragraph text. Only <p> elements count as
// content; pages without them yield an empty string.
type Extractor struct {
	maxChars int
}

func NewExtractor(maxChars int) *Extractor {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	return &Extractor{maxChars: maxChars}
}

func (e *Extractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: create document from reader: %w", domain.ErrExtraction, err)
	}

	doc.Find(nonContentSelector).Remove()

	var paragraphs []string
	doc.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		paragraphs = append(paragraphs, text)
	})

	return truncateRunes(strings.Join(paragraphs, " "), e.maxChars), nil
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}

	return s
}
