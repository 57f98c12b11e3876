package page

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"web-summarizer/internal/domain"

	"mvdan.cc/xurls/v2"
)

// ValidateURL accepts raw only when it is an absolute http(s) URL with a host
// and no whitespace. The input is not normalized.
func ValidateURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, domain.ErrMissingURL
	}

	if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("%w (url = %s)", domain.ErrInvalidURL, raw)
	}

	httpURLRe, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		return nil, fmt.Errorf("create regexp: %w", err)
	}

	// xurls trims trailing punctuation, so the match only has to start the
	// string; url.Parse decides about the rest.
	loc := httpURLRe.FindStringIndex(raw)
	if loc == nil || loc[0] != 0 {
		return nil, fmt.Errorf("%w (url = %s)", domain.ErrInvalidURL, raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w (scheme = %s)", domain.ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("%w (url = %s)", domain.ErrInvalidURL, raw)
	}

	return u, nil
}
