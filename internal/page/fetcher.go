package page

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"web-summarizer/internal/domain"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9"
)

// Fetcher downloads a single page. It never retries.
type Fetcher struct {
	client *http.Client
	log    *slog.Logger
}

func NewFetcher(timeout time.Duration, log *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Fetch returns the body of pageURL verbatim if the server answers with a 2xx
// status. Every other outcome is wrapped in domain.ErrFetch.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", domain.ErrFetch, err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguageHeader)

	resp, err := f.client.Do(req) //nolint:gosec // URL is validated by the caller
	if err != nil {
		return "", fmt.Errorf("%w: do request: %w", domain.ErrFetch, err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			f.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"component", "fetcher",
				"url", pageURL)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: unexpected status: %s", domain.ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", domain.ErrFetch, err)
	}

	f.log.DebugContext(ctx, "Page is fetched",
		"component", "fetcher",
		"url", pageURL,
		"status", resp.StatusCode,
		"bodyBytes", len(body))

	return string(body), nil
}
