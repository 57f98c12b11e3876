// Package pipeline runs a single summary request through validation, fetching,
// extraction and summarization.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"web-summarizer/internal/domain"
	"web-summarizer/internal/page"
	"web-summarizer/internal/summarizer"
)

// State is a step of a summary request.
type State string

const (
	StateValidating  State = "validating"
	StateFetching    State = "fetching"
	StateExtracting  State = "extracting"
	StateSummarizing State = "summarizing"
)

// Fetcher downloads the raw HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// Extractor turns raw HTML into flat text.
type Extractor interface {
	Extract(html string) (string, error)
}

// Error records the state a request failed in.
type Error struct {
	State State
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pipeline is stateless across requests and safe for concurrent use.
type Pipeline struct {
	fetcher     Fetcher
	extractor   Extractor
	summarizers map[string]summarizer.Summarizer
	log         *slog.Logger
}

func New(
	fetcher Fetcher,
	extractor Extractor,
	summarizers map[string]summarizer.Summarizer,
	log *slog.Logger,
) *Pipeline {
	return &Pipeline{
		fetcher:     fetcher,
		extractor:   extractor,
		summarizers: summarizers,
		log:         log,
	}
}

// Run processes req and stops at the first failing state. Failures are
// returned as *Error wrapping one of the domain sentinel errors.
func (p *Pipeline) Run(
	ctx context.Context,
	requestID string,
	req domain.SummaryRequest,
) (domain.SummaryResult, error) {
	start := time.Now()
	log := p.log.With("requestID", requestID, "url", req.URL)

	log.DebugContext(ctx, "Request state is entered",
		"state", StateValidating)

	if _, err := page.ValidateURL(req.URL); err != nil {
		return domain.SummaryResult{}, p.fail(ctx, log, StateValidating, err)
	}

	method := req.Method
	if method == "" {
		method = summarizer.MethodOllama
	}

	s, ok := p.summarizers[method]
	if !ok || s == nil {
		return domain.SummaryResult{}, p.fail(ctx, log, StateValidating,
			fmt.Errorf("%w (method = %s)", domain.ErrUnsupportedMethod, method))
	}

	log.DebugContext(ctx, "Request state is entered",
		"state", StateFetching)

	html, err := p.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return domain.SummaryResult{}, p.fail(ctx, log, StateFetching, err)
	}

	log.DebugContext(ctx, "Request state is entered",
		"state", StateExtracting,
		"htmlBytes", len(html))

	text, err := p.extractor.Extract(html)
	if err != nil {
		return domain.SummaryResult{}, p.fail(ctx, log, StateExtracting, err)
	}

	log.DebugContext(ctx, "Request state is entered",
		"state", StateSummarizing,
		"method", method,
		"textChars", utf8.RuneCountInString(text))

	summary, err := s.Summarize(ctx, summarizer.Input{Text: text, SourceURL: req.URL})
	if err != nil {
		return domain.SummaryResult{}, p.fail(ctx, log, StateSummarizing, err)
	}

	log.InfoContext(ctx, "Summary is ready",
		"method", method,
		"summaryChars", utf8.RuneCountInString(summary),
		"durationMs", time.Since(start).Milliseconds())

	return domain.SummaryResult{Summary: summary}, nil
}

func (p *Pipeline) fail(
	ctx context.Context,
	log *slog.Logger,
	state State,
	err error,
) error {
	log.ErrorContext(ctx, "Failed to summarize page",
		"error", err,
		"state", state)

	return &Error{State: state, Err: err}
}
