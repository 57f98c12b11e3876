package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrFetch         = errors.New("error fetching webpage")
	ErrExtraction    = errors.New("error extracting text")
	ErrSummarization = errors.New("summarization error")
)

var (
	ErrMissingURL        = fmt.Errorf("%w: URL is required", ErrInvalidInput)
	ErrInvalidURL        = fmt.Errorf("%w: invalid URL", ErrInvalidInput)
	ErrEmptyText         = fmt.Errorf("%w: no text to summarize", ErrInvalidInput)
	ErrUnsupportedMethod = fmt.Errorf("%w: invalid summarization method", ErrInvalidInput)
)

// SummaryRequest is the request-scoped input of the pipeline.
type SummaryRequest struct {
	URL    string
	Method string
}

// SummaryResult is the markdown summary produced for a page.
type SummaryResult struct {
	Summary string
}
