package summarizer

import (
	"context"
)

// MethodOllama names the local Ollama backend in the request's "method" field.
// It is also the method used when the field is omitted.
const MethodOllama = "ollama"

// Input is the extracted page handed to a Summarizer.
type Input struct {
	// Text is the flat paragraph text, already capped to the extraction budget.
	Text string
	// SourceURL is the validated page address. It is attached to log records
	// and is never part of the prompt sent to the backend.
	SourceURL string
}

// Summarizer turns extracted page text into a markdown summary. An empty Text
// must fail with domain.ErrEmptyText before any backend call.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
