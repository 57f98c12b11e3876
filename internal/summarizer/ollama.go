package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"web-summarizer/internal/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// Ollama ignores the key, but the SDK refuses to send requests without one.
	ollamaAPIKey = "ollama"

	userPromptPrefix = "Summarize the following text:\n"

	systemPrompt = `You are a professional summarizer tasked with creating a clear, concise summary in markdown format.

Follow these guidelines:
- Use markdown formatting to structure the summary
- Use appropriate headings (` + "`##`, `###`" + `) to organize key points
- Highlight important terms with **bold**
- Use bullet points (` + "`-`" + `) for lists
- Keep the summary between 250-500 words
- Preserve the most important information from the original text
- Maintain a neutral, objective tone

Summary format:
## Key Takeaways

### Main Topics
- Primary point 1
- Primary point 2

### Detailed Insights
- Specific details and supporting information

### Implications or Conclusions
- Significant outcomes or broader context`
)

// OllamaSummarizer talks to the OpenAI-compatible chat completions endpoint
// of a local Ollama instance.
type OllamaSummarizer struct {
	client openai.Client
	model  string
	log    *slog.Logger
}

// NewOllamaSummarizer builds a summarizer for the backend at address
// (e.g. http://localhost:11434) using a single fixed model.
func NewOllamaSummarizer(address, model string, log *slog.Logger) (*OllamaSummarizer, error) {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if address == "" {
		return nil, errors.New("backend address is empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("model is empty")
	}

	return &OllamaSummarizer{
		client: openai.NewClient(
			option.WithBaseURL(address+"/v1/"),
			option.WithAPIKey(ollamaAPIKey),
			option.WithMaxRetries(0),
		),
		model: model,
		log:   log,
	}, nil
}

// Summarize returns the model output verbatim. Empty input is rejected
// without contacting the backend.
func (s *OllamaSummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	if input.Text == "" {
		return "", domain.ErrEmptyText
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPromptPrefix + input.Text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: do request: %w", domain.ErrSummarization, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices (model = %s)", domain.ErrSummarization, s.model)
	}

	s.log.DebugContext(ctx, "Summary is generated",
		"component", "summarizer",
		"model", s.model,
		"sourceURL", input.SourceURL,
		"inputChars", utf8.RuneCountInString(input.Text),
		"finishReason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}
