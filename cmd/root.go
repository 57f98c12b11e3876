package main

import (
	"fmt"
	"log/slog"

	"web-summarizer/internal/config"
	"web-summarizer/internal/page"
	"web-summarizer/internal/pipeline"
	"web-summarizer/internal/summarizer"

	"github.com/spf13/cobra"
)

type app struct {
	verbose bool
	cfg     config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "web-summarizer",
		Short: "Summarize web pages with a local language model",
		Long: `web-summarizer fetches a web page, extracts its paragraph text and asks a
local Ollama model for a markdown summary.

Configuration is read from the environment:
  HOST, PORT, ALLOWED_ORIGINS, MODEL, FETCH_TIMEOUT_MS,
  MAX_EXTRACTED_CHARS, OLLAMA_HOST`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newServeCmd(a), newSummarizeCmd(a))

	return rootCmd
}

// setup sets up logging and loads the config. Logs go to stderr unless the
// command is the server, so the summarize output stays clean.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}

	out := cmd.ErrOrStderr()
	if cmd.Name() == serveCmdName {
		out = cmd.OutOrStdout()
	}

	a.log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	return nil
}

func (a *app) newPipeline() (*pipeline.Pipeline, error) {
	ollama, err := summarizer.NewOllamaSummarizer(a.cfg.BackendAddress, a.cfg.ModelIdentifier, a.log)
	if err != nil {
		return nil, fmt.Errorf("create Ollama summarizer: %w", err)
	}

	return pipeline.New(
		page.NewFetcher(a.cfg.FetchTimeout(), a.log),
		page.NewExtractor(a.cfg.MaxExtractedChars),
		map[string]summarizer.Summarizer{summarizer.MethodOllama: ollama},
		a.log,
	), nil
}
