package main

import (
	"fmt"

	"web-summarizer/internal/domain"
	"web-summarizer/internal/summarizer"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "summarize <url>",
		Short: "Summarize a single page and print the markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newPipeline()
			if err != nil {
				return err
			}

			result, err := p.Run(cmd.Context(), uuid.NewString(), domain.SummaryRequest{
				URL:    args[0],
				Method: method,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
			return err
		},
	}

	cmd.Flags().StringVar(&method, "method", summarizer.MethodOllama, "summarization method")

	return cmd
}
