package main

import (
	"time"

	"web-summarizer/internal/server"

	"github.com/spf13/cobra"
)

const serveCmdName = "serve"

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   serveCmdName,
		Short: "Serve POST /summarize over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			start := time.Now()

			p, err := a.newPipeline()
			if err != nil {
				return err
			}

			a.log.InfoContext(ctx, "Pipeline is initialized",
				"model", a.cfg.ModelIdentifier,
				"backendAddress", a.cfg.BackendAddress,
				"fetchTimeoutMs", a.cfg.FetchTimeoutMs,
				"maxExtractedChars", a.cfg.MaxExtractedChars)

			if err = server.New(p, a.cfg.AllowedOrigins, a.log).ListenAndServe(ctx, a.cfg.Addr()); err != nil {
				return err
			}

			a.log.InfoContext(ctx, "Exiting...",
				"uptimeSeconds", time.Since(start).Seconds())

			return nil
		},
	}
}
