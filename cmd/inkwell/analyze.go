package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sozercan/inkwell/apimodels"
	"github.com/sozercan/inkwell/internal/analyzer"
	"github.com/sozercan/inkwell/internal/app"
)

type operation func(ctx context.Context, a *analyzer.Analyzer, req apimodels.AnalysisRequest) (any, error)

func init() {
	rootCmd.AddCommand(
		newOperationCommand("analyze", "Check grammar, tone, readability and passive voice",
			func(ctx context.Context, a *analyzer.Analyzer, req apimodels.AnalysisRequest) (any, error) {
				return a.Analyze(ctx, req)
			}),
		newOperationCommand("grammar", "List every grammar and spelling issue",
			func(ctx context.Context, a *analyzer.Analyzer, req apimodels.AnalysisRequest) (any, error) {
				return a.CheckGrammar(ctx, req)
			}),
		newOperationCommand("recommend", "Suggest content improvements and extract keywords",
			func(ctx context.Context, a *analyzer.Analyzer, req apimodels.AnalysisRequest) (any, error) {
				return a.Recommend(ctx, req)
			}),
		newOperationCommand("summarize", "Produce an extractive summary",
			func(ctx context.Context, a *analyzer.Analyzer, req apimodels.AnalysisRequest) (any, error) {
				return a.Summarize(ctx, req)
			}),
		newOperationCommand("style", "Check word repetition, sentence variety and adverb use",
			func(ctx context.Context, a *analyzer.Analyzer, req apimodels.AnalysisRequest) (any, error) {
				return a.CheckStyle(ctx, req)
			}),
	)
}

func newOperationCommand(use, short string, run operation) *cobra.Command {
	var (
		file   string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ".\n\nThe text is read from --file, or from stdin when no file is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create analyzer: %w", err)
			}

			result, err := run(cmd.Context(), a, apimodels.AnalysisRequest{Text: text})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if pretty {
				printPretty(out, result)
				return nil
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from this file instead of stdin")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print a colored, human-readable report")
	return cmd
}

func readInput(file string, stdin io.Reader) (string, error) {
	if file == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(b), nil
}
