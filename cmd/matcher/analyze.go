package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis from raw resume and job text",
	Long: `Runs the end-to-end pipeline: extracts structured documents from raw
text via the oracle, scores the match, and classifies keyword coverage.

Requires a Gemini API key (--api-key flag or GEMINI_API_KEY env var).`,
	RunE: analyzeCmd,
}

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeAPIKey     string
	analyzeJSONOut    bool
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume text file (required)")
	analyzeCommand.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job posting text file (required)")
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCommand.Flags().BoolVar(&analyzeJSONOut, "json", false, "Print raw JSON instead of formatted output")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Enable debug-level logging")

	_ = analyzeCommand.MarkFlagRequired("resume")
	_ = analyzeCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCommand)
}

func analyzeCmd(_ *cobra.Command, _ []string) error {
	apiKey := resolveAPIKey(analyzeAPIKey)
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	resumeText, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume text: %w", err)
	}
	jobText, err := os.ReadFile(analyzeJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job text: %w", err)
	}

	logger, err := observability.NewLogger(false, analyzeVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	oracle, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create oracle client: %w", err)
	}
	defer oracle.Close() //nolint:errcheck

	engine := pipeline.New(oracle, logger)
	result, err := engine.FullAnalysis(ctx, string(resumeText), string(jobText))
	if err != nil {
		return err
	}

	if analyzeJSONOut {
		return printJSON(result)
	}
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResult(result.Match)
	printer.PrintKeywordInsight(result.Insight)
	return nil
}
