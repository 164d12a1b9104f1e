package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

var keywordsCommand = &cobra.Command{
	Use:   "keywords",
	Short: "Analyze keyword coverage for a resume/job pair",
	Long: `Classifies job-relevant keywords as Strong, Weak, or Missing in the
resume and reports per-cluster coverage.

Occurrence counts can be supplied in a JSON file; without one, counts are
derived from the documents' listed skills and raw text.`,
	RunE: keywordsCmd,
}

var (
	keywordsResumePath      string
	keywordsJobPath         string
	keywordsOccurrencesPath string
	keywordsJSONOut         bool
)

func init() {
	keywordsCommand.Flags().StringVarP(&keywordsResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	keywordsCommand.Flags().StringVarP(&keywordsJobPath, "job", "j", "", "Path to job description JSON file (required)")
	keywordsCommand.Flags().StringVar(&keywordsOccurrencesPath, "occurrences", "", "Path to keyword occurrences JSON file (optional)")
	keywordsCommand.Flags().BoolVar(&keywordsJSONOut, "json", false, "Print raw JSON instead of formatted output")

	_ = keywordsCommand.MarkFlagRequired("resume")
	_ = keywordsCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(keywordsCommand)
}

func keywordsCmd(_ *cobra.Command, _ []string) error {
	resume, err := readJSONObject(keywordsResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	job, err := readJSONObject(keywordsJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	req := types.KeywordAnalysisRequest{Resume: resume, Job: job}
	if keywordsOccurrencesPath != "" {
		data, err := os.ReadFile(keywordsOccurrencesPath)
		if err != nil {
			return fmt.Errorf("failed to read occurrences: %w", err)
		}
		if err := json.Unmarshal(data, &req.Occurrences); err != nil {
			return fmt.Errorf("failed to parse occurrences JSON: %w", err)
		}
	}

	engine := pipeline.New(nil, zap.NewNop())
	insight, err := engine.AnalyzeKeywords(&req)
	if err != nil {
		return err
	}

	if keywordsJSONOut {
		return printJSON(insight)
	}
	observability.NewPrinter(os.Stdout).PrintKeywordInsight(insight)
	return nil
}
