package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

var compareCommand = &cobra.Command{
	Use:   "compare",
	Short: "Compare a resume against a job description",
	Long: `Scores a structured resume against a structured job description and
prints the match result: overall score, per-category scores, and the
matched/missing skill partition.

Both inputs are JSON files. An optional judgment file supplies oracle
narrative fields (strengths, improvement areas, overall percentage).`,
	RunE: compareCmd,
}

var (
	compareResumePath   string
	compareJobPath      string
	compareJudgmentPath string
	compareJSONOut      bool
)

func init() {
	compareCommand.Flags().StringVarP(&compareResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	compareCommand.Flags().StringVarP(&compareJobPath, "job", "j", "", "Path to job description JSON file (required)")
	compareCommand.Flags().StringVar(&compareJudgmentPath, "judgment", "", "Path to oracle judgment JSON file (optional)")
	compareCommand.Flags().BoolVar(&compareJSONOut, "json", false, "Print raw JSON instead of formatted output")

	_ = compareCommand.MarkFlagRequired("resume")
	_ = compareCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(compareCommand)
}

func compareCmd(_ *cobra.Command, _ []string) error {
	resume, err := readJSONObject(compareResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	job, err := readJSONObject(compareJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	req := types.CompareRequest{Resume: resume, Job: job}
	if compareJudgmentPath != "" {
		data, err := os.ReadFile(compareJudgmentPath)
		if err != nil {
			return fmt.Errorf("failed to read judgment: %w", err)
		}
		if err := json.Unmarshal(data, &req.OracleJudgment); err != nil {
			return fmt.Errorf("failed to parse judgment JSON: %w", err)
		}
	}

	engine := pipeline.New(nil, zap.NewNop())
	result, err := engine.Compare(&req)
	if err != nil {
		return err
	}

	if compareJSONOut {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	return nil
}

// readJSONObject reads a file and parses it as a single JSON object.
func readJSONObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return normalize.ParseObject(data)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
