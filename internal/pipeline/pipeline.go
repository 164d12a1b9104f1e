// Package pipeline orchestrates the match and keyword-insight computations:
// normalize the documents, run the deterministic core, and drive the oracle
// when the caller only has raw text.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/insight"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Engine runs the match pipelines. It is stateless: every invocation is a
// pure function of its inputs plus at most the injected oracle's responses,
// so concurrent requests need no coordination.
type Engine struct {
	oracle llm.Client
	logger *zap.Logger
}

// New creates an Engine. The oracle may be nil for callers that only use
// the deterministic Compare and AnalyzeKeywords paths.
func New(oracle llm.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{oracle: oracle, logger: logger}
}

// Compare normalizes the request's documents and computes the MatchResult.
// The oracle judgment arrives with the request; no oracle call is made.
func (e *Engine) Compare(req *types.CompareRequest) (*types.MatchResult, error) {
	resume, err := normalize.Resume(req.Resume)
	if err != nil {
		return nil, err
	}
	job, err := normalize.JobDescription(req.Job)
	if err != nil {
		return nil, err
	}

	match := matching.MatchSkills(resume, job)
	scores := scoring.CategoryScores(match, req.OracleJudgment, resume, job)
	result := scoring.BuildMatchResult(scores, match, req.OracleJudgment)

	e.logger.Debug("compare completed",
		zap.Int("overall_score", result.OverallScore),
		zap.Int("matched_skills", len(result.MatchedSkills)),
		zap.Int("missing_skills", len(result.MissingSkills)),
	)
	return result, nil
}

// AnalyzeKeywords normalizes the request's documents and computes the
// KeywordInsight report. When the caller supplied no occurrence data the
// engine falls back to term counting over the documents themselves.
func (e *Engine) AnalyzeKeywords(req *types.KeywordAnalysisRequest) (*types.KeywordInsight, error) {
	resume, err := normalize.Resume(req.Resume)
	if err != nil {
		return nil, err
	}
	job, err := normalize.JobDescription(req.Job)
	if err != nil {
		return nil, err
	}

	occurrences := req.Occurrences
	if len(occurrences) == 0 {
		occurrences = insight.FallbackOccurrences(resume, job)
	}

	report := insight.Analyze(occurrences)
	e.logger.Debug("keyword analysis completed",
		zap.Int("keywords", len(report.Keywords)),
		zap.Int("clusters", len(report.Clusters)),
	)
	return report, nil
}
