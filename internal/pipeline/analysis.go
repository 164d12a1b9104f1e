package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/insight"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/normalize"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalysisResult is the combined output of a full raw-text analysis.
type AnalysisResult struct {
	Match   *types.MatchResult    `json:"match"`
	Insight *types.KeywordInsight `json:"insight"`
}

// FullAnalysis drives the oracle end to end: extract both documents from
// raw text, obtain the holistic judgment and keyword occurrences, then run
// the deterministic core. The two document extractions run concurrently, as
// do the judgment and keyword calls; any oracle failure cancels the rest.
func (e *Engine) FullAnalysis(ctx context.Context, resumeText, jobText string) (*AnalysisResult, error) {
	if e.oracle == nil {
		return nil, &llm.OracleError{Op: "analyze", Message: "no oracle client configured"}
	}

	var resume *types.Resume
	var job *types.JobDescription

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resume, err = e.extractResume(gCtx, resumeText)
		return err
	})
	g.Go(func() error {
		var err error
		job, err = e.extractJob(gCtx, jobText)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Keep the raw text around for term-counting fallbacks.
	if resume.RawText == "" {
		resume.RawText = resumeText
	}
	if job.RawText == "" {
		job.RawText = jobText
	}

	var judgment types.OracleJudgment
	var occurrences []types.KeywordOccurrence

	g, gCtx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		judgment, err = e.judge(gCtx, resume, job)
		return err
	})
	g.Go(func() error {
		var err error
		occurrences, err = e.extractOccurrences(gCtx, resumeText, jobText)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(occurrences) == 0 {
		occurrences = insight.FallbackOccurrences(resume, job)
	}

	match := matching.MatchSkills(resume, job)
	scores := scoring.CategoryScores(match, judgment, resume, job)

	return &AnalysisResult{
		Match:   scoring.BuildMatchResult(scores, match, judgment),
		Insight: insight.Analyze(occurrences),
	}, nil
}

// extractResume asks the oracle for a structured resume and normalizes it.
func (e *Engine) extractResume(ctx context.Context, text string) (*types.Resume, error) {
	prompt := llm.BuildExtractionPrompt(llm.ResumeSchema(), text)
	raw, err := e.oracleJSON(ctx, "extract_resume", prompt, llm.TierLite, schemas.Resume)
	if err != nil {
		return nil, err
	}
	obj, err := normalize.ParseObject([]byte(raw))
	if err != nil {
		return nil, malformed("extract_resume", err)
	}
	return normalize.Resume(obj)
}

// extractJob asks the oracle for a structured job description and normalizes it.
func (e *Engine) extractJob(ctx context.Context, text string) (*types.JobDescription, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobDescriptionSchema(), text)
	raw, err := e.oracleJSON(ctx, "extract_job", prompt, llm.TierLite, schemas.JobDescription)
	if err != nil {
		return nil, err
	}
	obj, err := normalize.ParseObject([]byte(raw))
	if err != nil {
		return nil, malformed("extract_job", err)
	}
	return normalize.JobDescription(obj)
}

// judge asks the oracle for its holistic compatibility judgment. A payload
// that fails schema validation gets one repair re-prompt restating the
// required shape; transport failures are never retried.
func (e *Engine) judge(ctx context.Context, resume *types.Resume, job *types.JobDescription) (types.OracleJudgment, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return types.OracleJudgment{}, fmt.Errorf("failed to marshal resume: %w", err)
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return types.OracleJudgment{}, fmt.Errorf("failed to marshal job: %w", err)
	}
	docs := map[string]string{
		"Resume": string(resumeJSON),
		"Job":    string(jobJSON),
	}

	prompt := prompts.Format(prompts.MustGet("scoring.json", "judgment_system"), docs)
	raw, err := e.oracleJSON(ctx, "judge", prompt, llm.TierStandard, schemas.Judgment)
	if err != nil && schemaRejected(err) {
		repair := prompts.Format(prompts.MustGet("scoring.json", "judgment_repair"), docs)
		raw, err = e.oracleJSON(ctx, "judge_repair", repair, llm.TierStandard, schemas.Judgment)
	}
	if err != nil {
		return types.OracleJudgment{}, err
	}

	var judgment types.OracleJudgment
	if err := json.Unmarshal([]byte(raw), &judgment); err != nil {
		return types.OracleJudgment{}, malformed("judge", err)
	}
	return judgment, nil
}

// extractOccurrences asks the oracle for per-keyword occurrence counts.
func (e *Engine) extractOccurrences(ctx context.Context, resumeText, jobText string) ([]types.KeywordOccurrence, error) {
	prompt := prompts.Format(prompts.MustGet("keywords.json", "occurrence_system"), map[string]string{
		"ResumeText": resumeText,
		"JobText":    jobText,
	})

	raw, err := e.oracleJSON(ctx, "extract_occurrences", prompt, llm.TierLite, schemas.Occurrences)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Keywords []types.KeywordOccurrence `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, malformed("extract_occurrences", err)
	}
	return payload.Keywords, nil
}

// oracleJSON performs one oracle call and validates the response against
// the named schema before any consumer touches it.
func (e *Engine) oracleJSON(ctx context.Context, op, prompt string, tier llm.ModelTier, schema string) (string, error) {
	raw, err := e.oracle.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		e.logger.Warn("oracle call failed", zap.String("op", op), zap.Error(err))
		return "", err
	}
	if err := schemas.Validate(schema, raw); err != nil {
		e.logger.Warn("oracle payload rejected", zap.String("op", op), zap.Error(err))
		return "", malformed(op, err)
	}
	return raw, nil
}

// malformed wraps a bad oracle payload as an oracle failure: an unusable
// response is treated the same as no response, never as a zero score.
func malformed(op string, cause error) error {
	return &llm.OracleError{Op: op, Message: "oracle returned a malformed payload", Cause: cause}
}

// schemaRejected reports whether the oracle answered but its payload failed
// schema validation, as opposed to the call itself failing.
func schemaRejected(err error) bool {
	var verr *schemas.ValidationError
	return errors.As(err, &verr)
}
