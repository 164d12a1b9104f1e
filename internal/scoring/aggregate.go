package scoring

import (
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// BuildMatchResult assembles the final MatchResult from the category scores,
// the skill match, and the oracle's narrative output. The assembly is purely
// structural: it guarantees the result's invariants hold even when upstream
// inputs are partial, defaulting absent narrative fields to empty values.
func BuildMatchResult(scores []types.CategoryScore, match matching.SkillMatch, judgment types.OracleJudgment) *types.MatchResult {
	result := &types.MatchResult{
		CategoryScores:   scores,
		MatchedSkills:    match.MatchedSkills,
		MissingSkills:    match.MissingSkills,
		Strengths:        judgment.Strengths,
		ImprovementAreas: judgment.ImprovementAreas,
		Summary:          judgment.Summary,
	}

	if result.CategoryScores == nil {
		result.CategoryScores = []types.CategoryScore{}
	}
	if result.MatchedSkills == nil {
		result.MatchedSkills = []string{}
	}
	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.ImprovementAreas == nil {
		result.ImprovementAreas = []string{}
	}

	if overall, ok := result.CategoryScoreFor(types.CategoryOverallFit); ok {
		result.OverallScore = overall
	}

	return result
}
