// Package scoring derives per-category match scores and assembles the
// final MatchResult.
package scoring

import (
	"time"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// CategoryScores derives the scored categories for a resume/job pair.
// A category is emitted only when its inputs exist: Skills requires the job
// to list at least one skill; Experience, Education, and Overall Fit require
// the oracle's overall percentage. Absent categories are omitted entirely,
// never emitted with a placeholder score.
func CategoryScores(match matching.SkillMatch, judgment types.OracleJudgment, resume *types.Resume, job *types.JobDescription) []types.CategoryScore {
	return categoryScoresAt(match, judgment, resume, job, time.Now())
}

// categoryScoresAt is CategoryScores with an injectable clock so tenure
// computation is deterministic under test.
func categoryScoresAt(match matching.SkillMatch, judgment types.OracleJudgment, resume *types.Resume, job *types.JobDescription, now time.Time) []types.CategoryScore {
	scores := []types.CategoryScore{}

	if match.JobSkillCount > 0 {
		scores = append(scores, types.CategoryScore{
			Category: types.CategorySkills,
			Score:    clamp(match.SkillScore),
		})
	}

	if judgment.OverallPercentage == nil {
		return scores
	}
	overall := clamp(*judgment.OverallPercentage)

	scores = append(scores,
		types.CategoryScore{
			Category: types.CategoryExperience,
			Score:    clamp(overall + experienceDelta(resume, job, now)),
		},
		types.CategoryScore{
			Category: types.CategoryEducation,
			Score:    clamp(overall + educationDelta(resume, job)),
		},
		types.CategoryScore{
			Category: types.CategoryOverallFit,
			Score:    overall,
		},
	)

	return scores
}

// clamp bounds a score to [0,100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
