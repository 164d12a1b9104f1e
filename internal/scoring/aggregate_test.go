package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestBuildMatchResult_FullInputs(t *testing.T) {
	scores := []types.CategoryScore{
		{Category: types.CategorySkills, Score: 33},
		{Category: types.CategoryOverallFit, Score: 72},
	}
	match := matching.SkillMatch{
		MatchedSkills: []string{"React"},
		MissingSkills: []string{"AWS", "Docker"},
		SkillScore:    33,
		JobSkillCount: 3,
	}
	judgment := types.OracleJudgment{
		Strengths:        []string{"Solid frontend experience"},
		ImprovementAreas: []string{"No cloud exposure"},
		Summary:          "A reasonable fit.",
	}

	result := BuildMatchResult(scores, match, judgment)

	assert.Equal(t, 72, result.OverallScore)
	assert.Equal(t, scores, result.CategoryScores)
	assert.Equal(t, []string{"React"}, result.MatchedSkills)
	assert.Equal(t, []string{"AWS", "Docker"}, result.MissingSkills)
	assert.Equal(t, []string{"Solid frontend experience"}, result.Strengths)
	assert.Equal(t, "A reasonable fit.", result.Summary)
}

func TestBuildMatchResult_DefaultsPartialInputs(t *testing.T) {
	result := BuildMatchResult(nil, matching.SkillMatch{}, types.OracleJudgment{})

	// Every list is present and empty, never nil; the overall score is 0
	// only because no Overall Fit category exists.
	require.NotNil(t, result.CategoryScores)
	assert.Empty(t, result.CategoryScores)
	require.NotNil(t, result.MatchedSkills)
	require.NotNil(t, result.MissingSkills)
	require.NotNil(t, result.Strengths)
	require.NotNil(t, result.ImprovementAreas)
	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, "", result.Summary)
}

func TestBuildMatchResult_OverallScoreFromOverallFit(t *testing.T) {
	withFit := BuildMatchResult([]types.CategoryScore{
		{Category: types.CategoryOverallFit, Score: 88},
	}, matching.SkillMatch{}, types.OracleJudgment{})
	assert.Equal(t, 88, withFit.OverallScore)

	withoutFit := BuildMatchResult([]types.CategoryScore{
		{Category: types.CategorySkills, Score: 90},
	}, matching.SkillMatch{}, types.OracleJudgment{})
	assert.Equal(t, 0, withoutFit.OverallScore)
}
