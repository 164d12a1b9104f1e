package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchResult(&types.MatchResult{
		OverallScore: 72,
		CategoryScores: []types.CategoryScore{
			{Category: types.CategorySkills, Score: 33},
			{Category: types.CategoryOverallFit, Score: 72},
		},
		MatchedSkills:    []string{"React"},
		MissingSkills:    []string{"AWS", "Docker"},
		Strengths:        []string{"Strong frontend background"},
		ImprovementAreas: []string{"Add cloud experience"},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH RESULT")
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "Skills")
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "AWS, Docker")
	assert.Contains(t, out, "Strong frontend background")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintKeywordInsight(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintKeywordInsight(&types.KeywordInsight{
		Keywords: []types.Keyword{
			{Word: "Docker", Cluster: "DevOps", Strength: types.StrengthStrong, ResumeCount: 3, JDCount: 2},
			{Word: "Kubernetes", Cluster: "DevOps", Strength: types.StrengthMissing, ResumeCount: 0, JDCount: 5},
		},
		Clusters: []string{"DevOps"},
		Coverage: map[string]types.Coverage{"DevOps": types.CoveragePartial},
	})

	out := buf.String()
	assert.Contains(t, out, "KEYWORD INSIGHT")
	assert.Contains(t, out, "DevOps [Partial]")
	assert.Contains(t, out, "Kubernetes (0/5)")
}

func TestPrintKeywordInsight_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywordInsight(&types.KeywordInsight{})
	assert.Empty(t, buf.String())
}
