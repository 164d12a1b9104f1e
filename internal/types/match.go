// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category identifies a scored dimension of a match
type Category string

// Match score categories. A MatchResult contains an entry per category
// only when the inputs needed to score it were present.
const (
	CategorySkills     Category = "Skills"
	CategoryExperience Category = "Experience"
	CategoryEducation  Category = "Education"
	CategoryOverallFit Category = "Overall Fit"
)

// CategoryScore represents a single scored category
type CategoryScore struct {
	Category Category `json:"category"`
	Score    int      `json:"score"` // 0-100
}

// MatchResult represents the outcome of comparing a resume against a job
// description. Results are created fresh per compare request and are never
// mutated after being returned; downstream consumers (cover letter and
// feedback generation) read them as input only.
type MatchResult struct {
	OverallScore     int             `json:"overallScore"` // 0-100
	CategoryScores   []CategoryScore `json:"categoryScores"`
	MatchedSkills    []string        `json:"matchedSkills"`
	MissingSkills    []string        `json:"missingSkills"`
	Strengths        []string        `json:"strengths"`
	ImprovementAreas []string        `json:"improvementAreas"`
	Summary          string          `json:"summary"`
}

// CategoryScoreFor returns the score for the given category and whether an
// entry for it is present.
func (m *MatchResult) CategoryScoreFor(c Category) (int, bool) {
	for _, cs := range m.CategoryScores {
		if cs.Category == c {
			return cs.Score, true
		}
	}
	return 0, false
}

// OracleJudgment represents the external scoring collaborator's holistic
// assessment of a resume/job pair. OverallPercentage is nil when the oracle
// did not supply a usable overall figure; narrative fields default to empty.
type OracleJudgment struct {
	OverallPercentage *int     `json:"overallPercentage,omitempty"` // 0-100 when present
	Strengths         []string `json:"strengths"`
	ImprovementAreas  []string `json:"improvementAreas"`
	Summary           string   `json:"summary"`
}
