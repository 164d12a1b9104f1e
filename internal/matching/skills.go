// Package matching compares resume skill sets against job requirements.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SkillMatch is the result of comparing a resume against a job's skill
// requirements. MatchedSkills and MissingSkills partition the job's
// combined (required ∪ preferred) skill set exactly: no overlap, no
// omission, original job casing preserved.
type SkillMatch struct {
	MatchedSkills []string
	MissingSkills []string
	SkillScore    int // 0-100; 0 when the job lists no skills
	JobSkillCount int // size of the job's combined, deduplicated skill set
}

// MatchSkills compares the resume's skills (technical ∪ soft) against the
// job's combined skill set. Comparison is case-insensitive on trimmed
// values; output order follows first appearance in requiredSkills then
// preferredSkills.
func MatchSkills(resume *types.Resume, job *types.JobDescription) SkillMatch {
	resumeSet := foldSet(resume.AllSkills())

	matched := []string{}
	missing := []string{}
	seen := make(map[string]bool)
	for _, skill := range job.CombinedSkills() {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		if resumeSet[key] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	total := len(matched) + len(missing)
	score := 0
	if total > 0 {
		// No job skills means score 0, not 100: sparse postings are not
		// rewarded as perfect matches.
		score = int(math.Round(100 * float64(len(matched)) / float64(total)))
	}

	return SkillMatch{
		MatchedSkills: matched,
		MissingSkills: missing,
		SkillScore:    score,
		JobSkillCount: total,
	}
}

// foldSet builds a case-folded lookup set from a skill list.
func foldSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		set[strings.ToLower(s)] = true
	}
	return set
}
