// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobDescription represents a structured job posting extracted from raw text
type JobDescription struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	RequiredSkills   []string `json:"requiredSkills"`
	PreferredSkills  []string `json:"preferredSkills"`
	Responsibilities []string `json:"responsibilities"`
	Benefits         []string `json:"benefits"`
	RawText          string   `json:"rawText,omitempty"`
}

// CombinedSkills returns required skills followed by preferred skills,
// preserving each list's original order. Callers are responsible for
// deduplication across the two lists.
func (j *JobDescription) CombinedSkills() []string {
	skills := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	skills = append(skills, j.RequiredSkills...)
	skills = append(skills, j.PreferredSkills...)
	return skills
}

// FullText returns the best available text for term counting: the raw
// posting text when present, otherwise the description joined with the
// responsibility bullets.
func (j *JobDescription) FullText() string {
	if j.RawText != "" {
		return j.RawText
	}
	text := j.Description
	for _, r := range j.Responsibilities {
		text += "\n" + r
	}
	return text
}
