// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume represents a structured resume extracted from raw text
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Skills       SkillSet     `json:"skills"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	RawText      string       `json:"rawText,omitempty"`
}

// PersonalInfo represents the candidate's contact details
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// SkillSet groups resume skills into technical and soft categories
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Experience represents a single employment entry
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"` // empty means current position
	Description string `json:"description"`
}

// Education represents a single education entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
}

// AllSkills returns technical and soft skills as a single list,
// technical first, preserving order within each group.
func (r *Resume) AllSkills() []string {
	skills := make([]string, 0, len(r.Skills.Technical)+len(r.Skills.Soft))
	skills = append(skills, r.Skills.Technical...)
	skills = append(skills, r.Skills.Soft...)
	return skills
}
