// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Strength classifies how well a job-relevant keyword is represented in the resume
type Strength string

// Keyword strength tiers
const (
	StrengthStrong  Strength = "Strong"
	StrengthWeak    Strength = "Weak"
	StrengthMissing Strength = "Missing"
)

// Coverage describes the aggregate strength of a keyword cluster
type Coverage string

// Cluster coverage levels
const (
	CoverageFull    Coverage = "Full"
	CoveragePartial Coverage = "Partial"
	CoverageNone    Coverage = "None"
)

// KeywordOccurrence is the raw per-keyword input to the insight engine:
// how often a keyword appears in each document and which semantic cluster
// the extraction collaborator assigned it to.
type KeywordOccurrence struct {
	Word        string `json:"word" validate:"required"`
	Cluster     string `json:"cluster"`
	ResumeCount int    `json:"resumeCount" validate:"gte=0"`
	JDCount     int    `json:"jdCount" validate:"gte=0"`
}

// Keyword is a classified keyword in a KeywordInsight report
type Keyword struct {
	Word        string   `json:"word"`
	Cluster     string   `json:"cluster"`
	Strength    Strength `json:"strength"`
	ResumeCount int      `json:"resumeCount"`
	JDCount     int      `json:"jdCount"`
}

// KeywordInsight represents the keyword-level analysis of a resume/job pair.
// Every keyword's cluster appears in Clusters, and Coverage holds exactly
// one entry per cluster.
type KeywordInsight struct {
	Keywords []Keyword           `json:"keywords"`
	Clusters []string            `json:"clusters"`
	Coverage map[string]Coverage `json:"coverage"`
}
