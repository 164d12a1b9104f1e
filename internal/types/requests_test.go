// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareRequest_Validate(t *testing.T) {
	valid := CompareRequest{
		Resume: map[string]any{"skills": map[string]any{}},
		Job:    map[string]any{"title": "Backend Engineer"},
	}
	assert.NoError(t, valid.Validate())

	missingResume := CompareRequest{
		Job: map[string]any{"title": "Backend Engineer"},
	}
	assert.Error(t, missingResume.Validate())

	missingJob := CompareRequest{
		Resume: map[string]any{},
	}
	assert.Error(t, missingJob.Validate())
}

func TestKeywordAnalysisRequest_Validate(t *testing.T) {
	valid := KeywordAnalysisRequest{
		Resume: map[string]any{},
		Job:    map[string]any{},
		Occurrences: []KeywordOccurrence{
			{Word: "Kubernetes", Cluster: "DevOps", ResumeCount: 0, JDCount: 5},
		},
	}
	assert.NoError(t, valid.Validate())

	negativeCount := KeywordAnalysisRequest{
		Resume: map[string]any{},
		Job:    map[string]any{},
		Occurrences: []KeywordOccurrence{
			{Word: "Kubernetes", ResumeCount: -1, JDCount: 5},
		},
	}
	assert.Error(t, negativeCount.Validate())

	emptyWord := KeywordAnalysisRequest{
		Resume: map[string]any{},
		Job:    map[string]any{},
		Occurrences: []KeywordOccurrence{
			{Word: "", JDCount: 2},
		},
	}
	assert.Error(t, emptyWord.Validate())

	// Occurrences may be omitted entirely; the engine then counts terms itself.
	noOccurrences := KeywordAnalysisRequest{
		Resume: map[string]any{},
		Job:    map[string]any{},
	}
	assert.NoError(t, noOccurrences.Validate())
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := AnalyzeRequest{ResumeText: "John Doe\nGo, Python", JobText: "Backend role"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&AnalyzeRequest{JobText: "Backend role"}).Validate())
	assert.Error(t, (&AnalyzeRequest{ResumeText: "John Doe"}).Validate())
}
