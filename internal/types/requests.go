// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// CompareRequest represents the request to compare a resume against a job
// description. The resume and job payloads are accepted as untyped JSON
// objects; the document normalizer is responsible for coercing them into
// canonical entities with defaulted fields.
type CompareRequest struct {
	Resume         map[string]any `json:"resume" validate:"required"`
	Job            map[string]any `json:"job" validate:"required"`
	OracleJudgment OracleJudgment `json:"oracleJudgment"`
}

// KeywordAnalysisRequest represents the request to analyze keyword coverage
// for a resume/job pair. When Occurrences is empty the engine falls back to
// term counting over the documents' raw text.
type KeywordAnalysisRequest struct {
	Resume      map[string]any      `json:"resume" validate:"required"`
	Job         map[string]any      `json:"job" validate:"required"`
	Occurrences []KeywordOccurrence `json:"keywordOccurrences" validate:"omitempty,dive"`
}

// AnalyzeRequest represents the request for a full analysis from raw text.
// The server drives oracle extraction for both documents, then runs the
// compare and keyword pipelines over the extracted entities.
type AnalyzeRequest struct {
	ResumeText string `json:"resumeText" validate:"required,min=1"`
	JobText    string `json:"jobText" validate:"required,min=1"`
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the KeywordAnalysisRequest using the validator.
func (r *KeywordAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
