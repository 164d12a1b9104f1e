// Package llm - extractor.go provides schema-driven oracle extraction prompts.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for oracle-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "Resume", "JobDescription")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "object"
	Description string // Description for the oracle
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the oracle prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ResumeSchema returns the extraction schema for resumes.
func ResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "Resume",
		Description: "You are an expert resume parser. Extract structured fields from the resume text below.",
		Fields: []SchemaField{
			{Name: "personalInfo", Type: `{"name": string, "email": string, "phone": string, "location": string}`, Description: "candidate contact details", Required: true},
			{Name: "skills", Type: `{"technical": []string, "soft": []string}`, Description: "deduplicated skill names as written", Required: true},
			{Name: "experience", Type: `[{"title", "company", "startDate", "endDate", "description"}]`, Description: "employment history, dates as YYYY-MM where possible"},
			{Name: "education", Type: `[{"institution", "degree", "field", "startDate", "endDate"}]`, Description: "education history"},
		},
	}
}

// JobDescriptionSchema returns the extraction schema for job postings.
func JobDescriptionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "JobDescription",
		Description: "You are an expert job-posting parser. Extract structured fields from the posting text below.",
		Fields: []SchemaField{
			{Name: "title", Type: "string", Description: "role title", Required: true},
			{Name: "company", Type: "string"},
			{Name: "location", Type: "string"},
			{Name: "description", Type: "string", Description: "one-paragraph role summary"},
			{Name: "requiredSkills", Type: "[]string", Description: "skills stated as required", Required: true},
			{Name: "preferredSkills", Type: "[]string", Description: "nice-to-have skills"},
			{Name: "responsibilities", Type: "[]string"},
			{Name: "benefits", Type: "[]string"},
		},
	}
}
