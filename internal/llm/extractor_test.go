package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract test fields.",
		Fields: []SchemaField{
			{Name: "title", Type: "string", Required: true},
			{Name: "tags", Type: "[]string", Description: "freeform tags"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some input text")

	assert.Contains(t, prompt, "Extract test fields.")
	assert.Contains(t, prompt, `"title": string (required)`)
	assert.Contains(t, prompt, `"tags": []string`)
	assert.Contains(t, prompt, "freeform tags")
	assert.Contains(t, prompt, "some input text")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestPredefinedSchemas(t *testing.T) {
	resume := ResumeSchema()
	assert.Equal(t, "Resume", resume.Name)
	fieldNames := map[string]bool{}
	for _, f := range resume.Fields {
		fieldNames[f.Name] = true
	}
	assert.True(t, fieldNames["skills"])
	assert.True(t, fieldNames["experience"])
	assert.True(t, fieldNames["education"])

	job := JobDescriptionSchema()
	assert.Equal(t, "JobDescription", job.Name)
	fieldNames = map[string]bool{}
	for _, f := range job.Fields {
		fieldNames[f.Name] = true
	}
	assert.True(t, fieldNames["requiredSkills"])
	assert.True(t, fieldNames["preferredSkills"])
}
