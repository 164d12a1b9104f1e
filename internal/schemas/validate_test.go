package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Judgment(t *testing.T) {
	valid := `{"overallPercentage": 70, "strengths": ["Go depth"], "improvementAreas": [], "summary": "Fine."}`
	assert.NoError(t, Validate(Judgment, valid))

	tests := []struct {
		name     string
		document string
	}{
		{"missing percentage", `{"strengths": [], "summary": "no score"}`},
		{"percentage out of range", `{"overallPercentage": 140}`},
		{"percentage wrong type", `{"overallPercentage": "seventy"}`},
		{"not an object", `[1, 2, 3]`},
		{"not JSON at all", `I am sorry, I cannot help with that.`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Judgment, tt.document)
			require.Error(t, err)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidate_Occurrences(t *testing.T) {
	valid := `{"keywords": [{"word": "Kubernetes", "cluster": "DevOps", "resumeCount": 0, "jdCount": 5}]}`
	assert.NoError(t, Validate(Occurrences, valid))

	missingCounts := `{"keywords": [{"word": "Kubernetes"}]}`
	var validationErr *ValidationError
	require.ErrorAs(t, Validate(Occurrences, missingCounts), &validationErr)
	assert.Equal(t, Occurrences, validationErr.Schema)
	assert.NotEmpty(t, validationErr.Errors)

	negative := `{"keywords": [{"word": "Go", "resumeCount": -1, "jdCount": 2}]}`
	assert.Error(t, Validate(Occurrences, negative))
}

func TestValidate_Documents(t *testing.T) {
	// Documents with missing fields pass: defaulting is the normalizer's
	// job. Only shape violations fail.
	assert.NoError(t, Validate(Resume, `{}`))
	assert.NoError(t, Validate(Resume, `{"skills": {"technical": ["Go"]}}`))
	assert.Error(t, Validate(Resume, `{"skills": {"technical": "Go"}}`))
	assert.Error(t, Validate(Resume, `"just a string"`))

	assert.NoError(t, Validate(JobDescription, `{"title": "SRE"}`))
	assert.Error(t, Validate(JobDescription, `{"requiredSkills": [1, 2]}`))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope", `{}`)
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(Judgment, `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "judgment")
	assert.Contains(t, err.Error(), "overallPercentage")
}
