package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"plain JSON untouched",
			`{"overallPercentage": 70}`,
			`{"overallPercentage": 70}`,
		},
		{
			"json fence",
			"```json\n{\"overallPercentage\": 70}\n```",
			`{"overallPercentage": 70}`,
		},
		{
			"generic fence",
			"```\n{\"keywords\": []}\n```",
			`{"keywords": []}`,
		},
		{
			"fence with language identifier",
			"```javascript\n{\"a\": 1}\n```",
			`{"a": 1}`,
		},
		{
			"fused json fence without newline",
			"```json{\"a\": 1}```",
			`{"a": 1}`,
		},
		{
			"surrounding whitespace",
			"  \n {\"a\": 1} \n ",
			`{"a": 1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestOracleError(t *testing.T) {
	cause := assert.AnError
	err := &OracleError{Op: "generate", Message: "oracle call failed", Cause: cause}
	assert.Contains(t, err.Error(), "oracle generate")
	assert.ErrorIs(t, err, cause)

	bare := &OracleError{Op: "generate", Message: "no model configured"}
	assert.Contains(t, bare.Error(), "no model configured")
	assert.NoError(t, bare.Unwrap())
}
