// Package normalize coerces untrusted JSON payloads into canonical Resume
// and JobDescription entities with every optional field defaulted.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseObject parses raw bytes as a JSON object. It is the only place the
// normalizer can fail: anything that is not a JSON object (arrays, strings,
// numbers, invalid JSON) is rejected as invalid input.
func ParseObject(data []byte) (map[string]any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &InvalidInputError{Message: "payload is not valid JSON", Cause: err}
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &InvalidInputError{Message: "payload is not a JSON object"}
	}
	return obj, nil
}

// Resume coerces a raw JSON object into a Resume. Missing fields never
// cause an error; absent arrays become empty slices and absent strings
// become empty strings. Skill lists are cleaned per the skill invariant.
func Resume(raw map[string]any) (*types.Resume, error) {
	if raw == nil {
		return nil, &InvalidInputError{Message: "resume payload is not a JSON object"}
	}

	var resume types.Resume
	if err := decode(raw, &resume); err != nil {
		return nil, &InvalidInputError{Message: "resume payload has an invalid shape", Cause: err}
	}

	resume.Skills.Technical = CleanSkillList(resume.Skills.Technical)
	resume.Skills.Soft = CleanSkillList(resume.Skills.Soft)
	if resume.Experience == nil {
		resume.Experience = []types.Experience{}
	}
	if resume.Education == nil {
		resume.Education = []types.Education{}
	}

	return &resume, nil
}

// JobDescription coerces a raw JSON object into a JobDescription with the
// same defaulting rules as Resume.
func JobDescription(raw map[string]any) (*types.JobDescription, error) {
	if raw == nil {
		return nil, &InvalidInputError{Message: "job payload is not a JSON object"}
	}

	var job types.JobDescription
	if err := decode(raw, &job); err != nil {
		return nil, &InvalidInputError{Message: "job payload has an invalid shape", Cause: err}
	}

	job.RequiredSkills = CleanSkillList(job.RequiredSkills)
	job.PreferredSkills = CleanSkillList(job.PreferredSkills)
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}
	if job.Benefits == nil {
		job.Benefits = []string{}
	}

	return &job, nil
}

// CleanSkillList trims entries, drops empties, and deduplicates
// case-insensitively while keeping the first occurrence's original casing.
// Always returns a non-nil slice.
func CleanSkillList(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, s)
	}
	return cleaned
}

// decode maps a raw JSON object onto the target struct using the json field
// names. Weak typing tolerates oracle quirks like numbers arriving as
// strings; unknown fields are ignored rather than rejected.
func decode(raw map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
