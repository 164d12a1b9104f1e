package insight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Clusters assigned by the term-counting fallback. Richer semantic
// clustering ("Domain Knowledge" etc.) is the extraction collaborator's
// job; the fallback only knows which list a skill came from.
const (
	clusterRequired  = "Required Skills"
	clusterPreferred = "Preferred Skills"
)

// FallbackOccurrences computes keyword occurrences by simple
// case-insensitive term counting when the caller supplied none. Candidate
// keywords are the job's skill lists; counts come from each document's
// text. A skill listed on the resume always counts at least once even when
// the raw text omits it.
func FallbackOccurrences(resume *types.Resume, job *types.JobDescription) []types.KeywordOccurrence {
	resumeText := resumeSearchText(resume)
	jobText := job.FullText()
	resumeSkills := make(map[string]bool)
	for _, s := range resume.AllSkills() {
		resumeSkills[strings.ToLower(s)] = true
	}

	occurrences := []types.KeywordOccurrence{}
	seen := make(map[string]bool)
	add := func(skills []string, cluster string) {
		for _, skill := range skills {
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true

			resumeCount := CountTerm(resumeText, skill)
			if resumeCount == 0 && resumeSkills[key] {
				resumeCount = 1
			}
			jdCount := CountTerm(jobText, skill)
			if jdCount == 0 {
				// The skill came from the job's own lists, so it is
				// job-relevant even when the prose never repeats it.
				jdCount = 1
			}

			occurrences = append(occurrences, types.KeywordOccurrence{
				Word:        skill,
				Cluster:     cluster,
				ResumeCount: resumeCount,
				JDCount:     jdCount,
			})
		}
	}

	add(job.RequiredSkills, clusterRequired)
	add(job.PreferredSkills, clusterPreferred)
	return occurrences
}

// CountTerm counts case-insensitive, non-overlapping occurrences of term
// in text. A match must not be embedded in a longer alphanumeric run, so
// "Java" does not count inside "JavaScript".
func CountTerm(text, term string) int {
	term = strings.TrimSpace(term)
	if term == "" || text == "" {
		return 0
	}
	haystack := strings.ToLower(text)
	needle := strings.ToLower(term)

	count := 0
	offset := 0
	for {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			count++
		}
		offset = end
	}
	return count
}

// Boundary checks decode the adjacent rune rather than inspecting a single
// byte, so a term abutting a multibyte letter is still treated as embedded.
func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// resumeSearchText returns the resume's raw text when available, otherwise
// a synthesis of its structured fields.
func resumeSearchText(resume *types.Resume) string {
	if resume.RawText != "" {
		return resume.RawText
	}
	var sb strings.Builder
	for _, s := range resume.AllSkills() {
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	for _, e := range resume.Experience {
		sb.WriteString(e.Title)
		sb.WriteString(" ")
		sb.WriteString(e.Company)
		sb.WriteString("\n")
		sb.WriteString(e.Description)
		sb.WriteString("\n")
	}
	for _, e := range resume.Education {
		sb.WriteString(e.Degree)
		sb.WriteString(" ")
		sb.WriteString(e.Field)
		sb.WriteString("\n")
	}
	return sb.String()
}
