package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Experience and Education are scored as the oracle's overall percentage
// adjusted by a small bounded signal derived from the documents themselves.
// The adjustments are deliberately modest: the oracle's holistic judgment
// stays the dominant term, and both deltas are clamped so a single parsed
// figure can never swing a score by more than maxPenalty points.
const (
	meetsBonus         = 10 // requirement met or exceeded
	yearPenalty        = 5  // per missing year of tenure
	maxPenaltyYears    = 3  // shortfall cap for the experience penalty
	degreeLevelPenalty = 15 // per degree level short of the requirement
)

var yearsPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

// experienceDelta compares the candidate's total tenure against the
// required-years figure parsed from the job text. Zero when the posting
// states no year requirement.
func experienceDelta(resume *types.Resume, job *types.JobDescription, now time.Time) int {
	required := requiredYears(job.FullText())
	if required == 0 {
		return 0
	}
	tenure := tenureYears(resume.Experience, now)
	if tenure >= float64(required) {
		return meetsBonus
	}
	shortfall := int(math.Ceil(float64(required) - tenure))
	if shortfall > maxPenaltyYears {
		shortfall = maxPenaltyYears
	}
	return -yearPenalty * shortfall
}

// requiredYears extracts the first "N years" figure from the job text.
// Returns 0 when no requirement is stated.
func requiredYears(text string) int {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return years
}

// tenureYears sums the duration of all experience entries, in years.
// Open-ended entries count up to now; entries with unparseable dates
// contribute nothing.
func tenureYears(entries []types.Experience, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		start, ok := parseDate(e.StartDate)
		if !ok {
			continue
		}
		end := now
		if e.EndDate != "" {
			parsed, ok := parseDate(e.EndDate)
			if !ok {
				continue
			}
			end = parsed
		}
		if end.Before(start) {
			continue
		}
		total += end.Sub(start).Hours() / (24 * 365.25)
	}
	return total
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"Jan 2006",
	"January 2006",
	"01/2006",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Degree levels, ordered. Zero means no degree signal was found.
const (
	levelAssociate = 1
	levelBachelor  = 2
	levelMaster    = 3
	levelDoctorate = 4
)

var degreeKeywords = []struct {
	level    int
	patterns []string
}{
	{levelDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{levelMaster, []string{"master", "m.s.", "msc", "m.sc", "mba"}},
	{levelBachelor, []string{"bachelor", "b.s.", "bsc", "b.sc", "b.a.", "undergraduate degree"}},
	{levelAssociate, []string{"associate degree", "associate's"}},
}

// educationDelta compares the job's minimum degree requirement against the
// resume's highest degree. Zero when the posting states no degree
// requirement.
func educationDelta(resume *types.Resume, job *types.JobDescription) int {
	required := requiredDegreeLevel(job.FullText())
	if required == 0 {
		return 0
	}
	highest := 0
	for _, e := range resume.Education {
		if level := degreeLevel(e.Degree); level > highest {
			highest = level
		}
	}
	if highest >= required {
		return meetsBonus
	}
	return -degreeLevelPenalty * (required - highest)
}

// requiredDegreeLevel returns the lowest degree level the job text mentions:
// a posting naming both bachelor's and master's is satisfiable by the lesser.
func requiredDegreeLevel(text string) int {
	lower := strings.ToLower(text)
	required := 0
	for _, dk := range degreeKeywords {
		for _, p := range dk.patterns {
			if strings.Contains(lower, p) {
				if required == 0 || dk.level < required {
					required = dk.level
				}
				break
			}
		}
	}
	return required
}

// degreeLevel classifies a single degree string.
func degreeLevel(degree string) int {
	lower := strings.ToLower(degree)
	for _, dk := range degreeKeywords {
		for _, p := range dk.patterns {
			if strings.Contains(lower, p) {
				return dk.level
			}
		}
	}
	return 0
}
