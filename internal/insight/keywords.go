// Package insight classifies job-relevant keywords by how well the resume
// covers them and aggregates coverage per semantic cluster.
package insight

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// defaultCluster is used when the extraction collaborator supplied no
// cluster for a keyword.
const defaultCluster = "General"

// Analyze classifies each occurrence and builds the full KeywordInsight
// report. Keywords the job description never mentions (jdCount == 0) are
// excluded entirely; only job-relevant terms are reported. Classification
// is a pure function of the counts, so identical input always yields an
// identical report.
func Analyze(occurrences []types.KeywordOccurrence) *types.KeywordInsight {
	keywords := []types.Keyword{}
	for _, occ := range occurrences {
		strength, relevant := Classify(occ.ResumeCount, occ.JDCount)
		if !relevant {
			continue
		}
		cluster := strings.TrimSpace(occ.Cluster)
		if cluster == "" {
			cluster = defaultCluster
		}
		keywords = append(keywords, types.Keyword{
			Word:        occ.Word,
			Cluster:     cluster,
			Strength:    strength,
			ResumeCount: occ.ResumeCount,
			JDCount:     occ.JDCount,
		})
	}

	return &types.KeywordInsight{
		Keywords: keywords,
		Clusters: clusterList(keywords),
		Coverage: clusterCoverage(keywords),
	}
}

// Classify maps a keyword's occurrence counts to a strength tier. The
// second return is false when the keyword is not job-relevant and must be
// excluded from the report.
//
// A keyword present in both documents is Weak when the resume mentions it
// at less than a third of the job description's emphasis, i.e.
// resumeCount < ceil(jdCount/3). Strong otherwise.
func Classify(resumeCount, jdCount int) (types.Strength, bool) {
	if jdCount <= 0 {
		return "", false
	}
	if resumeCount <= 0 {
		return types.StrengthMissing, true
	}
	if resumeCount < (jdCount+2)/3 {
		return types.StrengthWeak, true
	}
	return types.StrengthStrong, true
}

// clusterList returns the sorted unique clusters present among the keywords.
func clusterList(keywords []types.Keyword) []string {
	seen := make(map[string]bool)
	clusters := []string{}
	for _, k := range keywords {
		if !seen[k.Cluster] {
			seen[k.Cluster] = true
			clusters = append(clusters, k.Cluster)
		}
	}
	sort.Strings(clusters)
	return clusters
}

// clusterCoverage derives one coverage entry per cluster: Full when every
// member is Strong, None when every member is Missing, Partial otherwise.
func clusterCoverage(keywords []types.Keyword) map[string]types.Coverage {
	coverage := make(map[string]types.Coverage)
	allStrong := make(map[string]bool)
	allMissing := make(map[string]bool)

	for _, k := range keywords {
		if _, seen := coverage[k.Cluster]; !seen {
			coverage[k.Cluster] = types.CoveragePartial
			allStrong[k.Cluster] = true
			allMissing[k.Cluster] = true
		}
		if k.Strength != types.StrengthStrong {
			allStrong[k.Cluster] = false
		}
		if k.Strength != types.StrengthMissing {
			allMissing[k.Cluster] = false
		}
	}

	for cluster := range coverage {
		switch {
		case allStrong[cluster]:
			coverage[cluster] = types.CoverageFull
		case allMissing[cluster]:
			coverage[cluster] = types.CoverageNone
		}
	}
	return coverage
}
