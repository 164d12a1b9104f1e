package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %d/100\n\n", result.OverallScore))

	if len(result.CategoryScores) > 0 {
		for _, cs := range result.CategoryScores {
			sb.WriteString(fmt.Sprintf("  %-12s %3d\n", cs.Category, cs.Score))
		}
		sb.WriteString("\n")
	}

	writeSkillLine := func(label string, skills []string) {
		if len(skills) == 0 {
			return
		}
		joined := strings.Join(skills, ", ")
		if len(joined) > 40 {
			joined = joined[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", label, joined))
	}
	writeSkillLine("Matched:", result.MatchedSkills)
	writeSkillLine("Missing:", result.MissingSkills)

	if len(result.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(result.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Strengths[i]))
		}
	}
	if len(result.ImprovementAreas) > 0 {
		sb.WriteString("\nImprovement areas:\n")
		count := min(len(result.ImprovementAreas), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.ImprovementAreas[i]))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordInsight outputs a human-readable summary of a keyword report,
// grouped by cluster with per-cluster coverage.
func (p *Printer) PrintKeywordInsight(report *types.KeywordInsight) {
	if report == nil || len(report.Keywords) == 0 {
		return
	}

	byCluster := make(map[string][]types.Keyword)
	for _, k := range report.Keywords {
		byCluster[k.Cluster] = append(byCluster[k.Cluster], k)
	}

	clusters := make([]string, 0, len(byCluster))
	for c := range byCluster {
		clusters = append(clusters, c)
	}
	sort.Strings(clusters)

	var sb strings.Builder
	for i, cluster := range clusters {
		sb.WriteString(fmt.Sprintf("%s [%s]\n", cluster, report.Coverage[cluster]))
		keywords := byCluster[cluster]
		count := min(len(keywords), maxItemsToShow)
		for j := 0; j < count; j++ {
			k := keywords[j]
			sb.WriteString(fmt.Sprintf("  %-8s %s (%d/%d)\n", k.Strength, k.Word, k.ResumeCount, k.JDCount))
		}
		if len(keywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
		}
		if i < len(clusters)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("KEYWORD INSIGHT", strings.TrimSuffix(sb.String(), "\n"))
}
