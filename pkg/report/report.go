// Package report aggregates checker findings into a deterministic,
// renderable report: canonical sort, dedup by stable ID, and summary
// counts. Rendered output carries no timestamps or randomness, so the
// same input always renders byte-identical.
package report

import (
	"sort"

	"github.com/mohamedboly/solidlint/pkg/model"
	"github.com/mohamedboly/solidlint/pkg/rules"
)

// Summary holds aggregate counts for a report.
type Summary struct {
	Total       int            `json:"total"`
	ByPrinciple map[string]int `json:"by_principle,omitempty"`
	BySeverity  map[string]int `json:"by_severity,omitempty"`
	Graph       GraphSummary   `json:"graph"`
}

// GraphSummary echoes the analyzed graph's shape.
type GraphSummary struct {
	Types            int `json:"types"`
	Classes          int `json:"classes"`
	Interfaces       int `json:"interfaces"`
	InheritanceEdges int `json:"inheritance_edges"`
	DependencyEdges  int `json:"dependency_edges"`
}

// Report is the ordered findings sequence plus its summary.
type Report struct {
	Findings []rules.Finding `json:"findings"`
	Summary  Summary         `json:"summary"`
}

// Clean reports whether the report contains no findings.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

// Aggregate sorts findings by (principle, type, member, message),
// drops duplicates by stable ID keeping the first occurrence, and
// computes the summary. No filtering or suppression happens here.
func Aggregate(findings []rules.Finding, stats model.Stats) *Report {
	sorted := make([]rules.Finding, len(findings))
	copy(sorted, findings)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Principle.String() != b.Principle.String() {
			return a.Principle.String() < b.Principle.String()
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Member != b.Member {
			return a.Member < b.Member
		}
		return a.Message < b.Message
	})

	deduped := make([]rules.Finding, 0, len(sorted))
	seen := make(map[string]bool)
	for _, f := range sorted {
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		deduped = append(deduped, f)
	}

	summary := Summary{
		Total: len(deduped),
		Graph: GraphSummary{
			Types:            stats.Types,
			Classes:          stats.Classes,
			Interfaces:       stats.Interfaces,
			InheritanceEdges: stats.InheritanceEdges,
			DependencyEdges:  stats.DependencyEdges,
		},
	}
	if len(deduped) > 0 {
		summary.ByPrinciple = make(map[string]int)
		summary.BySeverity = make(map[string]int)
		for _, f := range deduped {
			summary.ByPrinciple[f.Principle.String()]++
			summary.BySeverity[f.Severity.String()]++
		}
	}

	return &Report{Findings: deduped, Summary: summary}
}
