package rules

import (
	"fmt"
	"sort"
	"strings"
)

// Dependency categories used by the single-responsibility heuristic.
const (
	categoryPersistence   = "persistence"
	categoryCommunication = "communication"
	categoryDomain        = "domain"
)

// suffixCategories maps dependency-name suffixes to responsibility
// categories. Anything without a recognized suffix counts as domain.
var suffixCategories = []struct {
	suffix   string
	category string
}{
	{"Repository", categoryPersistence},
	{"DAO", categoryPersistence},
	{"Connection", categoryPersistence},
	{"Sender", categoryCommunication},
	{"Client", categoryCommunication},
}

// SRPRule flags types whose dependencies span more than one
// responsibility category, per a name-suffix convention.
//
// This is a structural proxy for a semantic judgment ("does this type
// mix business and technical concerns") that cannot be fully automated:
// the suffix convention will miss unconventionally named dependencies
// and may misclassify domain types that happen to end in a technical
// suffix. The heuristic is deliberately kept simple rather than tuned.
type SRPRule struct {
	Severity Severity
}

// NewSRPRule creates the single-responsibility checker at its default severity.
func NewSRPRule() *SRPRule {
	return &SRPRule{Severity: DefaultSeverity(SRP)}
}

func (r *SRPRule) Name() string { return "single-responsibility" }

func (r *SRPRule) Principle() Principle { return SRP }

// Check categorizes every type's dependency targets and flags types
// spanning two or more categories.
func (r *SRPRule) Check(g Graph) []Finding {
	findings := make([]Finding, 0)

	for _, t := range g.Types() {
		categories := make(map[string]bool)
		for _, dep := range t.Dependencies() {
			categories[categorize(dep.Target)] = true
		}
		if len(categories) < 2 {
			continue
		}

		names := make([]string, 0, len(categories))
		for c := range categories {
			names = append(names, c)
		}
		sort.Strings(names)

		findings = append(findings, NewFinding(SRP, r.Severity, t.Name, "",
			fmt.Sprintf("%s mixes %s responsibilities", t.Name, strings.Join(names, " and "))))
	}

	return findings
}

// categorize assigns a dependency target to a responsibility category
// by name suffix.
func categorize(target string) string {
	for _, sc := range suffixCategories {
		// A bare suffix name ("Repository") carries no domain part and
		// stays domain.
		if strings.HasSuffix(target, sc.suffix) && target != sc.suffix {
			return sc.category
		}
	}
	return categoryDomain
}
