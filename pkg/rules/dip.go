package rules

import (
	"fmt"

	"github.com/mohamedboly/solidlint/pkg/decl"
	"github.com/mohamedboly/solidlint/pkg/model"
)

// DIPRule flags service-layer types that depend on concrete classes:
// high-level business logic should depend on abstractions, not on the
// low-level types it constructs or owns. Dependencies on interfaces
// are the acceptable shape; dependencies on undeclared (external)
// names cannot be judged and produce nothing.
type DIPRule struct {
	Severity Severity
}

// NewDIPRule creates the dependency inversion checker at its default severity.
func NewDIPRule() *DIPRule {
	return &DIPRule{Severity: DefaultSeverity(DIP)}
}

func (r *DIPRule) Name() string { return "dependency-inversion" }

func (r *DIPRule) Principle() Principle { return DIP }

// Check examines every resolved dependency edge from a service-layer type.
func (r *DIPRule) Check(g Graph) []Finding {
	findings := make([]Finding, 0)

	for _, t := range g.Types() {
		if !t.HasMarker(decl.MarkerServiceLayer) {
			continue
		}
		for _, dep := range t.Dependencies() {
			if !dep.Resolved {
				continue
			}
			target, ok := g.Type(dep.Target)
			if !ok || target.Kind != model.Class {
				continue
			}
			findings = append(findings, NewFinding(DIP, r.Severity, t.Name, target.Name,
				fmt.Sprintf("%s depends on concrete type %s instead of an abstraction",
					t.Name, target.Name)))
		}
	}

	return findings
}
