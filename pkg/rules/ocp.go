package rules

import (
	"fmt"

	"github.com/mohamedboly/solidlint/pkg/model"
)

// OCPRule flags methods tagged type-switch: a method that branches on a
// type or category tag to select behavior must be modified every time a
// new category appears, instead of being closed against modification.
//
// A type-switch method declared on an interface that has implementers
// in the graph is exempt: the dispatch is already modeled
// polymorphically and the tag marks the contract, not a branch.
type OCPRule struct {
	Severity Severity
}

// NewOCPRule creates the open/closed checker at its default severity.
func NewOCPRule() *OCPRule {
	return &OCPRule{Severity: DefaultSeverity(OCP)}
}

func (r *OCPRule) Name() string { return "open-closed" }

func (r *OCPRule) Principle() Principle { return OCP }

// Check examines every method carrying the type-switch tag.
func (r *OCPRule) Check(g Graph) []Finding {
	findings := make([]Finding, 0)

	for _, t := range g.Types() {
		if t.Kind == model.Interface && len(g.Implementers(t.Name)) > 0 {
			continue
		}
		for _, m := range t.Methods() {
			if m.Behavior != model.TypeSwitch {
				continue
			}
			findings = append(findings, NewFinding(OCP, r.Severity, t.Name, m.Name,
				fmt.Sprintf("%s.%s branches on type; consider polymorphic dispatch via an interface",
					t.Name, m.Name)))
		}
	}

	return findings
}
