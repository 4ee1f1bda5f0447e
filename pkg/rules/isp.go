package rules

import (
	"fmt"

	"github.com/mohamedboly/solidlint/pkg/model"
)

// ISPRule flags interfaces that are too broad for at least one
// implementer: a type stubbing out an interface method (unsupported or
// empty) while a sibling implementer provides a real implementation is
// being forced to carry a method it does not use.
type ISPRule struct {
	Severity Severity
}

// NewISPRule creates the interface segregation checker at its default severity.
func NewISPRule() *ISPRule {
	return &ISPRule{Severity: DefaultSeverity(ISP)}
}

func (r *ISPRule) Name() string { return "interface-segregation" }

func (r *ISPRule) Principle() Principle { return ISP }

// Check examines every interface method across its direct implementers.
func (r *ISPRule) Check(g Graph) []Finding {
	findings := make([]Finding, 0)

	for _, iface := range g.Types() {
		if iface.Kind != model.Interface {
			continue
		}
		implementers := g.Implementers(iface.Name)
		if len(implementers) < 2 {
			// A stub needs a sibling with a real implementation to
			// prove the method is usable at all.
			continue
		}

		for _, method := range iface.Methods() {
			var stubbed []*model.Type
			anyNormal := false

			for _, implName := range implementers {
				impl, ok := g.Type(implName)
				if !ok {
					continue
				}
				override, ok := impl.Method(method.Name, method.Arity)
				if !ok {
					continue
				}
				switch override.Behavior {
				case model.Normal:
					anyNormal = true
				case model.ThrowsUnsupported, model.NoOp:
					stubbed = append(stubbed, impl)
				}
			}

			if !anyNormal {
				continue
			}
			for _, impl := range stubbed {
				findings = append(findings, NewFinding(ISP, r.Severity, impl.Name, method.Name,
					fmt.Sprintf("%s is forced to implement %s.%s but does not use it",
						impl.Name, iface.Name, method.Name)))
			}
		}
	}

	return findings
}
