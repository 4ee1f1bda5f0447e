package rules

import (
	"fmt"

	"github.com/mohamedboly/solidlint/pkg/model"
)

// LSPRule flags subtype overrides that refuse the supertype's contract:
// a child overriding an inherited method with an unconditional
// unsupported-operation failure cannot substitute for its parent.
// Only direct inheritance edges are examined. A parent that itself
// declares the method as throws-unsupported never promised the
// contract, so matching child overrides produce no finding.
type LSPRule struct {
	Severity Severity
}

// NewLSPRule creates the Liskov substitution checker at its default severity.
func NewLSPRule() *LSPRule {
	return &LSPRule{Severity: DefaultSeverity(LSP)}
}

func (r *LSPRule) Name() string { return "liskov-substitution" }

func (r *LSPRule) Principle() Principle { return LSP }

// Check examines every inheritance edge Child→Parent and every method
// declared on both ends.
func (r *LSPRule) Check(g Graph) []Finding {
	findings := make([]Finding, 0)

	for _, child := range g.Types() {
		for _, superName := range child.Supertypes {
			parent, ok := g.Type(superName)
			if !ok {
				continue
			}
			for _, inherited := range parent.Methods() {
				override, ok := child.Method(inherited.Name, inherited.Arity)
				if !ok {
					continue
				}
				if override.Behavior != model.ThrowsUnsupported {
					continue
				}
				if inherited.Behavior == model.ThrowsUnsupported {
					// The contract was never promised by the parent.
					continue
				}
				findings = append(findings, NewFinding(LSP, r.Severity, child.Name, inherited.Name,
					fmt.Sprintf("%s cannot honor %s's contract for method %s",
						child.Name, parent.Name, inherited.Name)))
			}
		}
	}

	return findings
}
