// Package rules implements the five design-principle checkers. Each
// checker is a total function over a valid graph: it never fails, emits
// zero or more findings, and shares no mutable state with its siblings,
// so checkers may run in any order or in parallel over the same graph.
package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mohamedboly/solidlint/pkg/model"
)

// Graph defines the read-only operations the checkers need. It is
// implemented by *model.Graph; the interface keeps checkers testable
// against small fixtures and decoupled from graph construction.
type Graph interface {
	// Type returns the declared type with the given name.
	Type(name string) (*model.Type, bool)
	// Types returns all declared types sorted by name.
	Types() []*model.Type
	// Implementers returns names of types with a direct inheritance
	// edge to the named type, sorted.
	Implementers(name string) []string
}

// Principle identifies one of the five design principles.
type Principle int

const (
	SRP Principle = iota
	OCP
	LSP
	ISP
	DIP
)

func (p Principle) String() string {
	switch p {
	case SRP:
		return "SRP"
	case OCP:
		return "OCP"
	case LSP:
		return "LSP"
	case ISP:
		return "ISP"
	case DIP:
		return "DIP"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the principle name rather than its ordinal so
// reports stay readable and stable.
func (p Principle) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// ParsePrinciple converts a principle name to a Principle.
func ParsePrinciple(s string) (Principle, error) {
	switch strings.ToUpper(s) {
	case "SRP":
		return SRP, nil
	case "OCP":
		return OCP, nil
	case "LSP":
		return LSP, nil
	case "ISP":
		return ISP, nil
	case "DIP":
		return DIP, nil
	default:
		return SRP, fmt.Errorf("unknown principle %q", s)
	}
}

// Severity indicates the importance of a finding.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the severity name rather than its ordinal.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("unknown severity %q", s)
	}
}

// findingNamespace is the fixed UUID namespace for finding
// fingerprints. Fingerprints are UUIDv5 over the stable ID, so the same
// finding hashes to the same fingerprint on every run and every
// machine.
var findingNamespace = uuid.MustParse("6f9b2a54-30f1-4c8e-9d1a-8a1c51a8f0d3")

// Finding is a single reported structural issue tied to one design
// principle. Member is the offending method name, or the related type
// name for type-to-type findings (DIP); it may be empty for findings
// that concern the type as a whole (SRP).
type Finding struct {
	Principle   Principle `json:"principle"`
	Severity    Severity  `json:"severity"`
	Type        string    `json:"type"`
	Member      string    `json:"member,omitempty"`
	Message     string    `json:"message"`
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
}

// NewFinding builds a finding with its stable ID and fingerprint.
func NewFinding(p Principle, sev Severity, typeName, member, message string) Finding {
	id := p.String() + ":" + typeName
	if member != "" {
		id += ":" + member
	}
	return Finding{
		Principle:   p,
		Severity:    sev,
		Type:        typeName,
		Member:      member,
		Message:     message,
		ID:          id,
		Fingerprint: uuid.NewSHA1(findingNamespace, []byte(id)).String(),
	}
}

// Rule is the interface all checkers implement. Check must be total
// over a valid graph and must not retain or mutate shared state.
type Rule interface {
	// Name returns a human-readable name for the checker.
	Name() string
	// Principle returns the principle this checker enforces.
	Principle() Principle
	// Check runs the checker against the graph.
	// Returns the findings (empty if the graph is clean).
	Check(g Graph) []Finding
}

// DefaultSeverity returns the default severity for a principle.
// Contract-breaking findings (LSP, DIP) default to Error; design-smell
// findings (SRP, OCP, ISP) default to Warning.
func DefaultSeverity(p Principle) Severity {
	switch p {
	case LSP, DIP:
		return Error
	default:
		return Warning
	}
}

// DefaultRules returns all five checkers at their default severities.
func DefaultRules() []Rule {
	return []Rule{
		NewSRPRule(),
		NewOCPRule(),
		NewLSPRule(),
		NewISPRule(),
		NewDIPRule(),
	}
}
