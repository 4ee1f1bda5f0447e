package rules

import (
	"testing"

	"github.com/mohamedboly/solidlint/pkg/decl"
	"github.com/mohamedboly/solidlint/pkg/model"
)

// mustBuild assembles a graph from a listing, failing the test on any
// build error.
func mustBuild(t *testing.T, listing *decl.Listing) *model.Graph {
	t.Helper()
	g, err := model.Build(listing)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestPrincipleString(t *testing.T) {
	cases := map[Principle]string{
		SRP: "SRP",
		OCP: "OCP",
		LSP: "LSP",
		ISP: "ISP",
		DIP: "DIP",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("Principle(%d).String() = %q, want %q", p, got, want)
		}
	}
}

func TestParsePrinciple(t *testing.T) {
	p, err := ParsePrinciple("lsp")
	if err != nil {
		t.Fatalf("ParsePrinciple failed: %v", err)
	}
	if p != LSP {
		t.Errorf("Expected LSP, got %v", p)
	}

	if _, err := ParsePrinciple("DRY"); err == nil {
		t.Errorf("Expected error for unknown principle")
	}
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("warn")
	if err != nil {
		t.Fatalf("ParseSeverity failed: %v", err)
	}
	if s != Warning {
		t.Errorf("Expected Warning, got %v", s)
	}

	if _, err := ParseSeverity("fatal"); err == nil {
		t.Errorf("Expected error for unknown severity")
	}
}

func TestNewFinding_StableIdentity(t *testing.T) {
	a := NewFinding(LSP, Error, "Ostrich", "fly", "msg")
	b := NewFinding(LSP, Error, "Ostrich", "fly", "different msg")

	if a.ID != "LSP:Ostrich:fly" {
		t.Errorf("Unexpected ID %q", a.ID)
	}
	if a.ID != b.ID {
		t.Errorf("Same principle/type/member must yield the same ID")
	}
	if a.Fingerprint != b.Fingerprint {
		t.Errorf("Fingerprint must derive from the ID only")
	}
	if a.Fingerprint == "" {
		t.Errorf("Fingerprint must not be empty")
	}

	// Member-less findings drop the trailing segment
	c := NewFinding(SRP, Warning, "Video", "", "msg")
	if c.ID != "SRP:Video" {
		t.Errorf("Unexpected ID %q", c.ID)
	}
}

func TestDefaultSeverity(t *testing.T) {
	if DefaultSeverity(LSP) != Error || DefaultSeverity(DIP) != Error {
		t.Errorf("LSP and DIP must default to Error")
	}
	if DefaultSeverity(SRP) != Warning || DefaultSeverity(OCP) != Warning || DefaultSeverity(ISP) != Warning {
		t.Errorf("SRP, OCP and ISP must default to Warning")
	}
}

func TestDefaultRules_CoverAllPrinciples(t *testing.T) {
	seen := make(map[Principle]bool)
	for _, r := range DefaultRules() {
		seen[r.Principle()] = true
		if r.Name() == "" {
			t.Errorf("Rule for %v has empty name", r.Principle())
		}
	}
	for _, p := range []Principle{SRP, OCP, LSP, ISP, DIP} {
		if !seen[p] {
			t.Errorf("DefaultRules missing checker for %v", p)
		}
	}
}
