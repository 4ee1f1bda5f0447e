package rules

import (
	"strings"
	"testing"

	"github.com/mohamedboly/solidlint/pkg/decl"
)

func srpGraph(t *testing.T, deps ...string) Graph {
	t.Helper()
	return mustBuild(t, &decl.Listing{
		Types: []decl.TypeDecl{
			{Name: "Video", Kind: decl.KindClass, Dependencies: deps},
		},
	})
}

// TestSRPRule_MixedResponsibilities covers the canonical scenario: a
// persistence dependency next to a communication dependency.
func TestSRPRule_MixedResponsibilities(t *testing.T) {
	g := srpGraph(t, "MailSender", "VideoRepository")

	findings := NewSRPRule().Check(g)

	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Principle != SRP {
		t.Errorf("Expected SRP, got %v", f.Principle)
	}
	if f.Type != "Video" {
		t.Errorf("Expected finding on Video, got %s", f.Type)
	}
	if f.Member != "" {
		t.Errorf("SRP findings concern the whole type, got member %q", f.Member)
	}
	if !strings.Contains(f.Message, "communication") || !strings.Contains(f.Message, "persistence") {
		t.Errorf("Message should name the mixed categories: %q", f.Message)
	}
}

// TestSRPRule_SingleCategory: one category, no mix, no finding.
func TestSRPRule_SingleCategory(t *testing.T) {
	cases := []struct {
		name string
		deps []string
	}{
		{"communication only", []string{"MailSender"}},
		{"persistence only", []string{"VideoRepository", "UserDAO", "DatabaseConnection"}},
		{"domain only", []string{"Order", "Invoice"}},
		{"no dependencies", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := srpGraph(t, tc.deps...)
			if findings := NewSRPRule().Check(g); len(findings) != 0 {
				t.Errorf("Expected no findings, got %d", len(findings))
			}
		})
	}
}

// TestSRPRule_DomainPlusTechnical: a domain dependency next to any
// technical one is a mix.
func TestSRPRule_DomainPlusTechnical(t *testing.T) {
	g := srpGraph(t, "Order", "OrderRepository")

	findings := NewSRPRule().Check(g)
	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}
	if !strings.Contains(findings[0].Message, "domain") {
		t.Errorf("Message should name the domain category: %q", findings[0].Message)
	}
}

// TestSRPRule_BareSuffixIsDomain: a dependency literally named
// "Repository" has no domain part and stays a domain name.
func TestSRPRule_BareSuffixIsDomain(t *testing.T) {
	g := srpGraph(t, "Repository", "Order")

	if findings := NewSRPRule().Check(g); len(findings) != 0 {
		t.Errorf("Expected no findings, got %d", len(findings))
	}
}

func TestCategorize(t *testing.T) {
	cases := map[string]string{
		"VideoRepository":    categoryPersistence,
		"UserDAO":            categoryPersistence,
		"DatabaseConnection": categoryPersistence,
		"MailSender":         categoryCommunication,
		"HTTPClient":         categoryCommunication,
		"Order":              categoryDomain,
		"Repository":         categoryDomain,
	}
	for target, want := range cases {
		if got := categorize(target); got != want {
			t.Errorf("categorize(%q) = %q, want %q", target, got, want)
		}
	}
}
