package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mohamedboly/solidlint/pkg/rules"
)

// chdir switches to dir for the duration of the test, like testing.T.Chdir
// (which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solidlint.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// No explicit path and no .solidlint.yaml in a scratch directory
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("Expected text format default, got %q", cfg.Format)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected info log level default, got %q", cfg.LogLevel)
	}
	if len(cfg.Rules) != 0 {
		t.Errorf("Expected all rules by default, got %v", cfg.Rules)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
format: json
log_level: debug
rules: [LSP, DIP]
severity:
  LSP: warning
workers: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "json" || cfg.LogLevel != "debug" || cfg.Workers != 2 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if len(cfg.Rules) != 2 {
		t.Errorf("Expected 2 rules, got %v", cfg.Rules)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Expected error for missing explicit config")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SOLIDLINT_FORMAT", "json")
	t.Setenv("SOLIDLINT_RULES", "SRP, ISP")
	t.Setenv("SOLIDLINT_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Env must override format, got %q", cfg.Format)
	}
	if len(cfg.Rules) != 2 || cfg.Rules[0] != "SRP" || cfg.Rules[1] != "ISP" {
		t.Errorf("Env rule list must be split and trimmed, got %v", cfg.Rules)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Env must override log level, got %q", cfg.LogLevel)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"bad format", func(c *Config) { c.Format = "xml" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"unknown rule", func(c *Config) { c.Rules = []string{"DRY"} }},
		{"unknown severity principle", func(c *Config) { c.Severity = map[string]string{"DRY": "error"} }},
		{"unknown severity value", func(c *Config) { c.Severity = map[string]string{"LSP": "fatal"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Normalize()
			tc.mut(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation error")
			}
		})
	}
}

func TestBuildRules_All(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	ruleset, err := cfg.BuildRules()
	if err != nil {
		t.Fatalf("BuildRules failed: %v", err)
	}
	if len(ruleset) != 5 {
		t.Errorf("Expected all 5 rules, got %d", len(ruleset))
	}
}

func TestBuildRules_SubsetAndOverride(t *testing.T) {
	cfg := &Config{
		Rules:    []string{"lsp", "srp"},
		Severity: map[string]string{"SRP": "error"},
	}
	cfg.Normalize()

	ruleset, err := cfg.BuildRules()
	if err != nil {
		t.Fatalf("BuildRules failed: %v", err)
	}
	if len(ruleset) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(ruleset))
	}

	for _, r := range ruleset {
		switch rule := r.(type) {
		case *rules.SRPRule:
			if rule.Severity != rules.Error {
				t.Errorf("Expected SRP severity override to Error, got %v", rule.Severity)
			}
		case *rules.LSPRule:
			if rule.Severity != rules.Error {
				t.Errorf("Expected LSP default Error, got %v", rule.Severity)
			}
		default:
			t.Errorf("Unexpected rule in subset: %s", r.Name())
		}
	}
}

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("test").
		Required("name", "").
		OneOf("mode", "zzz", []string{"a", "b"}).
		NonNegative("count", -1)

	if !cv.HasErrors() {
		t.Fatalf("Expected errors")
	}
	if len(cv.Errors()) != 3 {
		t.Errorf("Expected all 3 errors collected, got %d", len(cv.Errors()))
	}
	if cv.Validate() == nil {
		t.Errorf("Validate must report failure")
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("test").
		When(false, func(cv *ConfigValidator) { cv.Required("skipped", "") }).
		When(true, func(cv *ConfigValidator) { cv.Required("checked", "") })

	if len(cv.Errors()) != 1 {
		t.Errorf("Expected only the active branch to validate, got %d errors", len(cv.Errors()))
	}
}
