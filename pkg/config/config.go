// Package config loads the .solidlint.yaml run configuration, with
// optional .env support and SOLIDLINT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mohamedboly/solidlint/pkg/report"
	"github.com/mohamedboly/solidlint/pkg/rules"
)

// DefaultFile is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFile = ".solidlint.yaml"

// Config controls a lint run. The zero value plus Normalize yields the
// defaults: all rules, text output on stdout, info logging.
type Config struct {
	// Rules selects the enabled checkers by principle name (SRP, OCP,
	// LSP, ISP, DIP). Empty means all five.
	Rules []string `yaml:"rules"`
	// Severity overrides the default severity per principle,
	// e.g. {SRP: error}.
	Severity map[string]string `yaml:"severity"`
	// Format is the report format: text or json.
	Format string `yaml:"format"`
	// Output is the report destination path; empty means stdout.
	Output string `yaml:"output"`
	// MetricsFile, when set, receives run metrics in Prometheus
	// textfile-collector format.
	MetricsFile string `yaml:"metrics_file"`
	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Workers sizes the checker worker pool. Zero means one worker
	// per rule.
	Workers int `yaml:"workers"`
}

// Load reads the configuration. A .env file in the working directory is
// applied first when present, then the YAML file (the explicit path, or
// DefaultFile if it exists), then SOLIDLINT_* environment overrides.
// An explicit path that does not exist is an error; a missing
// DefaultFile is not.
func Load(path string) (*Config, error) {
	// Missing .env is the common case, not a failure.
	_ = godotenv.Load()

	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SOLIDLINT_RULES"); v != "" {
		c.Rules = splitList(v)
	}
	if v := os.Getenv("SOLIDLINT_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("SOLIDLINT_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("SOLIDLINT_METRICS_FILE"); v != "" {
		c.MetricsFile = v
	}
	if v := os.Getenv("SOLIDLINT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Normalize fills defaults for unset fields.
func (c *Config) Normalize() {
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the configuration, collecting every problem before
// reporting.
func (c *Config) Validate() error {
	cv := NewConfigValidator("solidlint").
		OneOf("format", c.Format, []string{report.FormatText, report.FormatJSON}).
		OneOf("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "warning", "error"}).
		NonNegative("workers", c.Workers)

	for _, name := range c.Rules {
		cv.Custom("rules", func() error {
			_, err := rules.ParsePrinciple(name)
			return err
		})
	}
	for principle, severity := range c.Severity {
		cv.Custom("severity", func() error {
			if _, err := rules.ParsePrinciple(principle); err != nil {
				return err
			}
			_, err := rules.ParseSeverity(severity)
			return err
		})
	}

	return cv.Validate()
}

// BuildRules constructs the configured checker set: the selected
// principles (all five when none selected) at their default severities,
// with any per-principle overrides applied. Checker order follows the
// default registration order regardless of selection order; the engine
// result is order-insensitive anyway.
func (c *Config) BuildRules() ([]rules.Rule, error) {
	selected := make(map[rules.Principle]bool)
	for _, name := range c.Rules {
		p, err := rules.ParsePrinciple(name)
		if err != nil {
			return nil, err
		}
		selected[p] = true
	}

	overrides := make(map[rules.Principle]rules.Severity)
	for principle, severity := range c.Severity {
		p, err := rules.ParsePrinciple(principle)
		if err != nil {
			return nil, err
		}
		s, err := rules.ParseSeverity(severity)
		if err != nil {
			return nil, err
		}
		overrides[p] = s
	}

	var out []rules.Rule
	for _, r := range rules.DefaultRules() {
		if len(selected) > 0 && !selected[r.Principle()] {
			continue
		}
		if s, ok := overrides[r.Principle()]; ok {
			applySeverity(r, s)
		}
		out = append(out, r)
	}
	return out, nil
}

func applySeverity(r rules.Rule, s rules.Severity) {
	switch rule := r.(type) {
	case *rules.SRPRule:
		rule.Severity = s
	case *rules.OCPRule:
		rule.Severity = s
	case *rules.LSPRule:
		rule.Severity = s
	case *rules.ISPRule:
		rule.Severity = s
	case *rules.DIPRule:
		rule.Severity = s
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
