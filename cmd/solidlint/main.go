// solidlint checks a declared model of object-oriented code against the
// five SOLID design principles and prints a deterministic findings
// report. Exit code 0 means no findings, 1 means findings, 2 means the
// input or configuration was unusable.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mohamedboly/solidlint/pkg/config"
	"github.com/mohamedboly/solidlint/pkg/decl"
	"github.com/mohamedboly/solidlint/pkg/logging"
	"github.com/mohamedboly/solidlint/pkg/metrics"
	"github.com/mohamedboly/solidlint/pkg/model"
	"github.com/mohamedboly/solidlint/pkg/report"
	"github.com/mohamedboly/solidlint/pkg/rules"
)

var version = "1.0.0"

// Exit codes. Findings are a result, not an error; only unusable input
// or environment reaches exitError.
const (
	exitClean    = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solidlint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "config file (default .solidlint.yaml when present)")
	format := fs.String("format", "", "report format: text or json")
	output := fs.String("o", "", "write the report to a file instead of stdout")
	ruleList := fs.String("rules", "", "comma-separated principle subset (SRP,OCP,LSP,ISP,DIP)")
	metricsFile := fs.String("metrics-file", "", "write run metrics in Prometheus textfile format")
	logLevel := fs.String("log-level", "", "minimum log level: debug, info, warn, error")
	var showVersion bool
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.BoolVar(&showVersion, "V", false, "print version and exit (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: solidlint [flags] <listing.yaml|dir|->...\n\n")
		fmt.Fprintf(stderr, "Analyzes a declaration listing for SOLID principle violations.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if showVersion {
		fmt.Fprintf(stdout, "solidlint %s\n", version)
		return exitClean
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitError
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "solidlint: %v\n", err)
		return exitError
	}
	applyFlags(cfg, format, output, ruleList, metricsFile, logLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "solidlint: %v\n", err)
		return exitError
	}

	logger := logging.NewJSONLogger(stderr, logging.ParseLevel(cfg.LogLevel))
	reg := metrics.NewRegistry()

	rep, err := analyze(cfg, fs.Args(), logger, reg)
	if err != nil {
		fmt.Fprintf(stderr, "solidlint: %v\n", err)
		reg.RecordRun("error")
		writeMetrics(cfg, reg, logger)
		return exitError
	}

	out := io.Writer(stdout)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			fmt.Fprintf(stderr, "solidlint: %v\n", err)
			return exitError
		}
		defer f.Close()
		out = f
	}
	if err := report.Render(out, rep, cfg.Format); err != nil {
		fmt.Fprintf(stderr, "solidlint: render report: %v\n", err)
		return exitError
	}

	if rep.Clean() {
		reg.RecordRun("clean")
		writeMetrics(cfg, reg, logger)
		return exitClean
	}
	reg.RecordRun("findings")
	writeMetrics(cfg, reg, logger)
	return exitFindings
}

// analyze runs load → build → check → aggregate.
func analyze(cfg *config.Config, paths []string, logger logging.Logger, reg *metrics.Registry) (*report.Report, error) {
	listing, err := decl.LoadPaths(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("listings loaded", logging.Count(len(listing.Types)))

	start := time.Now()
	graph, err := model.Build(listing)
	if err != nil {
		return nil, err
	}
	reg.RecordBuild(time.Since(start))

	stats := graph.Stats()
	reg.SetGraphSize(stats.Types, stats.InheritanceEdges+stats.DependencyEdges)
	logger.Info("graph built",
		logging.Int("types", stats.Types),
		logging.Int("inheritance_edges", stats.InheritanceEdges),
		logging.Int("dependency_edges", stats.DependencyEdges))

	ruleset, err := cfg.BuildRules()
	if err != nil {
		return nil, err
	}

	engine := rules.NewEngine(ruleset,
		rules.WithWorkers(cfg.Workers),
		rules.WithLogger(logger),
		rules.WithRuleObserver(func(rule string, findings int, elapsed time.Duration) {
			reg.RecordRule(rule, elapsed)
		}))
	findings := engine.Run(graph)

	rep := report.Aggregate(findings, stats)
	for _, f := range rep.Findings {
		reg.RecordFinding(f.Principle.String(), f.Severity.String())
	}
	logger.Info("analysis complete", logging.Count(rep.Summary.Total))
	return rep, nil
}

// applyFlags lets command-line flags override config file and env values.
func applyFlags(cfg *config.Config, format, output, ruleList, metricsFile, logLevel *string) {
	if *format != "" {
		cfg.Format = *format
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *ruleList != "" {
		cfg.Rules = nil
		for _, name := range strings.Split(*ruleList, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Rules = append(cfg.Rules, name)
			}
		}
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
}

func writeMetrics(cfg *config.Config, reg *metrics.Registry, logger logging.Logger) {
	if cfg.MetricsFile == "" {
		return
	}
	if err := reg.WriteFile(cfg.MetricsFile); err != nil {
		logger.Error("write metrics file", logging.Path(cfg.MetricsFile), logging.Error(err))
	}
}

