package rules

import (
	"time"

	"github.com/mohamedboly/solidlint/pkg/logging"
	"github.com/mohamedboly/solidlint/pkg/parallel"
)

// RuleObserver is notified after each checker completes. The engine
// calls it from worker goroutines; observers must be safe for
// concurrent use (the metrics registry is).
type RuleObserver func(rule string, findings int, elapsed time.Duration)

// Engine runs a configured set of checkers against a graph. The graph
// is immutable and each checker writes only to its own result slot, so
// checkers fan out over a worker pool with no locking; the merged
// result is identical to running them sequentially.
type Engine struct {
	rules    []Rule
	workers  int
	logger   logging.Logger
	observer RuleObserver
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithWorkers sets the worker pool size. Defaults to one worker per rule.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) { e.workers = n }
}

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithRuleObserver registers a per-rule completion callback.
func WithRuleObserver(fn RuleObserver) EngineOption {
	return func(e *Engine) { e.observer = fn }
}

// NewEngine creates an engine over the given checkers. A nil or empty
// rule set means all five default checkers.
func NewEngine(rules []Rule, opts ...EngineOption) *Engine {
	e := &Engine{
		rules:  rules,
		logger: logging.NewNopLogger(),
	}
	if len(e.rules) == 0 {
		e.rules = DefaultRules()
	}
	if e.workers == 0 {
		e.workers = len(e.rules)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the configured checkers.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Run executes every checker against the graph and returns the merged
// findings in rule registration order. Checker order never affects the
// result set; the aggregator imposes the canonical report order.
func (e *Engine) Run(g Graph) []Finding {
	results := make([][]Finding, len(e.rules))

	pool := parallel.NewWorkerPool(e.workers)
	for i, rule := range e.rules {
		i, rule := i, rule
		pool.Submit(func() {
			start := time.Now()
			results[i] = rule.Check(g)
			elapsed := time.Since(start)

			e.logger.Debug("checker finished",
				logging.String("rule", rule.Name()),
				logging.Count(len(results[i])),
				logging.Latency(elapsed))
			if e.observer != nil {
				e.observer(rule.Name(), len(results[i]), elapsed)
			}
		})
	}
	pool.Wait()

	merged := make([]Finding, 0)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}
