package rules

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mohamedboly/solidlint/pkg/decl"
	"github.com/mohamedboly/solidlint/pkg/model"
)

// randomListing builds a pseudo-random but always well-formed listing
// from a seed: types implement only earlier-declared types, so the
// inheritance relation is acyclic by construction.
func randomListing(seed int64) *decl.Listing {
	rng := rand.New(rand.NewSource(seed))

	kinds := []string{decl.KindClass, decl.KindInterface}
	behaviors := []string{
		decl.BehaviorNormal,
		decl.BehaviorThrowsUnsupported,
		decl.BehaviorNoOp,
		decl.BehaviorTypeSwitch,
	}
	methodNames := []string{"play", "save", "calculate", "send", "close"}
	depTargets := []string{"MailSender", "OrderRepository", "UserDAO", "HTTPClient", "Order", "Invoice"}

	n := 2 + rng.Intn(8)
	listing := &decl.Listing{}
	for i := 0; i < n; i++ {
		td := decl.TypeDecl{
			Name: fmt.Sprintf("Type%d", i),
			Kind: kinds[rng.Intn(len(kinds))],
		}
		if rng.Intn(3) == 0 {
			td.Markers = []string{decl.MarkerServiceLayer}
		}
		for j := 0; j < i && len(td.Implements) < 2; j++ {
			if rng.Intn(4) == 0 {
				td.Implements = append(td.Implements, fmt.Sprintf("Type%d", j))
			}
		}
		for _, name := range methodNames {
			if rng.Intn(2) == 0 {
				td.Methods = append(td.Methods, decl.MethodDecl{
					Name:     name,
					Arity:    rng.Intn(3),
					Returns:  "void",
					Behavior: behaviors[rng.Intn(len(behaviors))],
				})
			}
		}
		for _, target := range depTargets {
			if rng.Intn(4) == 0 {
				td.Dependencies = append(td.Dependencies, target)
			}
		}
		if i > 0 && rng.Intn(3) == 0 {
			td.Dependencies = append(td.Dependencies, fmt.Sprintf("Type%d", rng.Intn(i)))
		}
		listing.Types = append(listing.Types, td)
	}
	return listing
}

func sortFindings(findings []Finding) []Finding {
	out := make([]Finding, len(findings))
	copy(out, findings)
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// TestEngine_ParallelMatchesSequential verifies the engine's result set
// is independent of checker scheduling for arbitrary graphs.
func TestEngine_ParallelMatchesSequential(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("parallel run equals sequential run", prop.ForAll(
		func(seed int64) bool {
			g, err := model.Build(randomListing(seed))
			if err != nil {
				return false
			}

			var sequential []Finding
			for _, r := range DefaultRules() {
				sequential = append(sequential, r.Check(g)...)
			}

			parallel := NewEngine(nil, WithWorkers(3)).Run(g)

			return reflect.DeepEqual(sortFindings(sequential), sortFindings(parallel))
		},
		gen.Int64(),
	))

	properties.Property("repeated runs yield identical findings", prop.ForAll(
		func(seed int64) bool {
			g, err := model.Build(randomListing(seed))
			if err != nil {
				return false
			}

			engine := NewEngine(nil)
			first := engine.Run(g)
			second := engine.Run(g)

			return reflect.DeepEqual(sortFindings(first), sortFindings(second))
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestEngine_DefaultsToAllRules(t *testing.T) {
	engine := NewEngine(nil)
	if len(engine.Rules()) != 5 {
		t.Errorf("Expected 5 default rules, got %d", len(engine.Rules()))
	}
}

func TestEngine_SubsetRuns(t *testing.T) {
	g := mustBuild(t, orderListing("MySQLOrderRepository"))

	engine := NewEngine([]Rule{NewDIPRule()})
	findings := engine.Run(g)

	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}
	if findings[0].Principle != DIP {
		t.Errorf("Expected only DIP findings, got %v", findings[0].Principle)
	}
}

func TestEngine_RuleObserver(t *testing.T) {
	g := mustBuild(t, orderListing("OrderRepository"))

	var mu sync.Mutex
	seen := make(map[string]bool)
	engine := NewEngine(nil, WithRuleObserver(func(rule string, findings int, elapsed time.Duration) {
		mu.Lock()
		seen[rule] = true
		mu.Unlock()
	}))
	engine.Run(g)

	if len(seen) != 5 {
		t.Errorf("Expected observer calls for all 5 rules, got %d", len(seen))
	}
}
