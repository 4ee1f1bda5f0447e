package model

import "sort"

// Stats summarizes a built graph.
type Stats struct {
	Types            int
	Classes          int
	Interfaces       int
	InheritanceEdges int
	DependencyEdges  int
}

// Graph is the immutable type graph. All accessors return data in
// deterministic order so every traversal over the same graph visits
// the same elements in the same sequence.
type Graph struct {
	types        map[string]*Type
	names        []string
	implementers map[string][]string
	stats        Stats
}

// Type returns the declared type with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	t, ok := g.types[name]
	return t, ok
}

// Types returns all declared types sorted by name.
func (g *Graph) Types() []*Type {
	out := make([]*Type, 0, len(g.names))
	for _, name := range g.names {
		out = append(out, g.types[name])
	}
	return out
}

// Implementers returns the names of types with a direct inheritance
// edge to the named type, sorted.
func (g *Graph) Implementers(name string) []string {
	impls := g.implementers[name]
	out := make([]string, len(impls))
	copy(out, impls)
	return out
}

// Dependencies returns the named type's dependency edges sorted by
// target, or nil for an unknown type.
func (g *Graph) Dependencies(name string) []Dependency {
	t, ok := g.types[name]
	if !ok {
		return nil
	}
	return t.Dependencies()
}

// Stats returns summary counts for the graph.
func (g *Graph) Stats() Stats {
	return g.stats
}

// freeze finalizes the graph after construction: sorts the name table,
// precomputes the implementer index, and tallies stats.
func (g *Graph) freeze() {
	g.names = make([]string, 0, len(g.types))
	for name := range g.types {
		g.names = append(g.names, name)
	}
	sort.Strings(g.names)

	g.implementers = make(map[string][]string)
	for _, name := range g.names {
		t := g.types[name]
		for _, super := range t.Supertypes {
			g.implementers[super] = append(g.implementers[super], name)
		}
	}
	for super := range g.implementers {
		sort.Strings(g.implementers[super])
	}

	g.stats = Stats{Types: len(g.types)}
	for _, name := range g.names {
		t := g.types[name]
		if t.Kind == Interface {
			g.stats.Interfaces++
		} else {
			g.stats.Classes++
		}
		g.stats.InheritanceEdges += len(t.Supertypes)
		g.stats.DependencyEdges += len(t.dependencies)
	}
}
