package model

import (
	"sort"

	"github.com/mohamedboly/solidlint/pkg/decl"
)

// Build assembles the immutable graph from a declaration listing.
// It validates that every type name is unique, every referenced
// supertype exists, no inheritance cycles exist, and no type declares
// the same method signature twice. Any violation aborts the build with
// a BuildError naming the offenders.
func Build(listing *decl.Listing) (*Graph, error) {
	g := &Graph{types: make(map[string]*Type)}

	for _, td := range listing.Types {
		if _, exists := g.types[td.Name]; exists {
			return nil, duplicateTypeError(td.Name)
		}
		t, err := buildType(td)
		if err != nil {
			return nil, err
		}
		g.types[td.Name] = t
	}

	if err := resolveSupertypes(g); err != nil {
		return nil, err
	}
	if err := checkInheritanceCycles(g); err != nil {
		return nil, err
	}
	resolveDependencies(g, listing)

	g.freeze()
	return g, nil
}

func buildType(td decl.TypeDecl) (*Type, error) {
	kind, err := parseKind(td.Kind)
	if err != nil {
		return nil, &BuildError{Op: "build", TypeName: td.Name, Names: []string{td.Kind}, Cause: ErrInvalidKind}
	}

	t := &Type{
		Name:       td.Name,
		Kind:       kind,
		Markers:    append([]string(nil), td.Markers...),
		Supertypes: append([]string(nil), td.Implements...),
		methods:    make(map[string]*Method),
	}
	sort.Strings(t.Supertypes)

	for _, fd := range td.Fields {
		t.Fields = append(t.Fields, Field{Name: fd.Name, Type: fd.Type})
	}

	for _, md := range td.Methods {
		behavior, err := parseBehavior(md.Behavior)
		if err != nil {
			return nil, &BuildError{Op: "build", TypeName: td.Name, Names: []string{md.Name, md.Behavior}, Cause: ErrInvalidBehavior}
		}
		m := &Method{
			Name:     md.Name,
			Arity:    md.Arity,
			Returns:  md.Returns,
			Behavior: behavior,
			Owner:    td.Name,
		}
		key := methodKey(m.Name, m.Arity)
		if _, exists := t.methods[key]; exists {
			return nil, duplicateMethodError(td.Name, m.Signature())
		}
		t.methods[key] = m
	}

	return t, nil
}

// resolveSupertypes verifies every referenced supertype is declared.
func resolveSupertypes(g *Graph) error {
	for _, name := range sortedNames(g.types) {
		t := g.types[name]
		var unknown []string
		for _, super := range t.Supertypes {
			if _, ok := g.types[super]; !ok {
				unknown = append(unknown, super)
			}
		}
		if len(unknown) > 0 {
			return unknownTypeError(name, unknown...)
		}
	}
	return nil
}

// Three-color DFS marking. A gray node reached again is a back edge,
// which means the inheritance relation contains a cycle.
const (
	white = iota // unvisited
	gray         // in the recursion stack
	black        // finished
)

// checkInheritanceCycles walks the implements/extends edges from every
// unvisited type so disconnected components are covered. The first
// cycle found aborts the build with the cycle path in forward order.
func checkInheritanceCycles(g *Graph) error {
	color := make(map[string]int)
	parent := make(map[string]string)

	for _, name := range sortedNames(g.types) {
		if color[name] != white {
			continue
		}
		if path := dfsFindCycle(g, name, color, parent); path != nil {
			return cycleError(path)
		}
	}
	return nil
}

func dfsFindCycle(g *Graph, name string, color map[string]int, parent map[string]string) []string {
	color[name] = gray

	for _, super := range g.types[name].Supertypes {
		switch color[super] {
		case white:
			parent[super] = name
			if path := dfsFindCycle(g, super, color, parent); path != nil {
				return path
			}
		case gray:
			return extractCycle(super, name, parent)
		}
		// black supertypes are forward/cross edges, no cycle here
	}

	color[name] = black
	return nil
}

// extractCycle reconstructs the cycle from parent pointers given a back
// edge end→start, returning the path in forward edge order
// (start, ..., end).
func extractCycle(start, end string, parent map[string]string) []string {
	reversed := []string{end}
	for current := end; current != start; {
		p, ok := parent[current]
		if !ok {
			break
		}
		reversed = append(reversed, p)
		current = p
	}

	path := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// resolveDependencies builds each type's dependency edges: the declared
// dependencies plus any field whose type resolves to a declared type.
// Primitive or unknown field types create no edge; explicitly declared
// targets are kept even when external.
func resolveDependencies(g *Graph, listing *decl.Listing) {
	for _, td := range listing.Types {
		t := g.types[td.Name]

		seen := make(map[string]bool)
		add := func(target string) {
			if target == "" || seen[target] {
				return
			}
			seen[target] = true
			_, resolved := g.types[target]
			t.dependencies = append(t.dependencies, Dependency{
				From:     td.Name,
				Target:   target,
				Resolved: resolved,
			})
		}

		for _, target := range td.Dependencies {
			add(target)
		}
		for _, fd := range td.Fields {
			if _, declared := g.types[fd.Type]; declared {
				add(fd.Type)
			}
		}

		sort.Slice(t.dependencies, func(i, j int) bool {
			return t.dependencies[i].Target < t.dependencies[j].Target
		})
	}
}

func parseKind(s string) (Kind, error) {
	switch s {
	case decl.KindClass:
		return Class, nil
	case decl.KindInterface:
		return Interface, nil
	default:
		return Class, ErrInvalidKind
	}
}

func parseBehavior(s string) (Behavior, error) {
	switch s {
	case decl.BehaviorNormal, "":
		return Normal, nil
	case decl.BehaviorThrowsUnsupported:
		return ThrowsUnsupported, nil
	case decl.BehaviorNoOp:
		return NoOp, nil
	case decl.BehaviorTypeSwitch:
		return TypeSwitch, nil
	default:
		return Normal, ErrInvalidBehavior
	}
}

func sortedNames(types map[string]*Type) []string {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
