// Package model holds the immutable type graph the checkers run
// against: classes and interfaces, their methods with body-behavior
// tags, inheritance edges, and dependency edges. The graph is built
// once per run from a declaration listing and never mutated afterwards.
package model

import (
	"fmt"
	"sort"
)

// Kind distinguishes classes from interfaces.
type Kind int

const (
	Class Kind = iota
	Interface
)

func (k Kind) String() string {
	switch k {
	case Class:
		return "class"
	case Interface:
		return "interface"
	default:
		return "unknown"
	}
}

// Behavior is the body-behavior tag declared on a method. Checkers
// read these tags instead of executing real code.
type Behavior int

const (
	// Normal marks a method that performs its declared contract.
	Normal Behavior = iota
	// ThrowsUnsupported marks a method that unconditionally signals an
	// unsupported-operation failure instead of honoring the inherited
	// contract.
	ThrowsUnsupported
	// NoOp marks a method with an empty body.
	NoOp
	// TypeSwitch marks a method that branches on a type or category tag
	// to select behavior.
	TypeSwitch
)

func (b Behavior) String() string {
	switch b {
	case Normal:
		return "normal"
	case ThrowsUnsupported:
		return "throws-unsupported"
	case NoOp:
		return "no-op"
	case TypeSwitch:
		return "type-switch"
	default:
		return "unknown"
	}
}

// Method is owned by exactly one Type. Methods are matched across the
// inheritance graph by (name, arity), never by resolution order.
type Method struct {
	Name     string
	Arity    int
	Returns  string
	Behavior Behavior
	Owner    string
}

// Signature returns the name/arity key identifying this method within
// its owner.
func (m *Method) Signature() string {
	return fmt.Sprintf("%s/%d", m.Name, m.Arity)
}

// Field is a declared field on a type.
type Field struct {
	Name string
	Type string
}

// Dependency is a "directly constructs/owns" edge from a type to a
// target name. Resolved reports whether the target is declared in the
// graph; external targets keep their name but resolve to nothing.
type Dependency struct {
	From     string
	Target   string
	Resolved bool
}

// Type is a class or interface in the graph.
type Type struct {
	Name       string
	Kind       Kind
	Markers    []string
	Fields     []Field
	Supertypes []string

	methods      map[string]*Method
	dependencies []Dependency
}

// Method returns the method with the given name and arity, if declared.
func (t *Type) Method(name string, arity int) (*Method, bool) {
	m, ok := t.methods[methodKey(name, arity)]
	return m, ok
}

// Methods returns all declared methods sorted by (name, arity).
func (t *Type) Methods() []*Method {
	out := make([]*Method, 0, len(t.methods))
	for _, m := range t.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Arity < out[j].Arity
	})
	return out
}

// Dependencies returns this type's dependency edges sorted by target.
func (t *Type) Dependencies() []Dependency {
	out := make([]Dependency, len(t.dependencies))
	copy(out, t.dependencies)
	return out
}

// HasMarker reports whether the type carries the given marker.
func (t *Type) HasMarker(marker string) bool {
	for _, m := range t.Markers {
		if m == marker {
			return true
		}
	}
	return false
}

func methodKey(name string, arity int) string {
	return fmt.Sprintf("%s/%d", name, arity)
}
