// Package decl defines the declaration listing format: the structured
// record list that enumerates types, methods, inheritance edges, and
// dependency edges for analysis. Listings are YAML documents; several
// listing files merge into a single model.
package decl

// Type kinds accepted in a listing.
const (
	KindClass     = "class"
	KindInterface = "interface"
)

// Body-behavior tags accepted on a method declaration.
const (
	BehaviorNormal            = "normal"
	BehaviorThrowsUnsupported = "throws-unsupported"
	BehaviorNoOp              = "no-op"
	BehaviorTypeSwitch        = "type-switch"
)

// Markers recognized by the checkers. Markers are free-form strings;
// unrecognized markers are carried through untouched.
const (
	MarkerServiceLayer = "service-layer"
	MarkerTechnical    = "technical"
)

// Listing is one declaration listing file.
type Listing struct {
	Types []TypeDecl `yaml:"types" validate:"required,min=1,dive"`
}

// TypeDecl declares a single class or interface.
type TypeDecl struct {
	Name         string       `yaml:"name" validate:"required"`
	Kind         string       `yaml:"kind" validate:"required,oneof=class interface"`
	Markers      []string     `yaml:"markers"`
	Implements   []string     `yaml:"implements" validate:"dive,required"`
	Fields       []FieldDecl  `yaml:"fields" validate:"dive"`
	Methods      []MethodDecl `yaml:"methods" validate:"dive"`
	Dependencies []string     `yaml:"dependencies" validate:"dive,required"`
}

// FieldDecl declares a field on a type. The field type is a name
// reference; when it resolves to a declared type it becomes a
// dependency edge.
type FieldDecl struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type"`
}

// MethodDecl declares a method with its body-behavior tag. An absent
// behavior defaults to normal.
type MethodDecl struct {
	Name     string `yaml:"name" validate:"required"`
	Arity    int    `yaml:"arity" validate:"min=0"`
	Returns  string `yaml:"returns"`
	Behavior string `yaml:"behavior" validate:"omitempty,oneof=normal throws-unsupported no-op type-switch"`
}

// Merge concatenates listings into one. Multi-file inputs form a single
// model; cross-file duplicate type names are rejected later at build
// time, where the full type table is known.
func Merge(listings ...*Listing) *Listing {
	merged := &Listing{}
	for _, l := range listings {
		if l == nil {
			continue
		}
		merged.Types = append(merged.Types, l.Types...)
	}
	return merged
}
