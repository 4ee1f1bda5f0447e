package decl

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks a listing's records against the schema. Struct-tag
// validation covers per-record constraints (required names, kind and
// behavior enums, non-negative arity); listing-level checks cover what
// tags cannot express (duplicate method name+arity within a type,
// duplicate type names within the same file). Cross-file duplicates are
// left to the model builder, which sees the full type table.
func Validate(listing *Listing, file string) error {
	if listing == nil || len(listing.Types) == 0 {
		return newError(file, ErrEmptyListing)
	}

	if err := validate.Struct(listing); err != nil {
		return newError(file, fmt.Errorf("%w: %v", ErrInvalidRecord, formatValidationError(err)))
	}

	seenTypes := make(map[string]bool)
	for _, t := range listing.Types {
		if seenTypes[t.Name] {
			return newError(file, ErrInvalidRecord, t.Name)
		}
		seenTypes[t.Name] = true

		seenMethods := make(map[string]bool)
		for _, m := range t.Methods {
			key := fmt.Sprintf("%s/%d", m.Name, m.Arity)
			if seenMethods[key] {
				return newError(file, ErrDuplicateMethod, t.Name, key)
			}
			seenMethods[key] = true
		}
	}

	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "oneof":
			return fmt.Errorf("%s: value %q must be one of [%s]", field, e.Value(), param)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
