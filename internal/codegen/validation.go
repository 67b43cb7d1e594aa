package codegen

import (
	"fmt"
	"slices"
	"strings"
)

// TagValidator handles validation of entx tags
type TagValidator struct {
	knownOptions  []string
	invalidCombos [][2]string
}

// NewTagValidator creates a new tag validator
func NewTagValidator() *TagValidator {
	return &TagValidator{
		knownOptions: []string{"one", "many", "exclude", "hidden"},
		invalidCombos: [][2]string{
			{"one", "many"},
			{"hidden", "exclude"},
			{"one", "exclude"},
			{"one", "hidden"},
			{"many", "exclude"},
			{"many", "hidden"},
		},
	}
}

// ValidateField validates the name, options and type of a single tagged field
func (tv *TagValidator) ValidateField(field FieldInfo) []string {
	var errors []string

	if !isIdentifierLike(field.EntxName) {
		errors = append(errors, fmt.Sprintf("invalid name '%s' on field '%s'", field.EntxName, field.Name))
	}

	errors = append(errors, tv.ValidateFieldTags(field.Name, field.Options)...)

	switch {
	case slices.Contains(field.Options, "one") && !isPointerType(field.Type):
		errors = append(errors, fmt.Sprintf("field '%s' tagged 'one' must be a pointer to a struct, got %s", field.Name, field.Type))
	case slices.Contains(field.Options, "many") && !isPointerSliceType(field.Type):
		errors = append(errors, fmt.Sprintf("field '%s' tagged 'many' must be a slice of pointers, got %s", field.Name, field.Type))
	}

	return errors
}

// ValidateFieldTags validates the options for a single field
func (tv *TagValidator) ValidateFieldTags(fieldName string, options []string) []string {
	var errors []string

	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if !slices.Contains(tv.knownOptions, opt) {
			errors = append(errors, fmt.Sprintf("unknown option '%s' on field '%s'", opt, fieldName))
		}
	}

	for _, combo := range tv.invalidCombos {
		if slices.Contains(options, combo[0]) && slices.Contains(options, combo[1]) {
			errors = append(errors, fmt.Sprintf("invalid option combination on field '%s': %s,%s (these options cannot be used together)", fieldName, combo[0], combo[1]))
		}
	}

	if duplicates := findDuplicates(options); len(duplicates) > 0 {
		errors = append(errors, fmt.Sprintf("duplicate options on field '%s': %v", fieldName, duplicates))
	}

	return errors
}

// ValidateStruct checks constraints spanning several fields: every name must
// be declared once, whether as attribute or relation.
func (tv *TagValidator) ValidateStruct(fields []FieldInfo) []string {
	var errors []string
	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		if other, ok := seen[f.EntxName]; ok {
			errors = append(errors, fmt.Sprintf("name '%s' is declared by both '%s' and '%s'", f.EntxName, other, f.Name))
			continue
		}
		seen[f.EntxName] = f.Name
	}
	return errors
}

// isIdentifierLike rejects names that could not be written as a quoted Go
// string or that contain the relation path separator.
func isIdentifierLike(name string) bool {
	return name != "" && !strings.ContainsAny(name, ". \t\"\\`")
}

func isPointerType(typ string) bool {
	return strings.HasPrefix(typ, "*") && len(typ) > 1 && typ != "*unknown"
}

func isPointerSliceType(typ string) bool {
	return strings.HasPrefix(typ, "[]*") && len(typ) > 3 && typ != "[]*unknown"
}

// findDuplicates finds duplicate entries in a list
func findDuplicates(items []string) []string {
	seen := make(map[string]bool)
	var duplicates []string

	for _, item := range items {
		item = strings.TrimSpace(item)
		if seen[item] {
			duplicates = append(duplicates, item)
		} else {
			seen[item] = true
		}
	}

	return duplicates
}

// ValidationError represents a validation error
type ValidationError struct {
	Struct  string
	Field   string
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return fmt.Sprintf("struct '%s': %s", ve.Struct, ve.Message)
	}
	return fmt.Sprintf("struct '%s' field '%s': %s", ve.Struct, ve.Field, ve.Message)
}
