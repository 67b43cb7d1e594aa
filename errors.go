package entx

import (
	"errors"
	"fmt"
)

var (
	// Contract errors: the caller and the entity's table disagree.
	ErrUnknownAttribute   = errors.New("unknown attribute")
	ErrUnknownMethod      = errors.New("unknown method")
	ErrUndeclaredRelation = errors.New("undeclared relation")
	ErrInvalidArgument    = errors.New("invalid argument")

	// Schema errors
	ErrInvalidTable         = errors.New("invalid entity table")
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// Conversion errors
	ErrTypeMismatch = errors.New("type mismatch")
)

func NewUnknownAttributeError(attribute, entityType string) error {
	return fmt.Errorf("%w: '%s' is not an attribute of %s", ErrUnknownAttribute, attribute, entityType)
}

func NewUnknownMethodError(method, entityType string) error {
	return fmt.Errorf("%w: '%s' is not a function of %s", ErrUnknownMethod, method, entityType)
}

func NewUndeclaredRelationError(relation, entityType string) error {
	return fmt.Errorf("%w: '%s' is not set as a relation on %s", ErrUndeclaredRelation, relation, entityType)
}

func NewInvalidArgumentError(method, entityType string, want, got int) error {
	return fmt.Errorf("%w: %s.%s expects %d argument(s), got %d", ErrInvalidArgument, entityType, method, want, got)
}

func NewTypeMismatchError(field, entityType string, value any, err error) error {
	return fmt.Errorf("%w: cannot assign %T to '%s' of %s: %v", ErrTypeMismatch, value, field, entityType, err)
}

func NewInvalidTableError(entityType string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrInvalidTable, entityType, err)
}

// IsContractError returns true if the error signals a mismatch between the caller
// and the entity's declared attributes, methods or relations.
func IsContractError(err error) bool {
	return errors.Is(err, ErrUnknownAttribute) ||
		errors.Is(err, ErrUnknownMethod) ||
		errors.Is(err, ErrUndeclaredRelation) ||
		errors.Is(err, ErrInvalidArgument)
}

// IsSchemaError returns true if the error comes from a malformed table or configuration.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrInvalidTable) ||
		errors.Is(err, ErrInvalidConfiguration)
}

// IsConversionError returns true if a value could not be stored in a field.
func IsConversionError(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
