package entx

import (
	"github.com/hengadev/entx/internal/naming"
)

// Call invokes the accessor called method on e.
//
// An explicit Method registered under that name wins and its result is returned
// unchanged. Otherwise a name starting
// with "get" or "set" is decoded into an attribute ("getFirstName" targets
// "firstName") that must be a registered field: getters return its value, setters
// take exactly one argument, store it and return e. Any other name fails with
// ErrUnknownMethod.
func Call(e Entity, method string, args ...any) (any, error) {
	t := e.Table()
	if err := t.Err(); err != nil {
		return nil, err
	}
	return t.call(e, method, args...)
}

// Get reads attribute through its getter, so explicit overrides apply.
func Get(e Entity, attribute string) (any, error) {
	return Call(e, naming.ToGetter(attribute))
}

// Set writes attribute through its setter, so explicit overrides apply. This is
// the only way to assign a single attribute from outside the entity.
func Set(e Entity, attribute string, value any) error {
	_, err := Call(e, naming.ToSetter(attribute), value)
	return err
}

// SnakeToCamel returns the PascalCase form used to build accessor names.
func SnakeToCamel(name string) string {
	return naming.SnakeToCamel(name)
}

// TranslateToGetter returns the getter name of attribute ("attribute_one" -> "getAttributeOne").
func TranslateToGetter(attribute string) string {
	return naming.ToGetter(attribute)
}

// TranslateToSetter returns the setter name of attribute ("attribute_one" -> "setAttributeOne").
func TranslateToSetter(attribute string) string {
	return naming.ToSetter(attribute)
}

func (t *Table) call(e Entity, method string, args ...any) (any, error) {
	if fn, ok := t.methods[method]; ok {
		result, err := fn(args...)
		if _, setter := t.setters[method]; setter && err == nil {
			return e, nil
		}
		return result, err
	}

	prefix, attribute, ok := naming.Decode(method)
	if !ok {
		return nil, NewUnknownMethodError(method, t.name)
	}

	field, exists := t.fields[attribute]
	if !exists {
		return nil, NewUnknownAttributeError(attribute, t.name)
	}

	if prefix == naming.GetterPrefix {
		return field.Get(), nil
	}

	if len(args) != 1 {
		return nil, NewInvalidArgumentError(method, t.name, 1, len(args))
	}
	if err := field.Set(args[0]); err != nil {
		return nil, NewTypeMismatchError(attribute, t.name, args[0], err)
	}
	return e, nil
}
