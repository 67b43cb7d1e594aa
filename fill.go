package entx

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/hengadev/errsx"

	"github.com/hengadev/entx/internal/monitoring"
)

// Fill assigns values to e's fields and returns e.
//
// A key is applied only when its value is not nil (typed nils included), it is
// not listed in exclude, and it names a registered field exactly. Keys are not translated: a field
// called "attributeTwo" is not filled by "attribute_two". Everything else is
// skipped without error, so callers can pass a superset such as a decoded
// request body.
//
// Fill writes straight into the field slots and does not go through setter
// overrides. When some values cannot be converted to their field's type the
// remaining keys are still applied and the returned error lists every failure.
func Fill[E Entity](e E, values map[string]any, exclude ...string) (E, error) {
	return e, defaultMapper.Fill(e, values, exclude...)
}

// Update is Fill under another name, for call sites that modify an existing entity.
func Update[E Entity](e E, values map[string]any, exclude ...string) (E, error) {
	return e, defaultMapper.Update(e, values, exclude...)
}

// Create allocates a new T and fills it.
//
//	user, err := entx.Create[User](payload, "password")
func Create[T any, PT interface {
	*T
	Entity
}](values map[string]any, exclude ...string) (PT, error) {
	return CreateWith[T, PT](defaultMapper, values, exclude...)
}

// CreateWith is Create using m.
func CreateWith[T any, PT interface {
	*T
	Entity
}](m *Mapper, values map[string]any, exclude ...string) (PT, error) {
	e := PT(new(T))
	if err := m.Fill(e, values, exclude...); err != nil {
		return e, err
	}
	return e, nil
}

// Fill is the Mapper form of the package-level Fill.
func (m *Mapper) Fill(e Entity, values map[string]any, exclude ...string) error {
	t := e.Table()

	start := time.Now()
	metadata := map[string]any{
		"entity_type": t.Name(),
		"keys":        len(values),
	}
	m.hook.OnProcessStart(monitoring.OperationFill, metadata)

	err := m.fill(t, values, exclude)
	if err != nil {
		m.hook.OnError(monitoring.OperationFill, err, metadata)
	}
	m.hook.OnProcessComplete(monitoring.OperationFill, time.Since(start), err, metadata)
	return err
}

// Update is the Mapper form of the package-level Update.
func (m *Mapper) Update(e Entity, values map[string]any, exclude ...string) error {
	return m.Fill(e, values, exclude...)
}

func (m *Mapper) fill(t *Table, values map[string]any, exclude []string) error {
	if err := t.Err(); err != nil {
		return err
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, key := range exclude {
		excluded[key] = struct{}{}
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var assignErrs errsx.Map
	for _, key := range keys {
		value := values[key]

		if isNil(value) {
			m.hook.OnFieldSkipped(monitoring.OperationFill, t.Name(), key, monitoring.SkipNilValue)
			continue
		}
		if _, skip := excluded[key]; skip {
			m.hook.OnFieldSkipped(monitoring.OperationFill, t.Name(), key, monitoring.SkipExcluded)
			continue
		}
		field, ok := t.fields[key]
		if !ok {
			m.hook.OnFieldSkipped(monitoring.OperationFill, t.Name(), key, monitoring.SkipUnknownField)
			continue
		}

		if err := field.Set(value); err != nil {
			assignErrs.Set(fmt.Sprintf("field '%s'", key), NewTypeMismatchError(key, t.Name(), value, err))
		}
	}

	if !assignErrs.IsEmpty() {
		return fmt.Errorf("%w: fill %s: %w", ErrTypeMismatch, t.Name(), assignErrs.AsError())
	}
	return nil
}

// isNil also reports typed nils such as (*string)(nil) wrapped in an interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
