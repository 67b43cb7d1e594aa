package entx

import (
	"fmt"
	"slices"
	"sort"

	"github.com/hengadev/errsx"

	"github.com/hengadev/entx/internal/naming"
)

// Entity is implemented by every type managed by entx. Table returns the field
// table bound to the receiver; it is called once per operation, so building it
// must be cheap and free of side effects.
type Entity interface {
	Table() *Table
}

// Method is an explicit accessor registered on a Table. It takes precedence over
// the generic get/set dispatch for the same name.
type Method func(args ...any) (any, error)

// Table declares what an entity exposes:
//   - attributes: the ordered names serialized by ToArray
//   - fields: the slots reachable through Fill and get/set dispatch
//   - exclude: attributes left out of ToArray
//   - relations: related entities that ToArray can include on request
//   - methods: named accessor overrides
//   - setters: the methods registered through Setter
//
// Attributes and fields are allowed to differ: Field registers a slot that can be
// filled and dispatched to without being serialized.
type Table struct {
	name       string
	attributes []string
	fields     map[string]Field
	exclude    map[string]struct{}
	relations  map[string]Relation
	methods    map[string]Method
	setters    map[string]struct{}
	errs       errsx.Map
}

// NewTable starts an empty table for the entity type called name.
func NewTable(name string) *Table {
	return &Table{
		name:      name,
		fields:    make(map[string]Field),
		exclude:   make(map[string]struct{}),
		relations: make(map[string]Relation),
		methods:   make(map[string]Method),
		setters:   make(map[string]struct{}),
	}
}

// Attribute declares a serialized attribute backed by field.
func (t *Table) Attribute(name string, field Field) *Table {
	if !t.addField("attribute", name, field) {
		return t
	}
	t.attributes = append(t.attributes, name)
	return t
}

// Field registers a slot that can be filled and dispatched to, but is not
// serialized.
func (t *Table) Field(name string, field Field) *Table {
	t.addField("field", name, field)
	return t
}

// Exclude leaves the named attributes out of ToArray.
func (t *Table) Exclude(names ...string) *Table {
	for _, name := range names {
		t.exclude[name] = struct{}{}
	}
	return t
}

// Relation declares a relation and binds its current value.
func (t *Table) Relation(name string, relation Relation) *Table {
	key := fmt.Sprintf("relation '%s'", name)
	switch {
	case name == "":
		t.errs.Set("relation", fmt.Errorf("relation name cannot be empty"))
	case relation == nil:
		t.errs.Set(key, fmt.Errorf("relation value cannot be nil"))
	default:
		if _, exists := t.relations[name]; exists {
			t.errs.Set(key, fmt.Errorf("declared more than once"))
			return t
		}
		t.relations[name] = relation
	}
	return t
}

// Method registers an explicit accessor under its full name ("getFullName").
func (t *Table) Method(name string, method Method) *Table {
	key := fmt.Sprintf("method '%s'", name)
	switch {
	case name == "":
		t.errs.Set("method", fmt.Errorf("method name cannot be empty"))
	case method == nil:
		t.errs.Set(key, fmt.Errorf("method cannot be nil"))
	default:
		if _, exists := t.methods[name]; exists {
			t.errs.Set(key, fmt.Errorf("declared more than once"))
			return t
		}
		t.methods[name] = method
	}
	return t
}

// Getter registers fn as the getter of attribute.
func (t *Table) Getter(attribute string, fn func() any) *Table {
	if fn == nil {
		return t.Method(naming.ToGetter(attribute), nil)
	}
	return t.Method(naming.ToGetter(attribute), func(args ...any) (any, error) {
		return fn(), nil
	})
}

// Setter registers fn as the setter of attribute. Like the generic setter, it
// returns the entity when called and wraps errors from fn in ErrTypeMismatch.
func (t *Table) Setter(attribute string, fn func(value any) error) *Table {
	setter := naming.ToSetter(attribute)
	if fn == nil {
		return t.Method(setter, nil)
	}
	if _, exists := t.methods[setter]; !exists {
		t.setters[setter] = struct{}{}
	}
	return t.Method(setter, func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, NewInvalidArgumentError(setter, t.name, 1, len(args))
		}
		if err := fn(args[0]); err != nil {
			return nil, NewTypeMismatchError(attribute, t.name, args[0], err)
		}
		return nil, nil
	})
}

// Accessors registers the getter and setter of attribute against field. Use it
// for names the generic dispatch cannot decode, such as "attribute_one", whose
// getter "getAttributeOne" decodes to "attributeOne".
func (t *Table) Accessors(attribute string, field Field) *Table {
	if !field.bound() {
		t.errs.Set(fmt.Sprintf("accessors '%s'", attribute), fmt.Errorf("field is not bound"))
		return t
	}
	return t.Getter(attribute, field.Get).Setter(attribute, field.Set)
}

// Name returns the entity type name used in error messages.
func (t *Table) Name() string {
	return t.name
}

// Attributes returns the declared attributes in serialization order.
func (t *Table) Attributes() []string {
	return slices.Clone(t.attributes)
}

// Excluded returns the excluded attribute names, sorted.
func (t *Table) Excluded() []string {
	names := make([]string, 0, len(t.exclude))
	for name := range t.exclude {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Relations returns the kind of every declared relation.
func (t *Table) Relations() map[string]RelationKind {
	kinds := make(map[string]RelationKind, len(t.relations))
	for name, relation := range t.relations {
		kinds[name] = relation.Kind()
	}
	return kinds
}

// HasField reports whether name is a registered field.
func (t *Table) HasField(name string) bool {
	_, ok := t.fields[name]
	return ok
}

// Err returns every mistake recorded while building the table, or nil.
func (t *Table) Err() error {
	if t.errs.IsEmpty() {
		return nil
	}
	return NewInvalidTableError(t.name, t.errs.AsError())
}

func (t *Table) isExcluded(name string) bool {
	_, ok := t.exclude[name]
	return ok
}

func (t *Table) addField(kind, name string, field Field) bool {
	key := fmt.Sprintf("%s '%s'", kind, name)
	switch {
	case name == "":
		t.errs.Set(kind, fmt.Errorf("name cannot be empty"))
		return false
	case !field.bound():
		t.errs.Set(key, fmt.Errorf("field is not bound, use entx.Bind"))
		return false
	}
	if _, exists := t.fields[name]; exists {
		t.errs.Set(key, fmt.Errorf("declared more than once"))
		return false
	}
	t.fields[name] = field
	return true
}
