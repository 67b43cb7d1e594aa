package entx

import (
	"time"

	"github.com/hengadev/entx/internal/monitoring"
	"github.com/hengadev/entx/internal/naming"
	"github.com/hengadev/entx/internal/relpath"
)

// ToArray serializes e into a Record.
//
// Every declared attribute that is not excluded is read through its getter, in
// declaration order. with names the relations to include, using dotted paths for
// relations of related entities:
//
//	record, err := entx.ToArray(user, "friends", "comments.tags", "comments.responses")
//
// A one-relation is stored as a nested Record (empty when nothing is attached)
// plus a companion "<relation>_id" copied from the nested "id", or nil. A
// many-relation is stored as []*Record, empty when nothing is attached.
//
// Requesting a relation the table does not declare fails with
// ErrUndeclaredRelation. On error no Record is returned. e is never modified.
func ToArray(e Entity, with ...string) (*Record, error) {
	return defaultMapper.ToArray(e, with...)
}

// ToArray is the Mapper form of the package-level ToArray.
func (m *Mapper) ToArray(e Entity, with ...string) (*Record, error) {
	t := e.Table()

	start := time.Now()
	metadata := map[string]any{
		"entity_type": t.Name(),
		"relations":   with,
	}
	m.hook.OnProcessStart(monitoring.OperationSerialize, metadata)

	record, err := m.serialize(e, t, with)
	if err != nil {
		m.hook.OnError(monitoring.OperationSerialize, err, metadata)
	}
	m.hook.OnProcessComplete(monitoring.OperationSerialize, time.Since(start), err, metadata)
	return record, err
}

func (m *Mapper) serialize(e Entity, t *Table, with []string) (*Record, error) {
	if err := t.Err(); err != nil {
		return nil, err
	}

	record := NewRecord()

	for _, attribute := range t.attributes {
		if t.isExcluded(attribute) {
			continue
		}
		value, err := t.call(e, naming.ToGetter(attribute))
		if err != nil {
			return nil, err
		}
		record.Set(attribute, value)
	}

	for _, node := range relpath.Parse(with, m.config.PathSeparator) {
		relation, ok := t.relations[node.Name]
		if !ok {
			return nil, NewUndeclaredRelationError(node.Name, t.Name())
		}

		switch r := relation.(type) {
		case Single:
			if err := m.addSingle(record, node, r); err != nil {
				return nil, err
			}
		case Collection:
			if err := m.addCollection(record, node, r); err != nil {
				return nil, err
			}
		}
	}

	return record, nil
}

func (m *Mapper) addSingle(record *Record, node relpath.Node, r Single) error {
	idKey := node.Name + m.config.IDSuffix

	if r.Ref == nil {
		record.Set(node.Name, NewRecord())
		record.Set(idKey, nil)
		return nil
	}

	nested, err := m.serialize(r.Ref, r.Ref.Table(), node.Paths)
	if err != nil {
		return err
	}

	id, _ := nested.Get(m.config.IDAttribute)
	record.Set(node.Name, nested)
	record.Set(idKey, id)
	return nil
}

func (m *Mapper) addCollection(record *Record, node relpath.Node, r Collection) error {
	items := make([]*Record, 0, len(r.Refs))
	for _, ref := range r.Refs {
		if ref == nil {
			continue
		}
		nested, err := m.serialize(ref, ref.Table(), node.Paths)
		if err != nil {
			return err
		}
		items = append(items, nested)
	}
	record.Set(node.Name, items)
	return nil
}
