package entx

// RelationKind tells whether a relation points at one entity or a collection.
type RelationKind int8

const (
	RelationOne RelationKind = iota
	RelationMany
)

func (k RelationKind) String() string {
	switch k {
	case RelationOne:
		return "one"
	case RelationMany:
		return "many"
	default:
		return "unknown"
	}
}

// Relation is the value held by a declared relation: either a Single or a
// Collection.
type Relation interface {
	Kind() RelationKind
	relation()
}

// Single holds a reference to one related entity. A nil Ref means the relation
// is not attached.
type Single struct {
	Ref Entity
}

func (Single) Kind() RelationKind { return RelationOne }
func (Single) relation()          {}

// Collection holds related entities in order. A nil or empty Refs both mean
// nothing is attached.
type Collection struct {
	Refs []Entity
}

func (Collection) Kind() RelationKind { return RelationMany }
func (Collection) relation()          {}

// One wraps a pointer to a related entity. A nil pointer yields an empty Single
// rather than a non-nil interface holding a nil pointer.
func One[T any, PT interface {
	*T
	Entity
}](ref PT) Single {
	if ref == nil {
		return Single{}
	}
	return Single{Ref: ref}
}

// Many wraps a slice of related entities, dropping nil elements.
func Many[T any, PT interface {
	*T
	Entity
}](refs []PT) Collection {
	if refs == nil {
		return Collection{}
	}
	entities := make([]Entity, 0, len(refs))
	for _, ref := range refs {
		if ref != nil {
			entities = append(entities, ref)
		}
	}
	return Collection{Refs: entities}
}
