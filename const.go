package entx

const (
	// StructTag is the struct tag read by entx-gen and by mapstructure when a
	// map is decoded into a struct-typed field.
	StructTag = "entx"

	DefaultIDAttribute   = "id"
	DefaultIDSuffix      = "_id"
	DefaultPathSeparator = "."
)
