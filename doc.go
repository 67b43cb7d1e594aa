// Package entx provides a small base for plain data entities: bulk filling from
// untyped maps, get/set dispatch over declared fields, and serialization into
// ordered, nested records with on-demand relations.
//
// # Declaring an entity
//
// An entity exposes its fields through a Table bound to the receiver. Fields are
// private; the table is the only way in:
//
//	type User struct {
//	    id       string
//	    name     string
//	    password string
//	    friend   *User
//	    posts    []*Post
//	}
//
//	func (u *User) Table() *entx.Table {
//	    return entx.NewTable("User").
//	        Attribute("id", entx.Bind(&u.id)).
//	        Attribute("name", entx.Bind(&u.name)).
//	        Attribute("password", entx.Bind(&u.password)).
//	        Exclude("password").
//	        Relation("friend", entx.One(u.friend)).
//	        Relation("posts", entx.Many(u.posts))
//	}
//
// The Table method can be written by hand or generated from struct tags with
// entx-gen:
//
//	type User struct {
//	    id       string  `entx:"id"`
//	    password string  `entx:"password,exclude"`
//	    friend   *User   `entx:"friend,one"`
//	    posts    []*Post `entx:"posts,many"`
//	}
//
//	//go:generate entx-gen generate .
//
// # Filling
//
//	user, err := entx.Create[User](map[string]any{"id": "u1", "name": "Ada", "unknown": 1})
//	user, err = entx.Update(user, payload, "password")
//
// Keys must match field names exactly. nil values, excluded keys and unknown keys
// are skipped silently.
//
// # Accessors
//
//	name, err := entx.Get(user, "name")         // dispatches to "getName"
//	err = entx.Set(user, "name", "Grace")       // dispatches to "setName"
//	value, err := entx.Call(user, "getName")
//
// Explicit overrides registered with Table.Method, Table.Getter or Table.Setter
// take precedence over the generic dispatch.
//
// # Serializing
//
//	record, err := entx.ToArray(user, "friend", "posts.comments")
//	data, err := json.Marshal(record) // keys keep declaration order
//
// # Errors
//
// Contract violations are reported with sentinel errors usable with errors.Is:
// ErrUnknownAttribute, ErrUnknownMethod, ErrUndeclaredRelation and
// ErrInvalidArgument. A malformed Table yields ErrInvalidTable; values that
// cannot be stored in their field yield ErrTypeMismatch.
package entx
