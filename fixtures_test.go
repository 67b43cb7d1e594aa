package entx

import (
	"fmt"
	"strings"
	"time"
)

// basicEntity mixes snake_case and camelCase attribute names.
type basicEntity struct {
	attributeOne        string
	attributeTwo        string
	attributeThree      string
	attributeNumberFour string
	attributeNumberFive string
}

func (e *basicEntity) Table() *Table {
	return NewTable("basicEntity").
		Attribute("attribute_one", Bind(&e.attributeOne)).
		Accessors("attribute_one", Bind(&e.attributeOne)).
		Attribute("attributeTwo", Bind(&e.attributeTwo)).
		Attribute("attributeThree", Bind(&e.attributeThree)).
		Attribute("attribute_number_four", Bind(&e.attributeNumberFour)).
		Accessors("attribute_number_four", Bind(&e.attributeNumberFour)).
		Attribute("attributeNumberFive", Bind(&e.attributeNumberFive))
}

// camelEntity declares camelCase names only, with no explicit accessors.
type camelEntity struct {
	attributeOne string
	attributeTwo string
}

func (e *camelEntity) Table() *Table {
	return NewTable("camelEntity").
		Attribute("attributeOne", Bind(&e.attributeOne)).
		Attribute("attributeTwo", Bind(&e.attributeTwo))
}

type user struct {
	id        string
	name      string
	email     string
	password  string
	age       int
	createdAt time.Time
	nickname  *string
	friend    *user
	profile   *profile
	posts     []*post
}

func (u *user) Table() *Table {
	return NewTable("user").
		Attribute("id", Bind(&u.id)).
		Attribute("name", Bind(&u.name)).
		Attribute("email", Bind(&u.email)).
		Attribute("password", Bind(&u.password)).
		Attribute("age", Bind(&u.age)).
		Attribute("createdAt", Bind(&u.createdAt)).
		Field("nickname", Bind(&u.nickname)).
		Exclude("password").
		Getter("email", func() any { return strings.ToLower(u.email) }).
		Setter("name", func(value any) error {
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("name must be a string, got %T", value)
			}
			u.name = strings.TrimSpace(s)
			return nil
		}).
		Relation("friend", One(u.friend)).
		Relation("profile", One(u.profile)).
		Relation("posts", Many(u.posts))
}

type profile struct {
	bio string
}

func (p *profile) Table() *Table {
	return NewTable("profile").
		Attribute("bio", Bind(&p.bio))
}

type post struct {
	id       string
	title    string
	author   *user
	comments []*comment
}

func (p *post) Table() *Table {
	return NewTable("post").
		Attribute("id", Bind(&p.id)).
		Attribute("title", Bind(&p.title)).
		Relation("author", One(p.author)).
		Relation("comments", Many(p.comments))
}

type comment struct {
	id   string
	body string
	tags []*tag
}

func (c *comment) Table() *Table {
	return NewTable("comment").
		Attribute("id", Bind(&c.id)).
		Attribute("body", Bind(&c.body)).
		Relation("tags", Many(c.tags))
}

type tag struct {
	id    string
	label string
}

func (t *tag) Table() *Table {
	return NewTable("tag").
		Attribute("id", Bind(&t.id)).
		Attribute("label", Bind(&t.label))
}

// brokenEntity declares the same attribute twice.
type brokenEntity struct {
	name string
}

func (b *brokenEntity) Table() *Table {
	return NewTable("brokenEntity").
		Attribute("name", Bind(&b.name)).
		Attribute("name", Bind(&b.name))
}

// ghostEntity serializes an attribute that has no field behind it.
type ghostEntity struct{}

func (g *ghostEntity) Table() *Table {
	t := NewTable("ghostEntity")
	t.attributes = append(t.attributes, "missing")
	return t
}
