package entx

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

func ExampleCreate() {
	u, err := Create[user](map[string]any{
		"id":       "u-1",
		"name":     "Ada",
		"age":      36.0,
		"password": "secret",
		"unknown":  true,
	}, "password")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(u.id, u.name, u.age, u.password == "")
	// Output: u-1 Ada 36 true
}

func ExampleCall() {
	u := &user{}

	if _, err := Call(u, "setName", "  Grace "); err != nil {
		fmt.Println(err)
		return
	}
	name, _ := Call(u, "getName")
	fmt.Println(name)

	_, err := Call(u, "getShoeSize")
	fmt.Println(errors.Is(err, ErrUnknownAttribute))

	_, err = Call(u, "delete")
	fmt.Println(errors.Is(err, ErrUnknownMethod))
	// Output:
	// Grace
	// true
	// true
}

func ExampleToArray() {
	u := &user{
		id:       "u-1",
		name:     "Ada",
		email:    "ADA@example.com",
		password: "secret",
		age:      36,
		friend:   &user{id: "u-2", name: "Grace"},
	}

	record, err := ToArray(u, "friend")
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _ := json.Marshal(record)
	fmt.Println(string(out))
	// Output: {"id":"u-1","name":"Ada","email":"ada@example.com","age":36,"createdAt":"0001-01-01T00:00:00Z","friend":{"id":"u-2","name":"Grace","email":"","age":0,"createdAt":"0001-01-01T00:00:00Z"},"friend_id":"u-2"}
}

func ExampleSnakeToCamel() {
	fmt.Println(SnakeToCamel("attribute_number_four"))
	fmt.Println(TranslateToGetter("attribute_one"))
	fmt.Println(TranslateToSetter("attributeTwo"))
	// Output:
	// AttributeNumberFour
	// getAttributeOne
	// setAttributeTwo
}
