package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSource = `package models

import "time"

type User struct {
	ID        string    ` + "`json:\"id\" entx:\"id\"`" + `
	FirstName string    ` + "`entx:\"first_name\"`" + `
	Email     string    ` + "`entx:\",hidden\"`" + `
	Password  string    ` + "`entx:\"password,exclude\"`" + `
	CreatedAt time.Time ` + "`entx:\"createdAt\"`" + `
	Friend    *User     ` + "`entx:\"friend,one\"`" + `
	Posts     []*Post   ` + "`entx:\"posts,many\"`" + `
	Internal  string    ` + "`entx:\"-\"`" + `
	Untagged  int
}

type Post struct {
	Title string ` + "`entx:\"title\"`" + `
}

type Plain struct {
	Name string ` + "`json:\"name\"`" + `
}
`

func TestDiscoverStructs(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "user.go"), []byte(userSource), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "user_test.go"), []byte(`package models

type fixture struct {
	Name string `+"`entx:\"name\"`"+`
}
`), 0644))

	structs, err := DiscoverStructs(tempDir, &DiscoveryConfig{})
	require.NoError(t, err)
	require.Len(t, structs, 2)

	user := structs[0]
	assert.Equal(t, "User", user.StructName)
	assert.Equal(t, "models", user.PackageName)
	assert.Equal(t, "user.go", user.SourceFile)
	assert.True(t, user.HasEntxTags)
	assert.True(t, user.IsValid(), "errors: %v", user.Errors())

	names := make([]string, 0, len(user.Fields))
	for _, f := range user.Fields {
		names = append(names, f.EntxName)
	}
	assert.Equal(t, []string{"id", "first_name", "email", "password", "createdAt", "friend", "posts"}, names)

	assert.Equal(t, "Post", structs[1].StructName)
}

func TestDiscoverStructsSkipsConfiguredPackages(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "user.go"), []byte(userSource), 0644))

	structs, err := DiscoverStructs(tempDir, &DiscoveryConfig{SkipPackages: []string{filepath.Base(tempDir)}})
	require.NoError(t, err)
	assert.Empty(t, structs)
}

func TestDiscoverStructsInvalidDirectory(t *testing.T) {
	_, err := DiscoverStructs(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestAnalyzeFieldKinds(t *testing.T) {
	structs, err := ParseSource("user.go", []byte(userSource))
	require.NoError(t, err)
	require.NotEmpty(t, structs)

	byName := make(map[string]FieldInfo)
	for _, f := range structs[0].Fields {
		byName[f.Name] = f
	}

	tests := []struct {
		field    string
		kind     FieldKind
		exclude  bool
		typeName string
	}{
		{"ID", KindAttribute, false, "string"},
		{"Email", KindHidden, false, "string"},
		{"Password", KindAttribute, true, "string"},
		{"CreatedAt", KindAttribute, false, "time.Time"},
		{"Friend", KindOne, false, "*User"},
		{"Posts", KindMany, false, "[]*Post"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := byName[tt.field]
			require.True(t, ok)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.exclude, f.Exclude)
			assert.Equal(t, tt.typeName, f.Type)
			assert.True(t, f.IsValid, "errors: %v", f.ValidationErrors)
		})
	}

	_, skipped := byName["Internal"]
	assert.False(t, skipped)
	_, untagged := byName["Untagged"]
	assert.False(t, untagged)
}

func TestEmptyTagNameDefaultsToLowerFieldName(t *testing.T) {
	structs, err := ParseSource("user.go", []byte(userSource))
	require.NoError(t, err)

	for _, f := range structs[0].Fields {
		if f.Name == "Email" {
			assert.Equal(t, "email", f.EntxName)
			return
		}
	}
	t.Fatal("Email field not found")
}

func TestInvalidStructReportsErrors(t *testing.T) {
	src := `package models

type Broken struct {
	A string  ` + "`entx:\"name\"`" + `
	B string  ` + "`entx:\"name\"`" + `
	C string  ` + "`entx:\"c,one\"`" + `
	D *Broken ` + "`entx:\"d,many\"`" + `
	E string  ` + "`entx:\"e,shiny\"`" + `
}
`
	structs, err := ParseSource("broken.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, structs, 1)

	broken := structs[0]
	assert.False(t, broken.IsValid())

	errs := broken.Errors()
	require.Len(t, errs, 4)
	assert.Equal(t, "Broken", errs[0].Struct)
	assert.Empty(t, errs[0].Field)
	assert.Contains(t, errs[0].Error(), "declared by both 'A' and 'B'")
	assert.Equal(t, "C", errs[1].Field)
	assert.Equal(t, "D", errs[2].Field)
	assert.Equal(t, "E", errs[3].Field)
	assert.Contains(t, errs[3].Error(), "unknown option 'shiny'")
}

func TestGetTypeString(t *testing.T) {
	src := `package models

type Types struct {
	A map[string]int ` + "`entx:\"a\"`" + `
	B any            ` + "`entx:\"b\"`" + `
	C []byte         ` + "`entx:\"c\"`" + `
	D *string        ` + "`entx:\"d\"`" + `
}
`
	structs, err := ParseSource("types.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, structs, 1)

	var types []string
	for _, f := range structs[0].Fields {
		types = append(types, f.Type)
	}
	assert.Equal(t, []string{"map[string]int", "any", "[]byte", "*string"}, types)
}

func TestParseSourceSyntaxError(t *testing.T) {
	_, err := ParseSource("bad.go", []byte("package models\n\ntype X struct {"))
	assert.Error(t, err)
}
