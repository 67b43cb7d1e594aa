package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/hengadev/entx/internal/naming"
)

// TagName is the struct tag key read by the generator.
const TagName = "entx"

// FieldKind tells how a tagged field is registered on the generated table.
type FieldKind int

const (
	KindAttribute FieldKind = iota
	KindHidden
	KindOne
	KindMany
)

func (k FieldKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindHidden:
		return "hidden"
	case KindOne:
		return "one"
	case KindMany:
		return "many"
	default:
		return "unknown"
	}
}

// StructInfo contains information about a struct with entx tags
type StructInfo struct {
	PackageName      string
	StructName       string
	SourceFile       string
	Fields           []FieldInfo
	HasEntxTags      bool
	ValidationErrors []string
}

// FieldInfo contains information about a single tagged field
type FieldInfo struct {
	Name             string
	Type             string
	EntxName         string
	Options          []string
	Kind             FieldKind
	Exclude          bool
	IsValid          bool
	ValidationErrors []string
}

// IsValid reports whether the struct and all its fields passed validation.
func (s StructInfo) IsValid() bool {
	if len(s.ValidationErrors) > 0 {
		return false
	}
	for _, f := range s.Fields {
		if !f.IsValid {
			return false
		}
	}
	return true
}

// Errors returns every validation failure for the struct and its fields.
func (s StructInfo) Errors() []ValidationError {
	var errs []ValidationError
	for _, msg := range s.ValidationErrors {
		errs = append(errs, ValidationError{Struct: s.StructName, Message: msg})
	}
	for _, f := range s.Fields {
		for _, msg := range f.ValidationErrors {
			errs = append(errs, ValidationError{Struct: s.StructName, Field: f.Name, Message: msg})
		}
	}
	return errs
}

// DiscoveryConfig holds configuration for struct discovery
type DiscoveryConfig struct {
	SkipPackages []string
}

// DiscoverStructs discovers structs with entx tags in the given package path.
// Test files are ignored. Results are ordered by source file, then by position.
func DiscoverStructs(packagePath string, config *DiscoveryConfig) ([]StructInfo, error) {
	if config != nil && shouldSkip(packagePath, config.SkipPackages) {
		return nil, nil
	}

	fset := token.NewFileSet()
	notTest := func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}
	pkgs, err := parser.ParseDir(fset, packagePath, notTest, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var structs []StructInfo
	for pkgName, pkg := range pkgs {
		if strings.HasSuffix(pkgName, "_test") {
			continue
		}

		fileNames := make([]string, 0, len(pkg.Files))
		for fileName := range pkg.Files {
			fileNames = append(fileNames, fileName)
		}
		sort.Strings(fileNames)

		for _, fileName := range fileNames {
			structs = append(structs, discoverStructsInFile(fileName, pkg.Files[fileName], pkgName)...)
		}
	}

	return structs, nil
}

// ParseSource discovers tagged structs in a single in-memory file.
func ParseSource(fileName string, src []byte) ([]StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, fileName, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	return discoverStructsInFile(fileName, file, file.Name.Name), nil
}

func shouldSkip(packagePath string, skip []string) bool {
	clean := filepath.ToSlash(filepath.Clean(packagePath))
	for _, s := range skip {
		s = filepath.ToSlash(filepath.Clean(s))
		if clean == s || strings.HasSuffix(clean, "/"+s) {
			return true
		}
	}
	return false
}

// discoverStructsInFile discovers structs in a single file
func discoverStructsInFile(fileName string, file *ast.File, pkgName string) []StructInfo {
	var structs []StructInfo

	ast.Inspect(file, func(n ast.Node) bool {
		if node, ok := n.(*ast.TypeSpec); ok {
			if structType, ok := node.Type.(*ast.StructType); ok {
				structInfo := analyzeStruct(fileName, pkgName, node.Name.Name, structType)
				if structInfo.HasEntxTags {
					structs = append(structs, structInfo)
				}
			}
		}
		return true
	})

	return structs
}

// analyzeStruct collects the tagged fields of a struct and validates them as a whole
func analyzeStruct(fileName, pkgName, structName string, structType *ast.StructType) StructInfo {
	structInfo := StructInfo{
		PackageName: pkgName,
		StructName:  structName,
		SourceFile:  filepath.Base(fileName),
		Fields:      []FieldInfo{},
	}

	for _, field := range structType.Fields.List {
		// embedded fields have no name to bind
		for _, name := range field.Names {
			fieldInfo, tagged := analyzeField(name.Name, field)
			if !tagged {
				continue
			}
			structInfo.HasEntxTags = true
			structInfo.Fields = append(structInfo.Fields, fieldInfo)
		}
	}

	structInfo.ValidationErrors = NewTagValidator().ValidateStruct(structInfo.Fields)

	return structInfo
}

// analyzeField reads the entx tag of a field. The second result is false when
// the field carries no tag or is skipped with "-".
func analyzeField(fieldName string, field *ast.Field) (FieldInfo, bool) {
	if field.Tag == nil {
		return FieldInfo{}, false
	}

	value, ok := lookupTag(field.Tag.Value)
	if !ok || value == "-" {
		return FieldInfo{}, false
	}

	name, options := splitTag(value)
	if name == "" {
		name = naming.LowerFirst(fieldName)
	}

	fieldInfo := FieldInfo{
		Name:             fieldName,
		Type:             getTypeString(field.Type),
		EntxName:         name,
		Options:          options,
		IsValid:          true,
		ValidationErrors: []string{},
	}

	for _, opt := range options {
		switch opt {
		case "one":
			fieldInfo.Kind = KindOne
		case "many":
			fieldInfo.Kind = KindMany
		case "hidden":
			fieldInfo.Kind = KindHidden
		case "exclude":
			fieldInfo.Exclude = true
		}
	}

	if errors := NewTagValidator().ValidateField(fieldInfo); len(errors) > 0 {
		fieldInfo.IsValid = false
		fieldInfo.ValidationErrors = errors
	}

	return fieldInfo, true
}

// lookupTag extracts the entx value from a raw struct tag literal.
func lookupTag(raw string) (string, bool) {
	tag, err := strconv.Unquote(raw)
	if err != nil {
		return "", false
	}
	return reflect.StructTag(tag).Lookup(TagName)
}

func splitTag(value string) (string, []string) {
	parts := strings.Split(value, ",")
	name := strings.TrimSpace(parts[0])
	options := make([]string, 0, len(parts)-1)
	for _, opt := range parts[1:] {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}
	return name, options
}

// getTypeString converts an ast.Expr to its string representation
func getTypeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.ArrayType:
		return "[]" + getTypeString(t.Elt)
	case *ast.StarExpr:
		return "*" + getTypeString(t.X)
	case *ast.SelectorExpr:
		return getTypeString(t.X) + "." + t.Sel.Name
	case *ast.MapType:
		return "map[" + getTypeString(t.Key) + "]" + getTypeString(t.Value)
	case *ast.InterfaceType:
		return "any"
	default:
		return "unknown"
	}
}
