package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/hengadev/entx/internal/naming"
)

// DefaultImportPath is the import path of the runtime package the generated
// code calls into.
const DefaultImportPath = "github.com/hengadev/entx"

const tableTemplate = `// Code generated by entx-gen {{.GeneratorVersion}}. DO NOT EDIT.
// Source: {{.SourceFile}}

package {{.PackageName}}

import entx "{{.ImportPath}}"
{{range .Types}}
// Table declares the attributes and relations of {{.StructName}}.
func ({{.Receiver}} *{{.StructName}}) Table() *entx.Table {
	return entx.NewTable({{printf "%q" .StructName}}){{range .Lines}}.
		{{.}}{{end}}
}
{{end}}`

// GenerationConfig tunes the generated code.
type GenerationConfig struct {
	ImportPath       string
	Receiver         string
	GeneratorVersion string
}

// TemplateData is the input of one generated file.
type TemplateData struct {
	PackageName      string
	SourceFile       string
	ImportPath       string
	GeneratorVersion string
	Types            []TableData
}

// TableData holds the builder calls chained onto entx.NewTable for one struct.
type TableData struct {
	StructName string
	Receiver   string
	Lines      []string
}

// TemplateEngine renders Table methods.
type TemplateEngine struct {
	tmpl *template.Template
}

// NewTemplateEngine parses the embedded template.
func NewTemplateEngine() (*TemplateEngine, error) {
	tmpl, err := template.New("table").Parse(tableTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &TemplateEngine{tmpl: tmpl}, nil
}

// GenerateCode renders data and formats the result with gofmt rules.
func (te *TemplateEngine) GenerateCode(data TemplateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := te.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return formatted, nil
}

// BuildTemplateData turns the structs of one source file into template input.
// Every struct must be valid.
func BuildTemplateData(sourceFile string, structs []StructInfo, config GenerationConfig) (TemplateData, error) {
	if len(structs) == 0 {
		return TemplateData{}, fmt.Errorf("no structs to generate for %s", sourceFile)
	}

	if config.ImportPath == "" {
		config.ImportPath = DefaultImportPath
	}
	if config.Receiver == "" {
		config.Receiver = "e"
	}

	data := TemplateData{
		PackageName:      structs[0].PackageName,
		SourceFile:       sourceFile,
		ImportPath:       config.ImportPath,
		GeneratorVersion: config.GeneratorVersion,
	}

	for _, s := range structs {
		if !s.IsValid() {
			errs := s.Errors()
			return TemplateData{}, fmt.Errorf("struct %s has %d validation error(s), first: %w", s.StructName, len(errs), errs[0])
		}
		if s.PackageName != data.PackageName {
			return TemplateData{}, fmt.Errorf("struct %s is in package %s, expected %s", s.StructName, s.PackageName, data.PackageName)
		}
		data.Types = append(data.Types, TableData{
			StructName: s.StructName,
			Receiver:   config.Receiver,
			Lines:      buildLines(config.Receiver, s.Fields),
		})
	}

	return data, nil
}

// buildLines emits the builder calls in field order, then a single Exclude.
func buildLines(recv string, fields []FieldInfo) []string {
	var (
		lines    []string
		excluded []string
	)

	for _, f := range fields {
		name := strconv.Quote(f.EntxName)
		bind := fmt.Sprintf("entx.Bind(&%s.%s)", recv, f.Name)

		switch f.Kind {
		case KindOne:
			lines = append(lines, fmt.Sprintf("Relation(%s, entx.One(%s.%s))", name, recv, f.Name))
			continue
		case KindMany:
			lines = append(lines, fmt.Sprintf("Relation(%s, entx.Many(%s.%s))", name, recv, f.Name))
			continue
		case KindHidden:
			lines = append(lines, fmt.Sprintf("Field(%s, %s)", name, bind))
		default:
			lines = append(lines, fmt.Sprintf("Attribute(%s, %s)", name, bind))
		}

		if !naming.RoundTrips(f.EntxName) {
			lines = append(lines, fmt.Sprintf("Accessors(%s, %s)", name, bind))
		}
		if f.Exclude {
			excluded = append(excluded, name)
		}
	}

	if len(excluded) > 0 {
		lines = append(lines, fmt.Sprintf("Exclude(%s)", strings.Join(excluded, ", ")))
	}

	return lines
}
