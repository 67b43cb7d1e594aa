package convert

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/hengadev/entx"
)

// DecodeHCL reads the top-level attributes of an HCL document into fill input.
// Blocks are rejected and expressions may not reference variables or
// functions.
//
//	name    = "Ada"
//	age     = 36
//	created = "2024-01-02T15:04:05Z"
func DecodeHCL(src []byte, filename string) (map[string]any, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluate %s: %w", name, diags)
		}
		values[name] = v
	}

	return FromCty(cty.ObjectVal(values))
}

// FillHCL decodes src and fills e with the result.
func FillHCL[E entx.Entity](e E, src []byte, filename string, exclude ...string) (E, error) {
	values, err := DecodeHCL(src, filename)
	if err != nil {
		return e, err
	}
	return entx.Fill(e, values, exclude...)
}
