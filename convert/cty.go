package convert

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/hengadev/entx"
)

// ErrUnsupportedValue is returned for values with no counterpart on the other side.
var ErrUnsupportedValue = errors.New("unsupported value")

// ToCty converts a Record into a cty object. Nested records become objects,
// many-relations become tuples and nil becomes a dynamic null. Time values are
// rendered as RFC 3339 strings and durations in their String form.
func ToCty(r *entx.Record) (cty.Value, error) {
	if r == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	if r.Len() == 0 {
		return cty.EmptyObjectVal, nil
	}

	attrs := make(map[string]cty.Value, r.Len())
	for _, key := range r.Keys() {
		value, _ := r.Get(key)
		v, err := toCtyValue(value)
		if err != nil {
			return cty.NilVal, fmt.Errorf("attribute '%s': %w", key, err)
		}
		attrs[key] = v
	}
	return cty.ObjectVal(attrs), nil
}

func toCtyValue(value any) (cty.Value, error) {
	switch v := value.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return v, nil
	case *entx.Record:
		return ToCty(v)
	case []*entx.Record:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(v))
		for i, record := range v {
			elem, err := ToCty(record)
			if err != nil {
				return cty.NilVal, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = elem
		}
		return cty.TupleVal(elems), nil
	case time.Time:
		return cty.StringVal(v.Format(time.RFC3339Nano)), nil
	case time.Duration:
		return cty.StringVal(v.String()), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(v))
		for i, item := range v {
			elem, err := toCtyValue(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = elem
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(v))
		for key, item := range v {
			attr, err := toCtyValue(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key '%s': %w", key, err)
			}
			attrs[key] = attr
		}
		return cty.ObjectVal(attrs), nil
	}

	ty, err := gocty.ImpliedType(value)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%w: %T: %v", ErrUnsupportedValue, value, err)
	}
	v, err := gocty.ToCtyValue(value, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%w: %T: %v", ErrUnsupportedValue, value, err)
	}
	return v, nil
}

// FromCty converts an object or map value into fill input. Numbers that are
// whole and fit in an int64 come back as int64, others as float64. Lists, sets
// and tuples become []any.
func FromCty(v cty.Value) (map[string]any, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("%w: null value", ErrUnsupportedValue)
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("%w: expected an object, got %s", ErrUnsupportedValue, ty.FriendlyName())
	}

	out, err := fromCtyValue(v)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func fromCtyValue(v cty.Value) (any, error) {
	v, _ = v.Unmark()

	if !v.IsKnown() {
		return nil, fmt.Errorf("%w: unknown value of type %s", ErrUnsupportedValue, v.Type().FriendlyName())
	}
	if v.IsNull() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		return fromNumber(v.AsBigFloat()), nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		keys := make([]string, 0, v.LengthInt())
		values := make(map[string]cty.Value, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			keys = append(keys, k.AsString())
			values[k.AsString()] = elem
		}
		sort.Strings(keys)
		for _, key := range keys {
			item, err := fromCtyValue(values[key])
			if err != nil {
				return nil, fmt.Errorf("key '%s': %w", key, err)
			}
			out[key] = item
		}
		return out, nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			item, err := fromCtyValue(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", len(out), err)
			}
			out = append(out, item)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, ty.FriendlyName())
	}
}

func fromNumber(f *big.Float) any {
	if f.IsInt() {
		if i, acc := f.Int64(); acc == big.Exact {
			return i
		}
	}
	out, _ := f.Float64()
	return out
}
