package entx

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Field is a typed storage slot registered in a Table.
type Field struct {
	get func() any
	set func(value any) error
}

// Bind returns a Field reading and writing *p.
//
// Values whose dynamic type is T are assigned as-is. Anything else goes through
// mapstructure, which covers the usual shapes of decoded payloads: whole float64
// values into integer fields, RFC 3339 strings into time.Time, maps into structs,
// values into pointer fields. A float with a fractional part is rejected by
// integer fields.
func Bind[T any](p *T) Field {
	return Field{
		get: func() any { return *p },
		set: func(value any) error { return assign(p, value) },
	}
}

// Get returns the value currently stored in the slot.
func (f Field) Get() any {
	if f.get == nil {
		return nil
	}
	return f.get()
}

// Set stores value in the slot. The zero Field stores nothing and fails with
// ErrInvalidTable.
func (f Field) Set(value any) error {
	if f.set == nil {
		return fmt.Errorf("%w: field is not bound", ErrInvalidTable)
	}
	return f.set(value)
}

func (f Field) bound() bool {
	return f.get != nil && f.set != nil
}

func assign[T any](p *T, value any) error {
	if v, ok := value.(T); ok {
		*p = v
		return nil
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
			wholeFloatHookFunc(),
		),
		Result:  &out,
		TagName: StructTag,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(value); err != nil {
		return err
	}

	*p = out
	return nil
}

// wholeFloatHookFunc refuses to truncate a float into an integer kind.
func wholeFloatHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		switch from.Kind() {
		case reflect.Float32, reflect.Float64:
		default:
			return data, nil
		}
		switch to.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return data, nil
		}

		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("%v has a fractional part and cannot be stored in %s", f, to)
		}
		return data, nil
	}
}
