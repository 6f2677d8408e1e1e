package value

import (
	"database/sql"
	"reflect"

	"github.com/wippyai/rawvalue/errors"
	"github.com/wippyai/rawvalue/types"
)

// nullableStructs are the database/sql containers TypeOf understands.
var nullableStructs = map[reflect.Type]*types.Descriptor{
	reflect.TypeFor[sql.NullBool]():    types.Nullable(types.Bool()),
	reflect.TypeFor[sql.NullByte]():    types.Nullable(types.U8()),
	reflect.TypeFor[sql.NullInt16]():   types.Nullable(types.S16()),
	reflect.TypeFor[sql.NullInt32]():   types.Nullable(types.S32()),
	reflect.TypeFor[sql.NullInt64]():   types.Nullable(types.S64()),
	reflect.TypeFor[sql.NullFloat64](): types.Nullable(types.F64()),
	reflect.TypeFor[sql.NullString]():  types.Nullable(types.String()),
	reflect.TypeFor[sql.NullTime]():    types.Nullable(types.DateTimeOffset()),
}

// TypeOf infers the declared type of a Go type. Pointers become option
// types and integer types bound in reg become enum or flags; reg may be nil,
// in which case the default registry is consulted.
func TypeOf(t reflect.Type, reg *types.Registry) (*types.Descriptor, error) {
	if t == nil {
		return nil, errors.InvalidInput(errors.PhaseClassify, "nil type")
	}
	if reg == nil {
		reg = types.DefaultRegistry()
	}

	if t.Kind() == reflect.Pointer {
		elem, err := TypeOf(t.Elem(), reg)
		if err != nil {
			return nil, err
		}
		return types.Nullable(elem), nil
	}

	if e, ok := reg.Lookup(t); ok {
		return types.Enum(e), nil
	}

	switch t {
	case timeType:
		return types.DateTimeOffset(), nil
	case durationType:
		return types.Duration(), nil
	case dateType:
		return types.Date(), nil
	case timeOfDayType:
		return types.TimeOfDay(), nil
	case dateTimeType:
		return types.DateTime(), nil
	case uuidType:
		return types.Guid(), nil
	}
	if d, ok := nullableStructs[t]; ok {
		return d, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return types.Bool(), nil
	case reflect.Int8:
		return types.S8(), nil
	case reflect.Int16:
		return types.S16(), nil
	case reflect.Int32:
		return types.S32(), nil
	case reflect.Int64, reflect.Int:
		return types.S64(), nil
	case reflect.Uint8:
		return types.U8(), nil
	case reflect.Uint16:
		return types.U16(), nil
	case reflect.Uint32:
		return types.U32(), nil
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return types.U64(), nil
	case reflect.Float32:
		return types.F32(), nil
	case reflect.Float64:
		return types.F64(), nil
	case reflect.String:
		return types.String(), nil
	}

	return nil, errors.New(errors.PhaseClassify, errors.KindUnsupported).
		GoType(t.String()).
		Detail("%s values have no raw value form", t.Kind()).
		Build()
}

// TypeOfValue is TypeOf(reflect.TypeOf(v), reg).
func TypeOfValue(v any, reg *types.Registry) (*types.Descriptor, error) {
	return TypeOf(reflect.TypeOf(v), reg)
}
