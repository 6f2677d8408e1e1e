package value

import (
	"database/sql/driver"
	"math"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/wippyai/rawvalue/errors"
	"github.com/wippyai/rawvalue/types"
)

const (
	minYear = 0
	maxYear = 9999
)

var (
	timeType      = reflect.TypeFor[time.Time]()
	durationType  = reflect.TypeFor[time.Duration]()
	dateType      = reflect.TypeFor[Date]()
	timeOfDayType = reflect.TypeFor[TimeOfDay]()
	dateTimeType  = reflect.TypeFor[DateTime]()
	uuidType      = reflect.TypeFor[uuid.UUID]()
)

// ClassifyOptions configures classification.
type ClassifyOptions struct {
	// Location is the observer location datetime values are rendered in.
	// nil means time.Local.
	Location *time.Location
}

// Classify resolves raw against declared. Nullable declared types and Go
// nullable containers (pointers, driver.Valuer structs such as sql.NullInt64)
// are unwrapped; an absent value yields Null.
func Classify(raw any, declared *types.Descriptor, opts ClassifyOptions) (Value, error) {
	if declared == nil {
		return Value{}, errors.InvalidInput(errors.PhaseClassify, "declared type is required")
	}
	d := declared.Unwrap()
	if d == nil {
		return Value{}, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
			DeclaredType(declared.String()).
			Detail("option without element type").
			Build()
	}

	rv, present, err := unwrapNullable(raw)
	if err != nil {
		return Value{}, err
	}
	if !present {
		return Null(), nil
	}

	switch d.Kind {
	case types.KindBool:
		if rv.Kind() != reflect.Bool {
			return Value{}, mismatch(rv, d)
		}
		return OfBool(rv.Bool()), nil

	case types.KindS8, types.KindS16, types.KindS32, types.KindS64:
		i, err := signedOf(rv, d)
		if err != nil {
			return Value{}, err
		}
		return OfInt(i, d.Kind.Width()), nil

	case types.KindU8, types.KindU16, types.KindU32, types.KindU64:
		u, err := unsignedOf(rv, d)
		if err != nil {
			return Value{}, err
		}
		return OfUint(u, d.Kind.Width()), nil

	case types.KindF32, types.KindF64:
		if !rv.CanFloat() {
			return Value{}, mismatch(rv, d)
		}
		f := rv.Float()
		if d.Kind == types.KindF32 && !math.IsInf(f, 0) && math.IsInf(float64(float32(f)), 0) {
			return Value{}, errors.Overflow(errors.PhaseClassify, f, d.String())
		}
		return OfFloat(f, d.Kind.Width()), nil

	case types.KindChar:
		return charOf(rv, d)

	case types.KindString:
		if rv.Kind() != reflect.String {
			return Value{}, mismatch(rv, d)
		}
		return OfText(rv.String()), nil

	case types.KindEnum, types.KindFlags:
		return enumOf(rv, d)

	case types.KindDateTime:
		switch {
		case isStruct(rv, dateTimeType):
			dt := rv.Convert(dateTimeType).Interface().(DateTime)
			return inYearRange(OfDateTime(dt.Instant(opts.Location), opts.Location), rv, d)
		case isStruct(rv, timeType):
			return inYearRange(OfDateTime(rv.Convert(timeType).Interface().(time.Time), opts.Location), rv, d)
		}
		return Value{}, mismatch(rv, d)

	case types.KindDateTimeOffset:
		if !isStruct(rv, timeType) {
			return Value{}, mismatch(rv, d)
		}
		return inYearRange(OfDateTimeOffset(rv.Convert(timeType).Interface().(time.Time)), rv, d)

	case types.KindDate:
		switch {
		case isStruct(rv, dateType):
			return inYearRange(OfDate(rv.Convert(dateType).Interface().(Date)), rv, d)
		case isStruct(rv, timeType):
			return inYearRange(OfDate(DateOf(rv.Convert(timeType).Interface().(time.Time))), rv, d)
		}
		return Value{}, mismatch(rv, d)

	case types.KindTimeOfDay:
		return timeOfDayOf(rv, d)

	case types.KindDuration:
		// int64 values are read as nanoseconds
		if rv.Kind() != reflect.Int64 {
			return Value{}, mismatch(rv, d)
		}
		return OfDuration(time.Duration(rv.Int())), nil

	case types.KindGuid:
		if rv.Kind() != reflect.Array || !rv.Type().ConvertibleTo(uuidType) {
			return Value{}, mismatch(rv, d)
		}
		return OfGuid(rv.Convert(uuidType).Interface().(uuid.UUID)), nil

	default:
		return Value{}, errors.New(errors.PhaseClassify, errors.KindUnsupported).
			GoType(rv.Type().String()).
			DeclaredType(d.String()).
			Detail("declared kind has no raw value form").
			Build()
	}
}

// unwrapNullable strips pointers and driver.Valuer structs. present is false
// when the value is absent.
func unwrapNullable(raw any) (rv reflect.Value, present bool, err error) {
	if raw == nil {
		return reflect.Value{}, false, nil
	}
	rv = reflect.ValueOf(raw)
	for {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}, false, nil
			}
			rv = rv.Elem()
			continue
		case reflect.Struct:
			if !isKnownStruct(rv.Type()) {
				if valuer, ok := rv.Interface().(driver.Valuer); ok {
					v, verr := valuer.Value()
					if verr != nil {
						return reflect.Value{}, false, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
							GoType(rv.Type().String()).
							Detail("driver.Valuer failed").
							Cause(verr).
							Build()
					}
					if v == nil {
						return reflect.Value{}, false, nil
					}
					rv = reflect.ValueOf(v)
					continue
				}
			}
		}
		return rv, true, nil
	}
}

func isKnownStruct(t reflect.Type) bool {
	return t == timeType || t == dateType || t == timeOfDayType || t == dateTimeType
}

// isStruct reports whether rv is target or a named struct type defined on it.
func isStruct(rv reflect.Value, target reflect.Type) bool {
	return rv.Kind() == reflect.Struct && rv.Type().ConvertibleTo(target)
}

func signedOf(rv reflect.Value, d *types.Descriptor) (int64, error) {
	bits := d.Kind.Width()
	switch {
	case rv.CanInt():
		i := rv.Int()
		if bits < 64 {
			lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
			if i < lo || i > hi {
				return 0, errors.Overflow(errors.PhaseClassify, i, d.String())
			}
		}
		return i, nil
	case rv.CanUint():
		u := rv.Uint()
		if u > uint64(1)<<(bits-1)-1 {
			return 0, errors.Overflow(errors.PhaseClassify, u, d.String())
		}
		return int64(u), nil
	}
	return 0, mismatch(rv, d)
}

func unsignedOf(rv reflect.Value, d *types.Descriptor) (uint64, error) {
	bits := d.Kind.Width()
	switch {
	case rv.CanUint():
		u := rv.Uint()
		if bits < 64 && u > uint64(1)<<bits-1 {
			return 0, errors.Overflow(errors.PhaseClassify, u, d.String())
		}
		return u, nil
	case rv.CanInt():
		i := rv.Int()
		if i < 0 || (bits < 64 && uint64(i) > uint64(1)<<bits-1) {
			return 0, errors.Overflow(errors.PhaseClassify, i, d.String())
		}
		return uint64(i), nil
	}
	return 0, mismatch(rv, d)
}

func charOf(rv reflect.Value, d *types.Descriptor) (Value, error) {
	var r rune
	switch {
	case rv.Kind() == reflect.String:
		s := rv.String()
		c, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || c == utf8.RuneError {
			return Value{}, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
				GoType(rv.Type().String()).
				DeclaredType(d.String()).
				Detail("char requires exactly one character, got %q", s).
				Build()
		}
		return OfText(s), nil
	case rv.CanInt():
		i := rv.Int()
		if i < 0 || i > math.MaxInt32 {
			return Value{}, errors.Overflow(errors.PhaseClassify, i, d.String())
		}
		r = rune(i)
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt32 {
			return Value{}, errors.Overflow(errors.PhaseClassify, u, d.String())
		}
		r = rune(u)
	default:
		return Value{}, mismatch(rv, d)
	}
	if !utf8.ValidRune(r) {
		return Value{}, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
			GoType(rv.Type().String()).
			DeclaredType(d.String()).
			Value(int64(r)).
			Detail("invalid code point U+%04X", r).
			Build()
	}
	return OfText(string(r)), nil
}

func enumOf(rv reflect.Value, d *types.Descriptor) (Value, error) {
	if d.Enum == nil {
		return Value{}, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
			DeclaredType(d.String()).
			Detail("enum descriptor has no member table").
			Build()
	}
	switch {
	case rv.CanInt():
		return OfEnum(uint64(rv.Int()), true, rv.Type().Bits(), d.Enum), nil
	case rv.CanUint():
		return OfEnum(rv.Uint(), false, rv.Type().Bits(), d.Enum), nil
	}
	return Value{}, mismatch(rv, d)
}

func timeOfDayOf(rv reflect.Value, d *types.Descriptor) (Value, error) {
	switch {
	case isStruct(rv, timeOfDayType):
		tod := rv.Convert(timeOfDayType).Interface().(TimeOfDay)
		if !tod.valid() {
			return Value{}, errors.New(errors.PhaseClassify, errors.KindOverflow).
				GoType(rv.Type().String()).
				DeclaredType(d.String()).
				Value(tod).
				Detail("time of day out of range: %+v", tod).
				Build()
		}
		return OfTimeOfDay(tod), nil
	case rv.Kind() == reflect.Int64:
		dur := time.Duration(rv.Int())
		if dur < 0 || dur >= 24*time.Hour {
			return Value{}, errors.Overflow(errors.PhaseClassify, dur, d.String())
		}
		return Value{Kind: KindTimeOfDay, bits: uint64(dur)}, nil
	}
	return Value{}, mismatch(rv, d)
}

// inYearRange rejects temporal values whose rendered year has no four-digit
// form. Datetime years are checked in the observer location.
func inYearRange(v Value, rv reflect.Value, d *types.Descriptor) (Value, error) {
	t := v.Time()
	if y := t.Year(); y < minYear || y > maxYear {
		return Value{}, errors.New(errors.PhaseClassify, errors.KindOverflow).
			GoType(rv.Type().String()).
			DeclaredType(d.String()).
			Value(t).
			Detail("year %d outside %04d-%04d", y, minYear, maxYear).
			Build()
	}
	return v, nil
}

func mismatch(rv reflect.Value, d *types.Descriptor) *errors.Error {
	return errors.New(errors.PhaseClassify, errors.KindTypeMismatch).
		GoType(rv.Type().String()).
		DeclaredType(d.String()).
		Detail("%s value cannot be read as %s", rv.Kind(), d.Kind).
		Build()
}
