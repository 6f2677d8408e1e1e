package value

import (
	"math"
	"reflect"
	"strconv"

	"github.com/wippyai/rawvalue/errors"
)

// AppendCount appends the bare decimal form of a collection count. Any Go
// integer, pointer to one, or integral float is accepted regardless of the
// declared type; counts are never negative.
func AppendCount(dst []byte, raw any) ([]byte, error) {
	rv, present, err := unwrapNullable(raw)
	if err != nil {
		return dst, err
	}
	if !present {
		return dst, errors.New(errors.PhaseCount, errors.KindNullValue).
			Detail("count value is null").
			Build()
	}

	switch {
	case rv.CanInt():
		i := rv.Int()
		if i < 0 {
			return dst, negativeCount(rv, i)
		}
		return strconv.AppendInt(dst, i, 10), nil

	case rv.CanUint():
		return strconv.AppendUint(dst, rv.Uint(), 10), nil

	case rv.CanFloat():
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return dst, errors.New(errors.PhaseCount, errors.KindInvalidInput).
				GoType(rv.Type().String()).
				Value(f).
				Detail("count must be a whole number").
				Build()
		}
		if f < 0 {
			return dst, negativeCount(rv, f)
		}
		if f >= math.MaxUint64 {
			return dst, errors.Overflow(errors.PhaseCount, f, "u64")
		}
		return strconv.AppendUint(dst, uint64(f), 10), nil
	}

	return dst, errors.New(errors.PhaseCount, errors.KindTypeMismatch).
		GoType(rv.Type().String()).
		Detail("%s value is not a count", rv.Kind()).
		Build()
}

// FormatCount is AppendCount into a new string.
func FormatCount(raw any) (string, error) {
	var buf [24]byte
	b, err := AppendCount(buf[:0], raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func negativeCount(rv reflect.Value, v any) *errors.Error {
	return errors.New(errors.PhaseCount, errors.KindInvalidInput).
		GoType(rv.Type().String()).
		Value(v).
		Detail("count %v is negative", v).
		Build()
}
