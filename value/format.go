package value

import (
	"strconv"

	"github.com/wippyai/rawvalue/errors"
)

// Format renders v as raw value text.
func Format(v Value) (string, error) {
	var buf [64]byte
	b, err := AppendFormat(buf[:0], v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendFormat appends the raw value text of v to dst. On error dst is
// returned unchanged.
func AppendFormat(dst []byte, v Value) ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return dst, errors.NullValue(errors.PhaseFormat, "")

	case KindBool:
		return strconv.AppendBool(dst, v.Bool()), nil

	case KindInt:
		return strconv.AppendInt(dst, v.Int(), 10), nil

	case KindUint:
		return strconv.AppendUint(dst, v.Uint(), 10), nil

	case KindFloat:
		return appendFloat(dst, v.Float(), int(v.Width)), nil

	case KindText:
		return append(dst, v.text...), nil

	case KindEnum:
		if v.enum == nil {
			return dst, errors.New(errors.PhaseFormat, errors.KindInvalidInput).
				Detail("enum value without member table").
				Build()
		}
		return append(dst, v.enum.Format(v.bits, v.signed)...), nil

	case KindDateTime:
		return appendTimestamp(dst, v.t.In(v.loc)), nil

	case KindDateTimeOffset:
		return appendTimestamp(dst, v.t), nil

	case KindDate:
		return v.t.AppendFormat(dst, dateLayout), nil

	case KindTimeOfDay:
		return appendTimeOfDay(dst, v.Duration()), nil

	case KindDuration:
		return appendDuration(dst, v.Duration()), nil

	case KindGuid:
		return append(dst, v.guid.String()...), nil

	default:
		return dst, errors.Unsupported(errors.PhaseFormat, "value kind "+v.Kind.String())
	}
}
