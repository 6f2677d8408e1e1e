package types

type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindF32
	KindF64
	KindChar
	KindString
	KindEnum
	KindFlags
	KindDateTime
	KindDateTimeOffset
	KindDate
	KindTimeOfDay
	KindDuration
	KindGuid
	KindOption
)

var kindNames = [...]string{
	KindBool:           "bool",
	KindU8:             "u8",
	KindS8:             "s8",
	KindU16:            "u16",
	KindS16:            "s16",
	KindU32:            "u32",
	KindS32:            "s32",
	KindU64:            "u64",
	KindS64:            "s64",
	KindF32:            "f32",
	KindF64:            "f64",
	KindChar:           "char",
	KindString:         "string",
	KindEnum:           "enum",
	KindFlags:          "flags",
	KindDateTime:       "datetime",
	KindDateTimeOffset: "datetimeoffset",
	KindDate:           "date",
	KindTimeOfDay:      "timeofday",
	KindDuration:       "duration",
	KindGuid:           "guid",
	KindOption:         "option",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsSigned() bool {
	switch k {
	case KindS8, KindS16, KindS32, KindS64:
		return true
	}
	return false
}

func (k Kind) IsUnsigned() bool {
	switch k {
	case KindU8, KindU16, KindU32, KindU64:
		return true
	}
	return false
}

func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

func (k Kind) IsTemporal() bool {
	return k >= KindDateTime && k <= KindDuration
}

// Width returns the bit width of numeric kinds, 0 otherwise.
func (k Kind) Width() int {
	switch k {
	case KindU8, KindS8:
		return 8
	case KindU16, KindS16:
		return 16
	case KindU32, KindS32, KindF32:
		return 32
	case KindU64, KindS64, KindF64:
		return 64
	default:
		return 0
	}
}
