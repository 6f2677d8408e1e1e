package types

// Descriptor is the declared type that travels with a value.
type Descriptor struct {
	Elem *Descriptor // KindOption
	Enum *EnumType   // KindEnum, KindFlags
	Name string
	Kind Kind
}

var (
	boolDesc           = &Descriptor{Kind: KindBool}
	u8Desc             = &Descriptor{Kind: KindU8}
	s8Desc             = &Descriptor{Kind: KindS8}
	u16Desc            = &Descriptor{Kind: KindU16}
	s16Desc            = &Descriptor{Kind: KindS16}
	u32Desc            = &Descriptor{Kind: KindU32}
	s32Desc            = &Descriptor{Kind: KindS32}
	u64Desc            = &Descriptor{Kind: KindU64}
	s64Desc            = &Descriptor{Kind: KindS64}
	f32Desc            = &Descriptor{Kind: KindF32}
	f64Desc            = &Descriptor{Kind: KindF64}
	charDesc           = &Descriptor{Kind: KindChar}
	stringDesc         = &Descriptor{Kind: KindString}
	dateTimeDesc       = &Descriptor{Kind: KindDateTime}
	dateTimeOffsetDesc = &Descriptor{Kind: KindDateTimeOffset}
	dateDesc           = &Descriptor{Kind: KindDate}
	timeOfDayDesc      = &Descriptor{Kind: KindTimeOfDay}
	durationDesc       = &Descriptor{Kind: KindDuration}
	guidDesc           = &Descriptor{Kind: KindGuid}
)

func Bool() *Descriptor           { return boolDesc }
func U8() *Descriptor             { return u8Desc }
func S8() *Descriptor             { return s8Desc }
func U16() *Descriptor            { return u16Desc }
func S16() *Descriptor            { return s16Desc }
func U32() *Descriptor            { return u32Desc }
func S32() *Descriptor            { return s32Desc }
func U64() *Descriptor            { return u64Desc }
func S64() *Descriptor            { return s64Desc }
func F32() *Descriptor            { return f32Desc }
func F64() *Descriptor            { return f64Desc }
func Char() *Descriptor           { return charDesc }
func String() *Descriptor         { return stringDesc }
func DateTime() *Descriptor       { return dateTimeDesc }
func DateTimeOffset() *Descriptor { return dateTimeOffsetDesc }
func Date() *Descriptor           { return dateDesc }
func TimeOfDay() *Descriptor      { return timeOfDayDesc }
func Duration() *Descriptor       { return durationDesc }
func Guid() *Descriptor           { return guidDesc }

// Primitive returns the shared descriptor for a non-parameterized kind.
// It returns nil for enum, flags and option.
func Primitive(k Kind) *Descriptor {
	switch k {
	case KindBool:
		return boolDesc
	case KindU8:
		return u8Desc
	case KindS8:
		return s8Desc
	case KindU16:
		return u16Desc
	case KindS16:
		return s16Desc
	case KindU32:
		return u32Desc
	case KindS32:
		return s32Desc
	case KindU64:
		return u64Desc
	case KindS64:
		return s64Desc
	case KindF32:
		return f32Desc
	case KindF64:
		return f64Desc
	case KindChar:
		return charDesc
	case KindString:
		return stringDesc
	case KindDateTime:
		return dateTimeDesc
	case KindDateTimeOffset:
		return dateTimeOffsetDesc
	case KindDate:
		return dateDesc
	case KindTimeOfDay:
		return timeOfDayDesc
	case KindDuration:
		return durationDesc
	case KindGuid:
		return guidDesc
	default:
		return nil
	}
}

// Nullable wraps d in an option. Wrapping an option again is a no-op.
func Nullable(d *Descriptor) *Descriptor {
	if d == nil || d.Kind == KindOption {
		return d
	}
	return &Descriptor{Kind: KindOption, Elem: d}
}

// Enum describes an enum or flags type.
func Enum(e *EnumType) *Descriptor {
	kind := KindEnum
	if e.Flags {
		kind = KindFlags
	}
	return &Descriptor{Kind: kind, Name: e.Name, Enum: e}
}

// Unwrap strips option wrappers.
func (d *Descriptor) Unwrap() *Descriptor {
	for d != nil && d.Kind == KindOption {
		d = d.Elem
	}
	return d
}

// IsNullable reports whether d is an option type.
func (d *Descriptor) IsNullable() bool {
	return d != nil && d.Kind == KindOption
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	switch d.Kind {
	case KindOption:
		return "option<" + d.Elem.String() + ">"
	case KindEnum, KindFlags:
		if d.Name != "" {
			return d.Kind.String() + " " + d.Name
		}
	}
	return d.Kind.String()
}
