package types

import (
	"sort"
	"strings"

	"github.com/wippyai/rawvalue/errors"
)

// aliases maps accepted spellings to kinds. Lookup is case-insensitive.
var aliases = map[string]Kind{
	"bool":               KindBool,
	"boolean":            KindBool,
	"edm.boolean":        KindBool,
	"u8":                 KindU8,
	"byte":               KindU8,
	"edm.byte":           KindU8,
	"s8":                 KindS8,
	"sbyte":              KindS8,
	"edm.sbyte":          KindS8,
	"u16":                KindU16,
	"s16":                KindS16,
	"int16":              KindS16,
	"edm.int16":          KindS16,
	"u32":                KindU32,
	"s32":                KindS32,
	"int32":              KindS32,
	"edm.int32":          KindS32,
	"u64":                KindU64,
	"s64":                KindS64,
	"int64":              KindS64,
	"edm.int64":          KindS64,
	"f32":                KindF32,
	"float32":            KindF32,
	"single":             KindF32,
	"edm.single":         KindF32,
	"f64":                KindF64,
	"float64":            KindF64,
	"double":             KindF64,
	"edm.double":         KindF64,
	"char":               KindChar,
	"string":             KindString,
	"edm.string":         KindString,
	"datetime":           KindDateTime,
	"datetimeoffset":     KindDateTimeOffset,
	"edm.datetimeoffset": KindDateTimeOffset,
	"date":               KindDate,
	"edm.date":           KindDate,
	"timeofday":          KindTimeOfDay,
	"edm.timeofday":      KindTimeOfDay,
	"duration":           KindDuration,
	"edm.duration":       KindDuration,
	"guid":               KindGuid,
	"uuid":               KindGuid,
	"edm.guid":           KindGuid,
}

// Parse resolves a type name. Nullable types are written option<T> or T?.
// Names that are not primitives are looked up as enums in reg (which may be nil).
func Parse(name string, reg *Registry) (*Descriptor, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return nil, errors.InvalidInput(errors.PhaseParse, "empty type name")
	}

	if inner, ok := strings.CutSuffix(s, "?"); ok {
		d, err := Parse(inner, reg)
		if err != nil {
			return nil, err
		}
		return Nullable(d), nil
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "option<") && strings.HasSuffix(s, ">") {
		d, err := Parse(s[len("option<"):len(s)-1], reg)
		if err != nil {
			return nil, err
		}
		return Nullable(d), nil
	}

	if k, ok := aliases[lower]; ok {
		return Primitive(k), nil
	}

	if reg != nil {
		if e, ok := reg.LookupName(s); ok {
			return Enum(e), nil
		}
	}
	return nil, errors.NotFound(errors.PhaseParse, "type", s)
}

// MustParse is Parse for static declarations; it panics on error.
func MustParse(name string, reg *Registry) *Descriptor {
	d, err := Parse(name, reg)
	if err != nil {
		panic(err)
	}
	return d
}

// PrimitiveNames lists the canonical primitive type names.
func PrimitiveNames() []string {
	names := make([]string, 0, KindGuid+1)
	for k := KindBool; k <= KindGuid; k++ {
		if k == KindEnum || k == KindFlags {
			continue
		}
		names = append(names, k.String())
	}
	return names
}

// Aliases lists every accepted primitive spelling, sorted.
func Aliases() []string {
	names := make([]string, 0, len(aliases))
	for a := range aliases {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}
