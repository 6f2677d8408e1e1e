package value

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/wippyai/rawvalue/types"
)

// Kind is the classified kind of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindText
	KindEnum
	KindDateTime
	KindDateTimeOffset
	KindDate
	KindTimeOfDay
	KindDuration
	KindGuid
)

var kindNames = [...]string{
	KindNull:           "null",
	KindBool:           "bool",
	KindInt:            "int",
	KindUint:           "uint",
	KindFloat:          "float",
	KindText:           "text",
	KindEnum:           "enum",
	KindDateTime:       "datetime",
	KindDateTimeOffset: "datetimeoffset",
	KindDate:           "date",
	KindTimeOfDay:      "timeofday",
	KindDuration:       "duration",
	KindGuid:           "guid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a classified scalar. Exactly one payload is meaningful, selected
// by Kind. The zero Value is null.
type Value struct {
	t      time.Time
	loc    *time.Location // KindDateTime observer location
	enum   *types.EnumType
	text   string
	bits   uint64 // bool, int, uint, float, enum, duration, date, time of day
	guid   uuid.UUID
	Kind   Kind
	Width  uint8 // numeric and enum bit width
	signed bool  // enum underlying type
}

func Null() Value { return Value{} }

func OfBool(b bool) Value {
	v := Value{Kind: KindBool}
	if b {
		v.bits = 1
	}
	return v
}

func OfInt(i int64, width int) Value {
	return Value{Kind: KindInt, bits: uint64(i), Width: uint8(width)}
}

func OfUint(u uint64, width int) Value {
	return Value{Kind: KindUint, bits: u, Width: uint8(width)}
}

// OfFloat stores f; width 32 marks single precision.
func OfFloat(f float64, width int) Value {
	if width == 32 {
		f = float64(float32(f))
	}
	return Value{Kind: KindFloat, bits: math.Float64bits(f), Width: uint8(width)}
}

func OfText(s string) Value {
	return Value{Kind: KindText, text: s}
}

// OfEnum stores the raw bits of an enum value. signed marks a signed
// underlying type so undefined values keep their sign.
func OfEnum(bits uint64, signed bool, width int, e *types.EnumType) Value {
	return Value{Kind: KindEnum, bits: bits, signed: signed, Width: uint8(width), enum: e}
}

// OfDateTime stores an instant that is rendered in the observer location loc.
func OfDateTime(t time.Time, loc *time.Location) Value {
	if loc == nil {
		loc = time.Local
	}
	return Value{Kind: KindDateTime, t: t, loc: loc}
}

// OfDateTimeOffset stores t with its own offset.
func OfDateTimeOffset(t time.Time) Value {
	return Value{Kind: KindDateTimeOffset, t: t}
}

func OfDate(d Date) Value {
	return Value{Kind: KindDate, t: time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)}
}

func OfTimeOfDay(tod TimeOfDay) Value {
	return Value{Kind: KindTimeOfDay, bits: uint64(tod.Duration())}
}

func OfDuration(d time.Duration) Value {
	return Value{Kind: KindDuration, bits: uint64(d)}
}

func OfGuid(u uuid.UUID) Value {
	return Value{Kind: KindGuid, guid: u}
}

func (v Value) IsNull() bool { return v.Kind == KindNull }

func (v Value) Bool() bool { return v.bits != 0 }

func (v Value) Int() int64 { return int64(v.bits) }

func (v Value) Uint() uint64 { return v.bits }

func (v Value) Float() float64 { return math.Float64frombits(v.bits) }

func (v Value) Text() string { return v.text }

// Enum returns the raw bits and member table of an enum value.
func (v Value) Enum() (uint64, *types.EnumType) { return v.bits, v.enum }

// Time returns the instant of datetime, datetimeoffset and date values.
// Datetime values are returned in their observer location.
func (v Value) Time() time.Time {
	if v.Kind == KindDateTime {
		return v.t.In(v.loc)
	}
	return v.t
}

func (v Value) Duration() time.Duration { return time.Duration(v.bits) }

func (v Value) Guid() uuid.UUID { return v.guid }
