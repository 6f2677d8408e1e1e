// Package types describes the declared type that accompanies a raw value.
//
// A Descriptor is a closed tag (Kind) plus the metadata a formatter needs:
// the element of an option (nullable) type and the member table of enum and
// flags types.
//
//	Kind            Go runtime value
//	─────────────────────────────────────────────
//	bool            bool
//	u8..u64         unsigned integers
//	s8..s64         signed integers
//	f32/f64         float32/float64
//	char            rune, byte, one-rune string
//	string          string
//	enum/flags      any integer, names from EnumType
//	datetime        value.DateTime, time.Time
//	datetimeoffset  time.Time
//	date            value.Date, time.Time
//	timeofday       value.TimeOfDay, time.Duration
//	duration        time.Duration
//	guid            uuid.UUID, [16]byte
//	option<T>       pointer, driver.Valuer, or T
//
// Descriptors come from three places:
//
//   - constructors (S32, Nullable(F64), Enum(colorType))
//   - Parse, which accepts canonical names, EDM names and option<T> / T?
//   - FromWIT, which converts component-model WIT types
//
// # Enum Tables
//
// NewEnumType compiles a member list once. Flags values are decomposed by
// taking the largest declared members first, so a composite member such as
// Purple = Red|Blue wins over its parts; the chosen names are emitted in
// declaration order, joined by ", ". Values that cannot be expressed with
// member names render as the underlying integer.
//
// Go named integer types are bound to tables through a Registry:
//
//	type Color uint8
//
//	const (
//		Red Color = 1 << iota
//		Green
//		Blue
//	)
//
//	types.RegisterEnum[Color]("Color", true,
//		types.M("Red", Red), types.M("Green", Green), types.M("Blue", Blue))
package types
