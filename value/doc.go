// Package value classifies Go scalars against a declared type and renders
// them as raw value text.
//
// # Flow
//
//	raw any + *types.Descriptor ──Classify──▶ Value ──Format──▶ text
//
// Classify unwraps option types and Go nullable containers, then checks the
// runtime value against the declared kind. The result is a Value, a tagged
// union whose Kind is one of a closed set (null, bool, int, uint, float,
// text, enum, datetime, datetimeoffset, date, timeofday, duration, guid).
// Format is a pure function of the Value.
//
// # Text Forms
//
//	Kind             Example
//	───────────────────────────────────────────────
//	bool             false
//	int/uint         -42
//	float            5, 0.1, 1E+15, 1.5E-07, NaN, INF
//	text             verbatim, no quoting
//	enum/flags       Red, Blue
//	datetime         2024-03-01T00:00:00-08:00 (observer location)
//	datetimeoffset   2024-03-01T12:30:00.25+05:30 (offset kept)
//	date             2024-03-01
//	timeofday        13:45:00.0000000
//	duration         P1DT2H30M, -PT0.5S, PT0S
//	guid             lowercase 8-4-4-4-12
//
// Formatting is locale-invariant: no digit grouping, '.' as decimal point.
//
// # Counts
//
// AppendCount renders a $count result. It ignores declared types and only
// requires a non-negative whole number.
package value
