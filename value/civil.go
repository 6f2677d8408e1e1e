package value

import (
	"time"
)

// Date is a calendar date without time of day or offset.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date part of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// TimeOfDay is a wall-clock time without date or offset.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Duration returns the time elapsed since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second +
		time.Duration(t.Nanosecond)
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 &&
		t.Nanosecond >= 0 && t.Nanosecond < int(time.Second)
}

// DateTimeKind says how the wall clock of a DateTime is anchored.
type DateTimeKind uint8

const (
	// Unspecified wall clocks are read in the observer location.
	Unspecified DateTimeKind = iota
	// UTC wall clocks denote a UTC instant.
	UTC
	// Local wall clocks are read in time.Local.
	Local
)

// DateTime is a date and time of day without an explicit offset. It is
// converted to the observer's location when serialized.
type DateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	Kind       DateTimeKind
}

// Instant resolves the wall clock to an instant, reading Unspecified wall
// clocks in observer.
func (dt DateTime) Instant(observer *time.Location) time.Time {
	loc := observer
	switch dt.Kind {
	case UTC:
		loc = time.UTC
	case Local:
		loc = time.Local
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, loc)
}

// Today returns midnight of the current day as an Unspecified DateTime.
func Today() DateTime {
	y, m, d := time.Now().Date()
	return DateTime{Year: y, Month: m, Day: d}
}
