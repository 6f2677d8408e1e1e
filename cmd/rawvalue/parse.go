package main

import (
	"math/bits"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wippyai/rawvalue/errors"
	"github.com/wippyai/rawvalue/types"
	"github.com/wippyai/rawvalue/value"
)

// Layouts accepted for temporal input without an offset.
const (
	wallClockLayout = "2006-01-02T15:04:05.999999999"
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05.999999999"
)

// parseValue converts command line text into the Go value the serializer
// expects for declared.
func parseValue(text string, declared *types.Descriptor) (any, error) {
	d := declared.Unwrap()
	if d == nil {
		return nil, errors.InvalidInput(errors.PhaseParse, "type is required")
	}

	v, err := parseKind(strings.TrimSpace(text), text, d)
	if err != nil {
		if _, ok := err.(*errors.Error); ok {
			return nil, err
		}
		pe := errors.ParseFailed(strconv.Quote(text)+" as "+d.String(), err)
		pe.DeclaredType = declared.String()
		return nil, pe
	}
	return v, nil
}

func parseKind(s, raw string, d *types.Descriptor) (any, error) {
	switch d.Kind {
	case types.KindBool:
		return strconv.ParseBool(s)
	case types.KindS8, types.KindS16, types.KindS32, types.KindS64:
		return strconv.ParseInt(s, 10, 64)
	case types.KindU8, types.KindU16, types.KindU32, types.KindU64:
		return strconv.ParseUint(s, 10, 64)
	case types.KindF32, types.KindF64:
		return strconv.ParseFloat(s, d.Kind.Width())
	case types.KindChar, types.KindString:
		// text is taken verbatim, surrounding spaces included
		return raw, nil
	case types.KindEnum, types.KindFlags:
		return parseEnum(s, d)
	case types.KindDateTime:
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, nil
		}
		t, err := time.Parse(wallClockLayout, s)
		if err != nil {
			return nil, err
		}
		return value.DateTime{
			Year: t.Year(), Month: t.Month(), Day: t.Day(),
			Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond(),
		}, nil
	case types.KindDateTimeOffset:
		return time.Parse(time.RFC3339Nano, s)
	case types.KindDate:
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, err
		}
		return value.DateOf(t), nil
	case types.KindTimeOfDay:
		t, err := time.Parse(timeLayout, s)
		if err != nil {
			return nil, err
		}
		return value.TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}, nil
	case types.KindDuration:
		return time.ParseDuration(s)
	case types.KindGuid:
		return uuid.Parse(s)
	}
	return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
		DeclaredType(d.String()).
		Detail("no text input form").
		Build()
}

// parseEnum accepts an integer or member names joined with "," (flags) or a
// single member name.
func parseEnum(s string, d *types.Descriptor) (any, error) {
	if d.Enum == nil {
		return nil, errors.InvalidInput(errors.PhaseParse, "enum type has no members")
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}

	names := []string{s}
	if d.Enum.Flags {
		names = strings.Split(s, ",")
	}

	var acc uint64
	for _, name := range names {
		name = strings.TrimSpace(name)
		m, ok := d.Enum.Member(name)
		if !ok {
			return nil, errors.NotFound(errors.PhaseParse, d.Enum.Name+" member", name)
		}
		acc |= m.Value
	}

	// single signed member values keep their sign, e.g. Low = -1
	if len(names) == 1 && bits.LeadingZeros64(acc) == 0 {
		return int64(acc), nil
	}
	return acc, nil
}

// parseCount reads the value of a simulated $count request.
func parseCount(text string) (any, error) {
	s := strings.TrimSpace(text)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.ParseFailed(strconv.Quote(text)+" as count", err)
	}
	return f, nil
}
