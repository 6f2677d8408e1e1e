package value

import (
	"strconv"
	"time"
)

const (
	// timestampLayout trims trailing fractional zeros and writes Z for a
	// zero offset, so time.Parse(time.RFC3339Nano, s) restores instant and offset.
	timestampLayout = time.RFC3339Nano
	dateLayout      = "2006-01-02"
)

// appendTimestamp truncates offsets to whole minutes; the layout cannot carry
// seconds, and a truncated offset with a matching wall clock keeps the instant.
func appendTimestamp(dst []byte, t time.Time) []byte {
	if _, off := t.Zone(); off%60 != 0 {
		t = t.In(time.FixedZone("", off-off%60))
	}
	return t.AppendFormat(dst, timestampLayout)
}

// appendTimeOfDay writes hh:mm:ss.fffffff with seven fractional digits.
func appendTimeOfDay(dst []byte, d time.Duration) []byte {
	h := int(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m := int(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second
	ticks := int(d / 100) // 100ns units

	dst = appendPadded(dst, h, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, m, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, s, 2)
	dst = append(dst, '.')
	return appendPadded(dst, ticks, 7)
}

// appendDuration writes an ISO 8601 duration: [-]P[nD][T[nH][nM][n[.f]S]].
// Days are the largest unit; a zero duration is PT0S.
func appendDuration(dst []byte, d time.Duration) []byte {
	if d == 0 {
		return append(dst, "PT0S"...)
	}

	// work in uint64 so the most negative duration does not overflow
	u := uint64(d)
	if d < 0 {
		dst = append(dst, '-')
		u = -u
	}
	dst = append(dst, 'P')

	const (
		day    = uint64(24 * time.Hour)
		hour   = uint64(time.Hour)
		minute = uint64(time.Minute)
		sec    = uint64(time.Second)
	)

	days := u / day
	u %= day
	hours := u / hour
	u %= hour
	mins := u / minute
	u %= minute
	secs := u / sec
	frac := u % sec

	if days > 0 {
		dst = strconv.AppendUint(dst, days, 10)
		dst = append(dst, 'D')
	}
	if hours == 0 && mins == 0 && secs == 0 && frac == 0 {
		return dst
	}

	dst = append(dst, 'T')
	if hours > 0 {
		dst = strconv.AppendUint(dst, hours, 10)
		dst = append(dst, 'H')
	}
	if mins > 0 {
		dst = strconv.AppendUint(dst, mins, 10)
		dst = append(dst, 'M')
	}
	if secs > 0 || frac > 0 {
		dst = strconv.AppendUint(dst, secs, 10)
		if frac > 0 {
			dst = append(dst, '.')
			digits := 9
			for frac%10 == 0 {
				frac /= 10
				digits--
			}
			dst = appendPadded(dst, int(frac), digits)
		}
		dst = append(dst, 'S')
	}
	return dst
}

func appendPadded(dst []byte, v, width int) []byte {
	var buf [20]byte
	s := strconv.AppendInt(buf[:0], int64(v), 10)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}
