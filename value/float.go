package value

import (
	"bytes"
	"math"
	"strconv"
)

// Significant digits below which large values switch to scientific notation.
const (
	f64Precision = 15
	f32Precision = 7
	minFixedExp  = -5
)

// appendFloat writes the shortest round-trip digits of f. Values whose
// decimal exponent lies in (minFixedExp, max(precision, digits)) use fixed
// notation ("5", "0.0001", "9007199254740992"); the rest use d.dddE+XX with
// at least two exponent digits.
func appendFloat(dst []byte, f float64, width int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "INF"...)
	case math.IsInf(f, -1):
		return append(dst, "-INF"...)
	}

	bitSize, precision := 64, f64Precision
	if width == 32 {
		bitSize, precision = 32, f32Precision
	}

	var scratch [32]byte
	sci := strconv.AppendFloat(scratch[:0], f, 'e', -1, bitSize)
	mark := bytes.IndexByte(sci, 'e')
	exp, _ := strconv.Atoi(string(sci[mark+1:]))

	digits := 0
	for _, c := range sci[:mark] {
		if c >= '0' && c <= '9' {
			digits++
		}
	}

	if exp > minFixedExp && exp < max(precision, digits) {
		return strconv.AppendFloat(dst, f, 'f', -1, bitSize)
	}

	dst = append(dst, sci[:mark]...)
	dst = append(dst, 'E')
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else {
		dst = append(dst, '+')
	}
	if exp < 10 {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, int64(exp), 10)
}
