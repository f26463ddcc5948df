package flatjson

import (
	"math"
	"strconv"
)

var pow10 = [...]float64{1, 10, 100, 1000, 10000, 100000, 1000000,
	10000000, 100000000, 1000000000}

// appendDecimal appends v in minimal decimal digits with a leading
// '-' for negatives. dst must have spare capacity; the writer's
// scratch buffer always does.
func appendDecimal(dst []byte, v int64) []byte {
	u := uint64(v)
	if v < 0 {
		u = ^u + 1
	}
	mark := len(dst)
	for {
		dst = append(dst, byte('0'+u%10))
		u /= 10
		if u == 0 {
			break
		}
	}
	if v < 0 {
		dst = append(dst, '-')
	}
	reverse(dst[mark:])
	return dst
}

// appendFixed appends value with at most prec fractional digits,
// trailing zeros trimmed. Ties round to even. Magnitudes above 2^31-1
// fall back to exponential notation; non-finite values come out as
// "nan".
func appendFixed(dst []byte, value float64, prec int) []byte {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return append(dst, "nan"...)
	}
	if prec < 0 {
		prec = 0
	} else if prec > 9 {
		// ten or more fractional digits overflow the frac accumulator
		prec = 9
	}
	neg := value < 0
	if neg {
		value = -value
	}
	const thresMax = float64(1<<31 - 1)
	if value > thresMax {
		if neg {
			value = -value
		}
		return strconv.AppendFloat(dst, value, 'e', 6, 64)
	}

	whole := int64(value)
	tmp := (value - float64(whole)) * pow10[prec]
	frac := uint64(tmp)
	diff := tmp - float64(frac)

	if diff > 0.5 {
		frac++
		// rollover, e.g. 0.99 at prec 1 is 1.0
		if frac >= uint64(pow10[prec]) {
			frac = 0
			whole++
		}
	} else if diff == 0.5 && (frac == 0 || frac&1 == 1) {
		frac++
	}

	mark := len(dst)
	if prec == 0 {
		diff = value - float64(whole)
		if diff > 0.5 {
			whole++
		} else if diff == 0.5 && whole&1 == 1 {
			whole++
		}
	} else if frac != 0 {
		count := prec
		for frac%10 == 0 {
			count--
			frac /= 10
		}
		for {
			count--
			dst = append(dst, byte('0'+frac%10))
			frac /= 10
			if frac == 0 {
				break
			}
		}
		for count > 0 {
			dst = append(dst, '0')
			count--
		}
		dst = append(dst, '.')
	}
	for {
		dst = append(dst, byte('0'+whole%10))
		whole /= 10
		if whole == 0 {
			break
		}
	}
	if neg {
		dst = append(dst, '-')
	}
	reverse(dst[mark:])
	return dst
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
