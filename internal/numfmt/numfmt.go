// Package numfmt renders IEEE-754 doubles as ECMAScript numeric text.
//
// Two renderings are provided:
//   - [ToString] follows Number.prototype.toString (radix 10). It is used to
//     canonicalise numeric property names.
//   - [Format] produces the shortest source text that reads back as the same
//     double. The code generator uses it for numeric literals.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// hexLow and hexHigh bound the integers that Format writes in hexadecimal.
const (
	hexLow  = 1e12
	hexHigh = 1 << 63
)

// decompose returns the shortest round-trip decimal digits of a finite,
// positive d together with n, the position of the decimal point relative to
// the first digit (d = 0.digits * 10^n).
func decompose(d float64) (digits string, n int) {
	s := strconv.FormatFloat(d, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	digits = strings.Replace(mant, ".", "", 1)
	return digits, e + 1
}

// ToString converts d to a string the way ECMAScript's Number::toString does.
func ToString(d float64) string {
	switch {
	case math.IsNaN(d):
		return "NaN"
	case d == 0:
		return "0"
	case d < 0:
		return "-" + ToString(-d)
	case math.IsInf(d, 1):
		return "Infinity"
	}

	digits, n := decompose(d)
	k := len(digits)
	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	sign := "+"
	if e < 0 {
		sign = "-"
		e = -e
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(e)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(e)
}

// Format returns the shortest source text that reads back as d.
//
// NaN renders as "NaN" and the infinities as 2e308 / -2e308, the smallest
// decimal literals that overflow to infinity. Integers above 10^12 and below
// 2^63 are always written in hexadecimal.
func Format(d float64) string {
	switch {
	case math.IsNaN(d):
		return "NaN"
	case math.IsInf(d, 1):
		return "2e308"
	case math.IsInf(d, -1):
		return "-2e308"
	case math.Signbit(d):
		return "-" + Format(-d)
	case d == 0:
		return "0"
	}

	if d > hexLow && d < hexHigh && d == math.Trunc(d) {
		return "0x" + strconv.FormatUint(uint64(d), 16)
	}

	digits, n := decompose(d)
	k := len(digits)

	var positional string
	switch {
	case n >= k:
		positional = digits + strings.Repeat("0", n-k)
	case n > 0:
		positional = digits[:n] + "." + digits[n:]
	default:
		positional = "." + strings.Repeat("0", -n) + digits
	}

	best := positional
	// 12000 -> 12e3, .00012 -> 12e-5
	if n != k {
		if c := digits + "e" + strconv.Itoa(n-k); len(c) < len(best) {
			best = c
		}
	}
	// 1.2345e-7
	if k > 1 {
		if c := digits[:1] + "." + digits[1:] + "e" + strconv.Itoa(n-1); len(c) < len(best) {
			best = c
		}
	}
	return best
}
