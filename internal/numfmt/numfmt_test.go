package numfmt

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

// readBack parses the output of Format the way an ECMAScript parser would.
func readBack(t *testing.T, s string) float64 {
	t.Helper()
	if s == "NaN" {
		return math.NaN()
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var v float64
	if strings.HasPrefix(s, "0x") {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			t.Fatalf("ParseUint(%q) error = %v", s, err)
		}
		v = float64(u)
	} else {
		var err error
		v, err = strconv.ParseFloat(s, 64)
		if err != nil && !math.IsInf(v, 0) {
			t.Fatalf("ParseFloat(%q) error = %v", s, err)
		}
	}
	if neg {
		v = -v
	}
	return v
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, ".5"},
		{0.001, ".001"},
		{0.0001, "1e-4"},
		{0.00012, "12e-5"},
		{123, "123"},
		{1000, "1e3"},
		{100, "100"},
		{12000, "12e3"},
		{1.5, "1.5"},
		{1e21, "1e21"},
		{1e12, "1e12"},
		{1e13, "0x9184e72a000"},
		{123456789012345, "0x7048860ddf79"},
		{9007199254740993, "0x20000000000000"},
		{1.2345e-7, "12345e-11"},
		{1.5e-7, "15e-8"},
		{math.MaxFloat64, "17976931348623157e292"},
		{5e-324, "5e-324"},
		{math.Inf(1), "2e308"},
		{math.Inf(-1), "-2e308"},
		{math.NaN(), "NaN"},
		{-2.5, "-2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNegativeZero(t *testing.T) {
	got := Format(math.Copysign(0, -1))
	if got != "-0" {
		t.Errorf("Format(-0) = %q, want -0", got)
	}
	if v := readBack(t, got); v != 0 || !math.Signbit(v) {
		t.Errorf("read back %v", v)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	values := []float64{
		0, 1, 0.1, 0.2, 0.3, 1.0 / 3, 2.0 / 3, math.Pi, math.E, math.Sqrt2,
		1e-7, 1e-6, 1e20, 1e21, 1e22, 1e23, 123e-20,
		math.SmallestNonzeroFloat64, 2.2250738585072014e-308, 2.225073858507201e-308,
		math.MaxFloat64, 1 << 53, 1<<53 + 2, 1 << 62, 1<<63 - 1024, 1 << 63, 1 << 64,
		999999999999, 1000000000001, 4294967295, 4294967296,
		math.Inf(1), math.Inf(-1), -1.5, -1e-300,
	}
	// pseudo-random bit patterns, including subnormals
	bits := uint64(1)
	for i := 0; i < 5000; i++ {
		bits = bits*6364136223846793005 + 1442695040888963407
		values = append(values, math.Float64frombits(bits>>1))
	}
	for _, v := range values {
		s := Format(v)
		if got := readBack(t, s); math.Float64bits(got) != math.Float64bits(v) && !(math.IsNaN(got) && math.IsNaN(v)) {
			t.Errorf("Format(%v) = %q reads back as %v", v, s, got)
		}
	}
}

func FuzzFormat(f *testing.F) {
	for _, bits := range []uint64{0, 1, 0x7FF0000000000000, 0x3FF0000000000000, 0x000FFFFFFFFFFFFF} {
		f.Add(bits)
	}
	f.Fuzz(func(t *testing.T, bits uint64) {
		v := math.Float64frombits(bits)
		s := Format(v)
		got := readBack(t, s)
		if math.IsNaN(v) {
			if !math.IsNaN(got) {
				t.Fatalf("Format(NaN) = %q", s)
			}
			return
		}
		if math.Float64bits(got) != bits {
			t.Fatalf("Format(%v) = %q reads back as %v", v, s, got)
		}
	})
}

func TestToString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, "0.5"},
		{1.5, "1.5"},
		{123e-20, "1.23e-18"},
		{1e21, "1e+21"},
		{1e20, "100000000000000000000"},
		{0.000001, "0.000001"},
		{0.0000001, "1e-7"},
		{1.5e300, "1.5e+300"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ToString(tt.in); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
