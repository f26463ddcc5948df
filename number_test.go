package flatjson

import (
	"math"
	"testing"
)

func TestAppendDecimal(t *testing.T) {
	tests := []struct {
		have int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-3, "-3"},
		{1234567890, "1234567890"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, test := range tests {
		var scratch [32]byte
		if got := string(appendDecimal(scratch[:0], test.have)); got != test.want {
			t.Errorf("%d: want %s, got %s", test.have, test.want, got)
		}
	}
}

func TestAppendFixed(t *testing.T) {
	tests := []struct {
		have float64
		prec int
		want string
	}{
		{0, 6, "0"},
		{5, 6, "5"},
		{0.125, 2, "0.12"},  // tie, even digit stays
		{0.375, 2, "0.38"},  // tie, odd digit rounds up
		{10.5, 0, "10"},     // tie at prec 0, even whole stays
		{11.5, 0, "12"},     // tie at prec 0, odd whole rounds up
		{0.99, 1, "1"},      // fraction rollover
		{123.456, 6, "123.456"},
		{-0.5, 2, "-0.5"},
		{1.0 / 3.0, 4, "0.3333"},
		{math.NaN(), 6, "nan"},
		{math.Inf(-1), 6, "nan"},
		// out of range precision is clamped
		{1.5, 12, "1.5"},
		{1.6, -1, "2"},
		// above the magnitude threshold output turns exponential
		{4e9, 6, "4.000000e+09"},
		{-4e9, 6, "-4.000000e+09"},
	}
	for _, test := range tests {
		var scratch [32]byte
		got := string(appendFixed(scratch[:0], test.have, test.prec))
		if got != test.want {
			t.Errorf("%v prec %d: want %s, got %s",
				test.have, test.prec, test.want, got)
		}
	}
}
