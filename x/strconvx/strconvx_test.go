package strconvx

import (
	"errors"
	"testing"
)

func TestParseInt(t *testing.T) {
	type C struct {
		s    string
		want int64
	}
	for _, c := range []C{
		{"0", 0},
		{"255", 255},
		{"08", 8}, // leading zero stays decimal
		{"010", 10},
		{"0x10", 16},
		{"0XfF", 255},
		{"-12", -12},
		{"+7", 7},
		{"-0x0f", -15},
		{"9223372036854775807", 1<<63 - 1},
		{"-9223372036854775808", -1 << 63},
	} {
		got, err := ParseInt(c.s)
		if err != nil || got != c.want {
			t.Fatalf("ParseInt(%q) = %d, %v; want %d", c.s, got, err, c.want)
		}
	}
}

func TestParseIntErrors(t *testing.T) {
	for _, s := range []string{"", "-", "0x", "ten", "1_000", "0b11", "0o7", "12a", "+-5", " 5"} {
		if _, err := ParseInt(s); !errors.Is(err, ErrSyntax) {
			t.Fatalf("ParseInt(%q) err = %v, want ErrSyntax", s, err)
		}
	}
	for _, s := range []string{"9223372036854775808", "99999999999999999999", "0x1ffffffffffffffff"} {
		if _, err := ParseInt(s); !errors.Is(err, ErrRange) {
			t.Fatalf("ParseInt(%q) err = %v, want ErrRange", s, err)
		}
	}
}

func TestParseFloat(t *testing.T) {
	type C struct {
		s    string
		want float64
	}
	for _, c := range []C{
		{"1.05", 1.05},
		{"2.1", 2.1},
		{"8", 8},
		{"-1.5", -1.5},
		{".5", 0.5},
		{"4.", 4},
	} {
		got, err := ParseFloat(c.s)
		if err != nil || got != c.want {
			t.Fatalf("ParseFloat(%q) = %v, %v; want %v", c.s, got, err, c.want)
		}
	}
	for _, s := range []string{"", ".", "x", "1.2.3", "1e3", "NaN", "inf", "-"} {
		if _, err := ParseFloat(s); err == nil {
			t.Fatalf("ParseFloat(%q) accepted", s)
		}
	}
}

// The MCU build parses without strconv; exercise that path on the host too.
func TestPortableParsers(t *testing.T) {
	for _, s := range []string{"0", "08", "255", "0x7f", "-0X10", "18446744073709551615"} {
		neg, digits, base := splitInt(s)
		u, err := parseUint(digits, base)
		if err != nil {
			t.Fatalf("parseUint(%q) err = %v", s, err)
		}
		if s == "18446744073709551615" {
			if _, err := signed(neg, u); !errors.Is(err, ErrRange) {
				t.Fatalf("signed(max uint64) err = %v", err)
			}
			continue
		}
		got, _ := signed(neg, u)
		want, _ := ParseInt(s)
		if got != want {
			t.Fatalf("%q: portable %d, host %d", s, got, want)
		}
	}
	if _, err := parseUint("18446744073709551616", 10); !errors.Is(err, ErrRange) {
		t.Fatalf("overflow err = %v", err)
	}
	if _, err := parseUint("1g", 16); !errors.Is(err, ErrSyntax) {
		t.Fatalf("bad digit err = %v", err)
	}
	for _, s := range []string{"1.05", "2.1", "4.2", "8.4"} {
		a, _ := parseDecimal(s)
		b, _ := ParseFloat(s)
		if int64(a*100+0.5) != int64(b*100+0.5) {
			t.Fatalf("%q: portable %v, host %v quantize differently", s, a, b)
		}
	}
}
