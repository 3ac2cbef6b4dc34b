package conv

import "testing"

func TestAppendInt(t *testing.T) {
	for _, c := range []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{255, "255"},
		{-40, "-40"},
		{1050, "1050"},
	} {
		if got := string(AppendInt(nil, c.in)); got != c.want {
			t.Fatalf("AppendInt(%d) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := string(AppendInt([]byte("v="), 12)); got != "v=12" {
		t.Fatalf("append onto prefix = %q", got)
	}
}

func TestAppendHex(t *testing.T) {
	if got := Hex12(0xFA5); got != "0xFA5" {
		t.Fatalf("Hex12 = %q", got)
	}
	if got := Hex12(0x10); got != "0x010" {
		t.Fatalf("Hex12 zero pad = %q", got)
	}
	if got := string(AppendHex(nil, 0xE000, 4)); got != "0xE000" {
		t.Fatalf("AppendHex 4 = %q", got)
	}
}

func TestAppendCenti(t *testing.T) {
	for _, c := range []struct {
		in   int64
		want string
	}{
		{105, "1.05"},
		{210, "2.1"},
		{420, "4.2"},
		{840, "8.4"},
		{300, "3"},
		{5, "0.05"},
		{-150, "-1.5"},
	} {
		if got := string(AppendCenti(nil, c.in)); got != c.want {
			t.Fatalf("AppendCenti(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
