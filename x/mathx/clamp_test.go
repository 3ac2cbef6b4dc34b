package mathx

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(7, 0, 10) != 7 {
		t.Fatal("clamp failed")
	}
	if Clamp(3, 10, 0) != 3 {
		t.Fatal("clamp with swapped bounds failed")
	}
	if Clamp(2.5, -1.0, 1.0) != 1.0 {
		t.Fatal("float clamp failed")
	}
}

func TestFitsBits(t *testing.T) {
	for _, c := range []struct {
		v     int32
		width uint8
		want  bool
	}{
		{0, 1, true},
		{1, 1, true},
		{2, 1, false},
		{255, 8, true},
		{256, 8, false},
		{-1, 8, false},
		{0xFFF, 12, true},
	} {
		if got := FitsBits(c.v, c.width); got != c.want {
			t.Fatalf("FitsBits(%d, %d) = %v, want %v", c.v, c.width, got, c.want)
		}
	}
}
