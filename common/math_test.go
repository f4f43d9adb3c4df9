package common

import "testing"

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 128, 0},
		{127, 128, 0},
		{128, 128, 1},
		{-1, 128, -1},
		{-128, 128, -1},
		{-129, 128, -2},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}
