package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"", 7, 7},
		{"42", 0, 42},
		{"-3", 0, -3},
		{"abc", 9, 9},
		{"4.2", 9, 9},
	}
	for _, c := range cases {
		if got := AtoiDefault(c.in, c.def); got != c.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d, want %d", c.in, c.def, got, c.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(5, 1, 10); got != 5 {
		t.Fatalf("in-range clamped: %d", got)
	}
	if got := ClampInt(-1, 0, 10); got != 0 {
		t.Fatalf("low clamp: %d", got)
	}
	if got := ClampInt(99, 0, 10); got != 10 {
		t.Fatalf("high clamp: %d", got)
	}
}
