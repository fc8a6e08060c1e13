package image

import (
	"math"
	"testing"
)

func TestPackHalfExactValues(t *testing.T) {
	// Values exactly representable in half precision survive the round trip.
	src := []float32{0, 1, -1, 0.5, 2, -0.25, 65504}
	got := UnpackHalf(PackHalf(src))

	if len(got) != len(src) {
		t.Fatalf("len = %d, want %d", len(got), len(src))
	}
	for i, want := range src {
		if got[i] != want {
			t.Errorf("sample %d: got %g, want %g", i, got[i], want)
		}
	}
}

func TestPackHalfBits(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint16
	}{
		{"zero", 0, 0x0000},
		{"one", 1, 0x3C00},
		{"neg_two", -2, 0xC000},
		{"half", 0.5, 0x3800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bits := PackHalf([]float32{tc.in})
			if bits[0] != tc.want {
				t.Errorf("bits = %#04x, want %#04x", bits[0], tc.want)
			}
		})
	}
}

func TestPackHalfInfinity(t *testing.T) {
	bits := PackHalf([]float32{float32(math.Inf(1))})
	if bits[0] != 0x7C00 {
		t.Errorf("bits = %#04x, want 0x7C00", bits[0])
	}
}

func TestPackHalfEmpty(t *testing.T) {
	if got := PackHalf(nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if got := UnpackHalf(nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
