package buffer

import "testing"

func TestRegionToRaw(t *testing.T) {
	tests := []struct {
		name   string
		origin uint64
		size   uint64
	}{
		{"zero", 0, 0},
		{"aligned", 4096, 1024},
		{"unaligned", 13, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := NewRegion(tc.origin, tc.size).ToRaw()
			if uint64(raw.Origin) != tc.origin {
				t.Errorf("origin = %d, want %d", raw.Origin, tc.origin)
			}
			if uint64(raw.Size) != tc.size {
				t.Errorf("size = %d, want %d", raw.Size, tc.size)
			}
		})
	}
}

func TestRegionEnd(t *testing.T) {
	r := NewRegion(4096, 1024)
	if got := r.End(); got != 5120 {
		t.Errorf("End() = %d, want 5120", got)
	}
}
