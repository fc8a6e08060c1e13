package image

import "github.com/x448/float16"

// Host staging helpers for HalfFloat channel data. The native API has
// no host-side half type, so callers working in float32 convert at the
// staging boundary.

// PackHalf converts float32 samples to IEEE 754 half-precision bits,
// one uint16 per sample, using round-to-nearest-even.
func PackHalf(src []float32) []uint16 {
	dst := make([]uint16, len(src))
	for i, v := range src {
		dst[i] = float16.Fromfloat32(v).Bits()
	}
	return dst
}

// UnpackHalf converts half-precision bits back to float32 samples.
func UnpackHalf(src []uint16) []float32 {
	dst := make([]float32, len(src))
	for i, bits := range src {
		dst[i] = float16.Frombits(bits).Float32()
	}
	return dst
}
