package clcore

import "testing"

func TestPlatformRoundTrip(t *testing.T) {
	p := PlatformFromRaw(0x1234)
	if p.Raw() != 0x1234 {
		t.Errorf("Raw() = %#x, want 0x1234", p.Raw())
	}
	if p.IsNil() {
		t.Error("non-zero handle reported nil")
	}
	if !PlatformFromRaw(0).IsNil() {
		t.Error("zero handle should be nil")
	}
}

func TestMemRoundTrip(t *testing.T) {
	m := MemFromRaw(0xCAFE)
	if m.Raw() != 0xCAFE {
		t.Errorf("Raw() = %#x, want 0xCAFE", m.Raw())
	}
	if m.IsNil() {
		t.Error("non-zero handle reported nil")
	}
	if !MemFromRaw(0).IsNil() {
		t.Error("zero handle should be nil")
	}
}
