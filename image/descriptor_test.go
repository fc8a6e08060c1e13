package image

import (
	stderrors "errors"
	"testing"

	clcore "github.com/gpubind/cl-core"
	clerrors "github.com/gpubind/cl-core/errors"
)

func TestDescriptorToRawNoBuffer(t *testing.T) {
	desc := NewDescriptor(MemObjectImage2D, 640, 480, 1, 0, 2560, 0, nil)
	raw := desc.ToRaw()

	if raw.Type != uint32(MemObjectImage2D) {
		t.Errorf("type = %#x, want %#x", raw.Type, uint32(MemObjectImage2D))
	}
	if raw.Width != 640 || raw.Height != 480 || raw.Depth != 1 {
		t.Errorf("geometry = %d x %d x %d, want 640 x 480 x 1", raw.Width, raw.Height, raw.Depth)
	}
	if raw.ArraySize != 0 {
		t.Errorf("array size = %d, want 0", raw.ArraySize)
	}
	if raw.RowPitch != 2560 || raw.SlicePitch != 0 {
		t.Errorf("pitches = %d / %d, want 2560 / 0", raw.RowPitch, raw.SlicePitch)
	}
	if raw.Buffer != 0 {
		t.Errorf("buffer = %#x, want null", raw.Buffer)
	}
}

func TestDescriptorToRawWithBuffer(t *testing.T) {
	mem := clcore.MemFromRaw(0xCAFE)
	desc := NewDescriptor(MemObjectImage1DBuffer, 1024, 1, 1, 0, 0, 0, &mem)

	raw := desc.ToRaw()
	if raw.Buffer != 0xCAFE {
		t.Errorf("buffer = %#x, want 0xCAFE", raw.Buffer)
	}
}

func TestDescriptorReservedFieldsZero(t *testing.T) {
	desc := NewDescriptor(MemObjectImage3D, 16, 16, 16, 0, 0, 0, nil)
	raw := desc.ToRaw()

	if raw.NumMipLevels != 0 {
		t.Errorf("num mip levels = %d, want 0", raw.NumMipLevels)
	}
	if raw.NumSamples != 0 {
		t.Errorf("num samples = %d, want 0", raw.NumSamples)
	}
}

func TestDescriptorProjectionReadsHandleAtCallTime(t *testing.T) {
	mem := clcore.MemFromRaw(0x1000)
	desc := NewDescriptor(MemObjectImage1DBuffer, 256, 1, 1, 0, 0, 0, &mem)

	if raw := desc.ToRaw(); raw.Buffer != 0x1000 {
		t.Fatalf("buffer = %#x, want 0x1000", raw.Buffer)
	}

	// The descriptor holds a reference, not a copy of the handle value.
	mem = clcore.MemFromRaw(0x2000)
	if raw := desc.ToRaw(); raw.Buffer != 0x2000 {
		t.Errorf("buffer = %#x, want rebound handle 0x2000", raw.Buffer)
	}
}

func TestMemObjectTypeFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		raw     uint32
		want    MemObjectType
		wantErr bool
	}{
		{"buffer", 0x10F0, MemObjectBuffer, false},
		{"image2d", 0x10F1, MemObjectImage2D, false},
		{"image1d_buffer", 0x10F6, MemObjectImage1DBuffer, false},
		{"unknown", 0x10F7, 0, true},
		{"zero", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MemObjectTypeFromRaw(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var clErr *clerrors.Error
				if !stderrors.As(err, &clErr) || clErr.Kind != clerrors.KindInvalidEnum {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
