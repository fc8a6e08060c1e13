package image

import (
	stderrors "errors"
	"testing"

	clerrors "github.com/gpubind/cl-core/errors"
	"github.com/gpubind/cl-core/native"
)

var allOrders = []ChannelOrder{
	ChannelOrderR, ChannelOrderA, ChannelOrderRG, ChannelOrderRA,
	ChannelOrderRGB, ChannelOrderRGBA, ChannelOrderBGRA, ChannelOrderARGB,
	ChannelOrderIntensity, ChannelOrderLuminance,
	ChannelOrderRx, ChannelOrderRGx, ChannelOrderRGBx,
}

var allDataTypes = []ChannelDataType{
	ChannelDataTypeSNormInt8, ChannelDataTypeSNormInt16,
	ChannelDataTypeUNormInt8, ChannelDataTypeUNormInt16,
	ChannelDataTypeUNormShort565, ChannelDataTypeUNormShort555,
	ChannelDataTypeUNormInt101010,
	ChannelDataTypeSignedInt8, ChannelDataTypeSignedInt16, ChannelDataTypeSignedInt32,
	ChannelDataTypeUnsignedInt8, ChannelDataTypeUnsignedInt16, ChannelDataTypeUnsignedInt32,
	ChannelDataTypeHalfFloat, ChannelDataTypeFloat,
}

func TestFormatRoundTrip(t *testing.T) {
	for _, order := range allOrders {
		for _, dt := range allDataTypes {
			raw := native.ImageFormat{
				ChannelOrder:    uint32(order),
				ChannelDataType: uint32(dt),
			}
			f, err := FormatFromRaw(raw)
			if err != nil {
				t.Fatalf("FormatFromRaw(%v/%v): %v", order, dt, err)
			}
			if got := f.ToRaw(); got != raw {
				t.Errorf("round trip %v/%v: got %+v, want %+v", order, dt, got, raw)
			}
		}
	}
}

func TestFormatFromRawInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  native.ImageFormat
	}{
		{"bad_order", native.ImageFormat{ChannelOrder: 0xDEAD, ChannelDataType: uint32(ChannelDataTypeFloat)}},
		{"bad_data_type", native.ImageFormat{ChannelOrder: uint32(ChannelOrderRGBA), ChannelDataType: 0xDEAD}},
		{"both_bad", native.ImageFormat{ChannelOrder: 0, ChannelDataType: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FormatFromRaw(tc.raw)
			if err == nil {
				t.Fatal("expected conversion error")
			}
			var clErr *clerrors.Error
			if !stderrors.As(err, &clErr) {
				t.Fatalf("error type = %T, want *errors.Error", err)
			}
			if clErr.Kind != clerrors.KindInvalidEnum {
				t.Errorf("kind = %s, want %s", clErr.Kind, clerrors.KindInvalidEnum)
			}
		})
	}
}

func TestFormatFromRawFailsFastOnOrder(t *testing.T) {
	// Both fields invalid: the order must be reported, not the data type.
	_, err := FormatFromRaw(native.ImageFormat{ChannelOrder: 1, ChannelDataType: 2})
	var clErr *clerrors.Error
	if !stderrors.As(err, &clErr) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if len(clErr.Path) != 1 || clErr.Path[0] != "channel_order" {
		t.Errorf("path = %v, want [channel_order]", clErr.Path)
	}
}

func TestFormatsFromRawShortCircuit(t *testing.T) {
	raws := []native.ImageFormat{
		{ChannelOrder: uint32(ChannelOrderRGBA), ChannelDataType: uint32(ChannelDataTypeUNormInt8)},
		{ChannelOrder: 0xBAD, ChannelDataType: uint32(ChannelDataTypeFloat)},
		{ChannelOrder: uint32(ChannelOrderR), ChannelDataType: uint32(ChannelDataTypeFloat)},
	}

	formats, err := FormatsFromRaw(raws)
	if err == nil {
		t.Fatal("expected error from invalid middle entry")
	}
	if formats != nil {
		t.Errorf("partial result leaked: %v", formats)
	}
}

func TestFormatsFromRawAllValid(t *testing.T) {
	raws := []native.ImageFormat{
		{ChannelOrder: uint32(ChannelOrderRGBA), ChannelDataType: uint32(ChannelDataTypeUNormInt8)},
		{ChannelOrder: uint32(ChannelOrderR), ChannelDataType: uint32(ChannelDataTypeSignedInt32)},
	}

	formats, err := FormatsFromRaw(raws)
	if err != nil {
		t.Fatalf("FormatsFromRaw: %v", err)
	}
	if len(formats) != 2 {
		t.Fatalf("len = %d, want 2", len(formats))
	}
	if formats[0].Order != ChannelOrderRGBA || formats[1].DataType != ChannelDataTypeSignedInt32 {
		t.Errorf("unexpected formats: %v", formats)
	}
}

func TestNewRGBA(t *testing.T) {
	f := NewRGBA()
	if f.Order != ChannelOrderRGBA {
		t.Errorf("order = %v, want RGBA", f.Order)
	}
	if f.DataType != ChannelDataTypeSNormInt8 {
		t.Errorf("data type = %v, want SNormInt8", f.DataType)
	}
}

func TestPixelBytes(t *testing.T) {
	tests := []struct {
		name     string
		order    ChannelOrder
		dataType ChannelDataType
		want     int
	}{
		{"rgba_unorm8", ChannelOrderRGBA, ChannelDataTypeUNormInt8, 4},
		{"rgba_snorm8", ChannelOrderRGBA, ChannelDataTypeSNormInt8, 4},
		{"rgba_float", ChannelOrderRGBA, ChannelDataTypeFloat, 16},
		{"rgba_half", ChannelOrderRGBA, ChannelDataTypeHalfFloat, 8},
		{"r_signed32", ChannelOrderR, ChannelDataTypeSignedInt32, 4},
		{"r_unorm8", ChannelOrderR, ChannelDataTypeUNormInt8, 1},
		{"a_unorm16", ChannelOrderA, ChannelDataTypeUNormInt16, 2},
		{"rg_float", ChannelOrderRG, ChannelDataTypeFloat, 8},
		{"ra_signed16", ChannelOrderRA, ChannelDataTypeSignedInt16, 4},
		{"rx_unsigned8", ChannelOrderRx, ChannelDataTypeUnsignedInt8, 2},
		{"rgb_565", ChannelOrderRGB, ChannelDataTypeUNormShort565, 2},
		{"rgb_555", ChannelOrderRGB, ChannelDataTypeUNormShort555, 2},
		{"rgb_101010", ChannelOrderRGB, ChannelDataTypeUNormInt101010, 4},
		{"bgra_unorm8", ChannelOrderBGRA, ChannelDataTypeUNormInt8, 4},
		{"argb_signed8", ChannelOrderARGB, ChannelDataTypeSignedInt8, 4},
		{"intensity_float", ChannelOrderIntensity, ChannelDataTypeFloat, 16},
		{"luminance_half", ChannelOrderLuminance, ChannelDataTypeHalfFloat, 8},
		{"rgx_unorm8", ChannelOrderRGx, ChannelDataTypeUNormInt8, 4},
		{"rgbx_565", ChannelOrderRGBx, ChannelDataTypeUNormShort565, 8},
		{"unknown_order", ChannelOrder(0x9999), ChannelDataTypeFloat, 0},
		{"unknown_data_type", ChannelOrderRGBA, ChannelDataType(0x9999), 0},
		{"both_unknown", ChannelOrder(1), ChannelDataType(2), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFormat(tc.order, tc.dataType)
			if got := f.PixelBytes(); got != tc.want {
				t.Errorf("PixelBytes() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestChannelOrderString(t *testing.T) {
	tests := []struct {
		order ChannelOrder
		want  string
	}{
		{ChannelOrderR, "R"},
		{ChannelOrderRGBA, "RGBA"},
		{ChannelOrderLuminance, "Luminance"},
		{ChannelOrder(0x42), "ChannelOrder(0x42)"},
	}
	for _, tc := range tests {
		if got := tc.order.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestChannelDataTypeString(t *testing.T) {
	tests := []struct {
		dt   ChannelDataType
		want string
	}{
		{ChannelDataTypeSNormInt8, "SNormInt8"},
		{ChannelDataTypeUNormShort565, "UNormShort565"},
		{ChannelDataTypeFloat, "Float"},
		{ChannelDataType(0x42), "ChannelDataType(0x42)"},
	}
	for _, tc := range tests {
		if got := tc.dt.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	f := NewFormat(ChannelOrderRGBA, ChannelDataTypeUNormInt8)
	if got := f.String(); got != "RGBA/UNormInt8" {
		t.Errorf("String() = %q, want RGBA/UNormInt8", got)
	}
}
