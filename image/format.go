package image

import (
	"github.com/gpubind/cl-core/native"
)

// Format pairs a channel order with a channel data type. Formats are
// immutable values; whether a particular pair is creatable is decided
// by the native implementation, not here.
type Format struct {
	Order    ChannelOrder
	DataType ChannelDataType
}

// NewFormat constructs a format without validating the combination.
func NewFormat(order ChannelOrder, dataType ChannelDataType) Format {
	return Format{Order: order, DataType: dataType}
}

// NewRGBA returns the default format: RGBA with signed-normalized
// 8-bit channels.
func NewRGBA() Format {
	return Format{Order: ChannelOrderRGBA, DataType: ChannelDataTypeSNormInt8}
}

// FormatFromRaw converts a raw format pair, validating each field
// independently. The order is checked first and conversion stops at
// the first invalid code.
func FormatFromRaw(raw native.ImageFormat) (Format, error) {
	order, err := ChannelOrderFromRaw(raw.ChannelOrder)
	if err != nil {
		return Format{}, err
	}
	dataType, err := ChannelDataTypeFromRaw(raw.ChannelDataType)
	if err != nil {
		return Format{}, err
	}
	return Format{Order: order, DataType: dataType}, nil
}

// FormatsFromRaw converts a sequence of raw pairs, returning the first
// conversion error instead of a partial result.
func FormatsFromRaw(raws []native.ImageFormat) ([]Format, error) {
	formats := make([]Format, 0, len(raws))
	for _, raw := range raws {
		f, err := FormatFromRaw(raw)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// ToRaw returns the raw format pair. For formats built from valid
// enumerants this is the exact inverse of FormatFromRaw.
func (f Format) ToRaw() native.ImageFormat {
	return native.ImageFormat{
		ChannelOrder:    uint32(f.Order),
		ChannelDataType: uint32(f.DataType),
	}
}

// PixelBytes returns the byte size of one pixel: channel count times
// per-channel size. A pair missing from either table yields 0, which
// means "size unknown", not a zero-sized pixel.
func (f Format) PixelBytes() int {
	return f.Order.channelCount() * f.DataType.channelSize()
}

func (f Format) String() string {
	return f.Order.String() + "/" + f.DataType.String()
}
