package image

import (
	"fmt"

	"github.com/gpubind/cl-core/errors"
	"github.com/gpubind/cl-core/native"
)

// ChannelOrder identifies which channels a pixel contains and their
// arrangement. Values are the cl_channel_order codes and form a fixed
// contract with the native library.
type ChannelOrder uint32

const (
	ChannelOrderR         ChannelOrder = native.ChannelOrderR
	ChannelOrderA         ChannelOrder = native.ChannelOrderA
	ChannelOrderRG        ChannelOrder = native.ChannelOrderRG
	ChannelOrderRA        ChannelOrder = native.ChannelOrderRA
	ChannelOrderRGB       ChannelOrder = native.ChannelOrderRGB
	ChannelOrderRGBA      ChannelOrder = native.ChannelOrderRGBA
	ChannelOrderBGRA      ChannelOrder = native.ChannelOrderBGRA
	ChannelOrderARGB      ChannelOrder = native.ChannelOrderARGB
	ChannelOrderIntensity ChannelOrder = native.ChannelOrderIntensity
	ChannelOrderLuminance ChannelOrder = native.ChannelOrderLuminance
	ChannelOrderRx        ChannelOrder = native.ChannelOrderRx
	ChannelOrderRGx       ChannelOrder = native.ChannelOrderRGx
	ChannelOrderRGBx      ChannelOrder = native.ChannelOrderRGBx
)

var channelOrderNames = map[ChannelOrder]string{
	ChannelOrderR:         "R",
	ChannelOrderA:         "A",
	ChannelOrderRG:        "RG",
	ChannelOrderRA:        "RA",
	ChannelOrderRGB:       "RGB",
	ChannelOrderRGBA:      "RGBA",
	ChannelOrderBGRA:      "BGRA",
	ChannelOrderARGB:      "ARGB",
	ChannelOrderIntensity: "Intensity",
	ChannelOrderLuminance: "Luminance",
	ChannelOrderRx:        "Rx",
	ChannelOrderRGx:       "RGx",
	ChannelOrderRGBx:      "RGBx",
}

func (o ChannelOrder) String() string {
	if name, ok := channelOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("ChannelOrder(%#x)", uint32(o))
}

// ChannelOrderFromRaw converts a raw cl_channel_order code, rejecting
// codes that map to no known enumerant.
func ChannelOrderFromRaw(raw uint32) (ChannelOrder, error) {
	o := ChannelOrder(raw)
	if _, ok := channelOrderNames[o]; !ok {
		return 0, errors.InvalidEnum(errors.PhaseConvert, []string{"channel_order"}, raw, "cl_channel_order")
	}
	return o, nil
}

// channelCount returns the number of channels the order describes, or
// 0 when unknown. The table reproduces the mapping the native binding
// has always shipped: RGB counts as 1 (valid only under the packed
// short/101010 data types) and RGx as 4.
func (o ChannelOrder) channelCount() int {
	switch o {
	case ChannelOrderR, ChannelOrderA:
		return 1
	case ChannelOrderRG, ChannelOrderRA, ChannelOrderRx:
		return 2
	case ChannelOrderRGB:
		return 1
	case ChannelOrderRGBA, ChannelOrderBGRA, ChannelOrderARGB,
		ChannelOrderIntensity, ChannelOrderLuminance,
		ChannelOrderRGx, ChannelOrderRGBx:
		return 4
	default:
		return 0
	}
}
