package image

import (
	"fmt"

	"github.com/gpubind/cl-core/errors"
	"github.com/gpubind/cl-core/native"
)

// ChannelDataType identifies the numeric encoding of each channel.
// Values are the cl_channel_type codes and form a fixed contract with
// the native library.
type ChannelDataType uint32

const (
	ChannelDataTypeSNormInt8      ChannelDataType = native.ChannelDataSNormInt8
	ChannelDataTypeSNormInt16     ChannelDataType = native.ChannelDataSNormInt16
	ChannelDataTypeUNormInt8      ChannelDataType = native.ChannelDataUNormInt8
	ChannelDataTypeUNormInt16     ChannelDataType = native.ChannelDataUNormInt16
	ChannelDataTypeUNormShort565  ChannelDataType = native.ChannelDataUNormShort565
	ChannelDataTypeUNormShort555  ChannelDataType = native.ChannelDataUNormShort555
	ChannelDataTypeUNormInt101010 ChannelDataType = native.ChannelDataUNormInt101010
	ChannelDataTypeSignedInt8     ChannelDataType = native.ChannelDataSignedInt8
	ChannelDataTypeSignedInt16    ChannelDataType = native.ChannelDataSignedInt16
	ChannelDataTypeSignedInt32    ChannelDataType = native.ChannelDataSignedInt32
	ChannelDataTypeUnsignedInt8   ChannelDataType = native.ChannelDataUnsignedInt8
	ChannelDataTypeUnsignedInt16  ChannelDataType = native.ChannelDataUnsignedInt16
	ChannelDataTypeUnsignedInt32  ChannelDataType = native.ChannelDataUnsignedInt32
	ChannelDataTypeHalfFloat      ChannelDataType = native.ChannelDataHalfFloat
	ChannelDataTypeFloat          ChannelDataType = native.ChannelDataFloat
)

var channelDataTypeNames = map[ChannelDataType]string{
	ChannelDataTypeSNormInt8:      "SNormInt8",
	ChannelDataTypeSNormInt16:     "SNormInt16",
	ChannelDataTypeUNormInt8:      "UNormInt8",
	ChannelDataTypeUNormInt16:     "UNormInt16",
	ChannelDataTypeUNormShort565:  "UNormShort565",
	ChannelDataTypeUNormShort555:  "UNormShort555",
	ChannelDataTypeUNormInt101010: "UNormInt101010",
	ChannelDataTypeSignedInt8:     "SignedInt8",
	ChannelDataTypeSignedInt16:    "SignedInt16",
	ChannelDataTypeSignedInt32:    "SignedInt32",
	ChannelDataTypeUnsignedInt8:   "UnsignedInt8",
	ChannelDataTypeUnsignedInt16:  "UnsignedInt16",
	ChannelDataTypeUnsignedInt32:  "UnsignedInt32",
	ChannelDataTypeHalfFloat:      "HalfFloat",
	ChannelDataTypeFloat:          "Float",
}

func (t ChannelDataType) String() string {
	if name, ok := channelDataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ChannelDataType(%#x)", uint32(t))
}

// ChannelDataTypeFromRaw converts a raw cl_channel_type code,
// rejecting codes that map to no known enumerant.
func ChannelDataTypeFromRaw(raw uint32) (ChannelDataType, error) {
	t := ChannelDataType(raw)
	if _, ok := channelDataTypeNames[t]; !ok {
		return 0, errors.InvalidEnum(errors.PhaseConvert, []string{"channel_data_type"}, raw, "cl_channel_type")
	}
	return t, nil
}

// channelSize returns the per-channel byte size, or 0 when unknown.
// The packed short and 101010 types report the size of the whole
// packed element.
func (t ChannelDataType) channelSize() int {
	switch t {
	case ChannelDataTypeSNormInt8, ChannelDataTypeUNormInt8,
		ChannelDataTypeSignedInt8, ChannelDataTypeUnsignedInt8:
		return 1
	case ChannelDataTypeSNormInt16, ChannelDataTypeUNormInt16,
		ChannelDataTypeSignedInt16, ChannelDataTypeUnsignedInt16,
		ChannelDataTypeUNormShort565, ChannelDataTypeUNormShort555,
		ChannelDataTypeHalfFloat:
		return 2
	case ChannelDataTypeSignedInt32, ChannelDataTypeUnsignedInt32,
		ChannelDataTypeUNormInt101010, ChannelDataTypeFloat:
		return 4
	default:
		return 0
	}
}
