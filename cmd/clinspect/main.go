package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/term"

	clcore "github.com/gpubind/cl-core"
	"github.com/gpubind/cl-core/image"
	"github.com/gpubind/cl-core/props"
	"github.com/gpubind/cl-core/resource"
)

func main() {
	var (
		formats     = flag.Bool("formats", false, "Print the pixel-size matrix for all known formats")
		jsonOut     = flag.Bool("json", false, "Emit -formats output as JSON")
		decode      = flag.String("decode", "", "Decode a raw format pair (order,data_type; hex or decimal)")
		platform    = flag.String("platform", "", "Raw platform handle for the property encoding preview")
		sync        = flag.Bool("sync", false, "Set CL_CONTEXT_INTEROP_USER_SYNC in the property preview")
		properties  = flag.Bool("props", false, "Encode a property list and hex-dump the wire bytes")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		resource.SetLogger(logger)
	}

	switch {
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *formats:
		if err := runFormats(*jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *decode != "":
		if err := runDecode(*decode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *properties:
		if err := runProps(*platform, *sync); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: clinspect -formats [-json]")
		fmt.Fprintln(os.Stderr, "       clinspect -decode 0x10B5,0x10D2")
		fmt.Fprintln(os.Stderr, "       clinspect -props [-platform 0x1234] [-sync]")
		fmt.Fprintln(os.Stderr, "       clinspect -i  (interactive mode)")
		os.Exit(1)
	}
}

var inspectOrders = []image.ChannelOrder{
	image.ChannelOrderR, image.ChannelOrderA,
	image.ChannelOrderRG, image.ChannelOrderRA,
	image.ChannelOrderRGB, image.ChannelOrderRGBA,
	image.ChannelOrderBGRA, image.ChannelOrderARGB,
	image.ChannelOrderIntensity, image.ChannelOrderLuminance,
	image.ChannelOrderRx, image.ChannelOrderRGx, image.ChannelOrderRGBx,
}

var inspectDataTypes = []image.ChannelDataType{
	image.ChannelDataTypeSNormInt8, image.ChannelDataTypeSNormInt16,
	image.ChannelDataTypeUNormInt8, image.ChannelDataTypeUNormInt16,
	image.ChannelDataTypeUNormShort565, image.ChannelDataTypeUNormShort555,
	image.ChannelDataTypeUNormInt101010,
	image.ChannelDataTypeSignedInt8, image.ChannelDataTypeSignedInt16,
	image.ChannelDataTypeSignedInt32,
	image.ChannelDataTypeUnsignedInt8, image.ChannelDataTypeUnsignedInt16,
	image.ChannelDataTypeUnsignedInt32,
	image.ChannelDataTypeHalfFloat, image.ChannelDataTypeFloat,
}

type formatEntry struct {
	Order      string `json:"order"`
	OrderCode  uint32 `json:"order_code"`
	DataType   string `json:"data_type"`
	TypeCode   uint32 `json:"data_type_code"`
	PixelBytes int    `json:"pixel_bytes"`
}

func runFormats(jsonOut bool) error {
	var entries []formatEntry
	for _, order := range inspectOrders {
		for _, dt := range inspectDataTypes {
			f := image.NewFormat(order, dt)
			entries = append(entries, formatEntry{
				Order:      order.String(),
				OrderCode:  uint32(order),
				DataType:   dt.String(),
				TypeCode:   uint32(dt),
				PixelBytes: f.PixelBytes(),
			})
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Printf("%-10s %-8s %-15s %-8s %s\n", "ORDER", "CODE", "DATA TYPE", "CODE", "PIXEL BYTES")
	for _, e := range entries {
		size := strconv.Itoa(e.PixelBytes)
		if e.PixelBytes == 0 {
			size = "?"
		}
		fmt.Printf("%-10s 0x%04X   %-15s 0x%04X   %s\n", e.Order, e.OrderCode, e.DataType, e.TypeCode, size)
	}
	return nil
}

func runDecode(arg string) error {
	orderRaw, typeRaw, err := parseRawPair(arg)
	if err != nil {
		return err
	}

	order, err := image.ChannelOrderFromRaw(orderRaw)
	if err != nil {
		return err
	}
	dt, err := image.ChannelDataTypeFromRaw(typeRaw)
	if err != nil {
		return err
	}

	f := image.NewFormat(order, dt)
	fmt.Printf("Format: %s\n", f)
	if size := f.PixelBytes(); size > 0 {
		fmt.Printf("Pixel size: %d byte(s)\n", size)
	} else {
		fmt.Println("Pixel size: unknown")
	}
	return nil
}

func parseRawPair(arg string) (uint32, uint32, error) {
	parts := strings.SplitN(arg, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want order,data_type, got %q", arg)
	}
	orderRaw, err := parseCode(parts[0])
	if err != nil {
		return 0, 0, err
	}
	typeRaw, err := parseCode(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return orderRaw, typeRaw, nil
}

func parseCode(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("parse code %q: %w", s, err)
	}
	return uint32(v), nil
}

func runProps(platformStr string, sync bool) error {
	list := props.New()
	if platformStr != "" {
		raw, err := strconv.ParseUint(platformStr, 0, 64)
		if err != nil {
			return fmt.Errorf("parse platform handle %q: %w", platformStr, err)
		}
		list = list.Platform(clcore.PlatformFromRaw(uintptr(raw)))
	}
	if sync {
		list = list.InteropUserSync(true)
	}

	raw := list.Bytes()
	fmt.Printf("Entries: %d\n", list.Len())
	fmt.Printf("Wire bytes (%d):\n", len(raw))
	for i := 0; i < len(raw); i += 8 {
		end := i + 8
		if end > len(raw) {
			end = len(raw)
		}
		fmt.Printf("  %04x: % x\n", i, raw[i:end])
	}
	return nil
}
