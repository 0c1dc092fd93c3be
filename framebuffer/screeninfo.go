package framebuffer

import "github.com/BeatGlow/fbdisplay/pixel"

// From <linux/fb.h>
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// fixScreenInfo contains device independent unchangeable information about a frame buffer device.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Capabilities and reserved for future compatibility
}

// bitField describes the position of one color channel within a pixel value.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func parseGeometry(fix *fixScreenInfo, info *varScreenInfo) Geometry {
	return Geometry{
		Width:        info.Xres,
		Height:       info.Yres,
		LineLength:   fix.LineLength,
		BitsPerPixel: info.BitsPerPixel,
		Order:        parseOrder(info),
	}
}

// parseOrder derives the byte order of the channels from their bit offsets, assuming a
// little-endian pixel value. Anything that is not recognizably RGB is treated as BGR.
func parseOrder(info *varScreenInfo) pixel.Order {
	switch {
	case info.BitsPerPixel >= 24 &&
		info.Red.Offset == 0 &&
		info.Red.Length == 8 &&
		info.Green.Offset == 8 &&
		info.Green.Length == 8 &&
		info.Blue.Offset == 16 &&
		info.Blue.Length == 8:
		return pixel.OrderRGB
	default:
		return pixel.OrderBGR
	}
}
