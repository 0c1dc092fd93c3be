// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. A device is opened
// with [Open], reports its [Geometry] once and accepts whole frames through WriteFrame.
//
// [Memory] implements the same methods without any hardware, for tests and dry runs.
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/fbdisplay/pixel"
)

// DefaultDevice is the framebuffer device node of the primary display.
const DefaultDevice = "/dev/fb0"

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrClosed       = errors.New("framebuffer: device is closed")
	ErrFrameSize    = errors.New("framebuffer: frame exceeds device memory")
	ErrGeometry     = errors.New("framebuffer: invalid geometry")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format")
)

// Geometry describes the memory layout of a framebuffer.
type Geometry struct {
	// Width is the visible horizontal resolution in pixels.
	Width uint32

	// Height is the visible vertical resolution in pixels.
	Height uint32

	// LineLength is the length of one scanline in bytes, including any padding.
	LineLength uint32

	// BitsPerPixel is the pixel depth.
	BitsPerPixel uint32

	// Order of the color channels within a pixel, as reported by the device. Devices are
	// written blue, green, red unless the display is configured to follow this order.
	Order pixel.Order
}

// BytesPerPixel is the number of bytes between horizontally adjacent pixels.
func (g Geometry) BytesPerPixel() int {
	return int(g.BitsPerPixel / 8)
}

// FrameSize is the number of bytes in one full frame.
func (g Geometry) FrameSize() int {
	return int(g.LineLength) * int(g.Height)
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d %dbpp %s, %d bytes per line", g.Width, g.Height, g.BitsPerPixel, g.Order, g.LineLength)
}

// Validate checks that pixels can be addressed as whole bytes with room for three color channels.
func (g Geometry) Validate() error {
	switch {
	case g.Width == 0 || g.Height == 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrGeometry, g.Width, g.Height)
	case g.BitsPerPixel%8 != 0 || g.BitsPerPixel < 24:
		return fmt.Errorf("%w: %d bits per pixel", ErrFormat, g.BitsPerPixel)
	case uint64(g.LineLength) < uint64(g.Width)*uint64(g.BitsPerPixel/8):
		return fmt.Errorf("%w: line length %d is shorter than %d pixels of %d bits", ErrGeometry, g.LineLength, g.Width, g.BitsPerPixel)
	}
	return nil
}
