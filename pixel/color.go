package pixel

import "image/color"

// RGB888Model is the model for 24-bit RGB colors.
var RGB888Model color.Model = color.ModelFunc(rgb888Model)

// RGB is a color exposing its 8-bit red, green and blue channels.
type RGB interface {
	R() uint8
	G() uint8
	B() uint8
}

// RGB888 represents a 24-bit 8-8-8 RGB color.
type RGB888 struct {
	// CIgnore, 8, CRed, 8, CGreen, 8, CBlue, 8
	V uint32
}

// NewRGB888 packs the channels into an RGB888.
func NewRGB888(r, g, b uint8) RGB888 {
	return RGB888{uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

func (c RGB888) R() uint8 { return uint8(c.V >> 16) }
func (c RGB888) G() uint8 { return uint8(c.V >> 8) }
func (c RGB888) B() uint8 { return uint8(c.V) }

func (c RGB888) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	g = uint32(c.G())
	b = uint32(c.B())
	// Duplicate the whole value in the high byte.
	r |= r << 8
	g |= g << 8
	b |= b << 8
	return r, g, b, 0xffff
}

func rgb888Model(c color.Color) color.Color {
	switch c := c.(type) {
	case RGB888:
		return c
	case RGB:
		return NewRGB888(c.R(), c.G(), c.B())
	default:
		r, g, b, _ := c.RGBA()
		return NewRGB888(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

// ToRGB returns c if it already exposes its channels, or converts it using [RGB888Model].
func ToRGB(c color.Color) RGB {
	if v, ok := c.(RGB); ok {
		return v
	}
	return rgb888Model(c).(RGB888)
}

// Order is the order in which the color channels are stored within a pixel.
type Order uint8

// Supported channel orders.
const (
	OrderBGR Order = iota // Blue, green, red; the native order of most framebuffers
	OrderRGB              // Red, green, blue
)

func (o Order) String() string {
	switch o {
	case OrderRGB:
		return "RGB"
	default:
		return "BGR"
	}
}

// Put stores the three channels of c in b[0:3].
func (o Order) Put(b []byte, c RGB) {
	_ = b[2]
	switch o {
	case OrderRGB:
		b[0], b[1], b[2] = c.R(), c.G(), c.B()
	default:
		b[0], b[1], b[2] = c.B(), c.G(), c.R()
	}
}

// Get reads the three channels stored in b[0:3].
func (o Order) Get(b []byte) RGB888 {
	_ = b[2]
	switch o {
	case OrderRGB:
		return NewRGB888(b[0], b[1], b[2])
	default:
		return NewRGB888(b[2], b[1], b[0])
	}
}
