package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/fbdisplay/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// RGBImage is a 24 or 32 bits per pixel image with one byte per color channel.
//
// Only the first three bytes of a pixel are ever written, in Order. Any remaining
// bytes of a pixel, and any padding past the last pixel of a row, are left alone.
type RGBImage struct {
	Buffer

	// BytesPerPixel is the distance between horizontally adjacent pixels, 3 or more.
	BytesPerPixel int

	// Order of the color channels.
	Order Order
}

// NewRGBImage returns a zeroed w by h image with bpp bytes per pixel and rows stride bytes
// apart, backed by a buffer of size bytes. The buffer may be shorter than stride*h, pixels
// past its end are dropped.
func NewRGBImage(w, h, bpp, stride, size int, order Order) *RGBImage {
	return &RGBImage{
		Buffer:        makeBuffer(w, h, stride, size),
		BytesPerPixel: bpp,
		Order:         order,
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return RGB888Model
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGBImage) PixOffset(x, y int) int {
	return y*p.Stride + x*p.BytesPerPixel
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	index := p.PixOffset(x, y)
	if index+2 >= len(p.Pix) {
		return color.Transparent
	}
	return p.Order.Get(p.Pix[index:])
}

// SetRGB stores the channels of c at (x, y). Pixels outside of the image are dropped.
func (p *RGBImage) SetRGB(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	index := p.PixOffset(x, y)
	if index+2 >= len(p.Pix) {
		return
	}
	p.Order.Put(p.Pix[index:], c)
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if c == nil {
		return
	}
	p.SetRGB(x, y, ToRGB(c))
}

func (p *RGBImage) Fill(c color.Color) {
	if c == nil {
		return
	}
	value := ToRGB(c)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			p.SetRGB(x, y, value)
		}
	}
}

// Interface checks.
var (
	_ Image = (*RGBImage)(nil)
)
