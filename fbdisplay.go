// Package fbdisplay draws on a Linux framebuffer through an in-memory shadow buffer.
//
// Pixels are written to the shadow buffer with [Display.DrawPixels], or with any
// [image/draw] operation since a Display is a [draw.Image], and only reach the device
// when [Display.Flush] is called.
//
// A Display is not safe for concurrent use.
package fbdisplay

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"log/slog"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/fbdisplay/draw"
	"github.com/BeatGlow/fbdisplay/framebuffer"
	"github.com/BeatGlow/fbdisplay/pixel"
)

// Device is the framebuffer hardware a Display writes to.
type Device interface {
	// Geometry returns the memory layout of the device.
	Geometry() (framebuffer.Geometry, error)

	// WriteFrame writes a whole frame to the device.
	WriteFrame(frame []byte) error

	// Close the device.
	Close() error
}

// Pixel is a color at a position on the display.
type Pixel struct {
	X, Y  int
	Color pixel.RGB
}

// Points yields a Pixel of color c for every point.
func Points(points iter.Seq[image.Point], c pixel.RGB) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for p := range points {
			if !yield(Pixel{X: p.X, Y: p.Y, Color: c}) {
				return
			}
		}
	}
}

// Display is a framebuffer with a shadow buffer.
type Display struct {
	dev       Device
	geom      framebuffer.Geometry
	img       *pixel.RGBImage
	backlight gpio.PinOut
	log       *slog.Logger
}

// Open the framebuffer device named by the configuration and create a Display for it.
//
// The device is opened once and closed again if the display can not be created.
func Open(config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	path := config.DevicePath
	if path == "" {
		path = DefaultDevicePath
	}

	dev, err := framebuffer.Open(path)
	if err != nil {
		return nil, &ConstructionError{Op: "opening device", Path: path, Err: err}
	}

	d, err := New(dev, config)
	if err != nil {
		_ = dev.Close()
		if e, ok := err.(*ConstructionError); ok {
			e.Path = path
		}
		return nil, err
	}
	return d, nil
}

// New creates a Display for dev, with a zeroed shadow buffer sized from the device geometry.
//
// The geometry is queried once. If the device changes its mode afterwards, the display keeps
// using the old geometry.
func New(dev Device, config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	geom, err := dev.Geometry()
	if err != nil {
		return nil, &ConstructionError{Op: "querying geometry", Err: err}
	}
	if err = geom.Validate(); err != nil {
		return nil, &ConstructionError{Op: "checking geometry", Err: err}
	}

	var (
		bpp    = geom.BytesPerPixel()
		stride = int(geom.LineLength)
		order  = pixel.OrderBGR
	)
	if config.PackedRows {
		stride = int(geom.Width) * bpp
	}
	if config.DeviceOrder {
		order = geom.Order
	}

	d := &Display{
		dev:       dev,
		geom:      geom,
		img:       pixel.NewRGBImage(int(geom.Width), int(geom.Height), bpp, stride, geom.FrameSize(), order),
		backlight: config.Backlight,
		log:       config.logger(),
	}

	d.log.Debug("framebuffer display ready",
		slog.String("geometry", geom.String()),
		slog.Int("stride", stride),
		slog.Bool("packed", config.PackedRows),
		slog.String("order", order.String()),
		slog.Int("buffer", len(d.img.Pix)))
	return d, nil
}

func (d *Display) String() string {
	return fmt.Sprintf("framebuffer display %s", d.geom)
}

// DrawPixels writes the pixels to the shadow buffer, in order.
//
// Pixels outside of the display, and pixels without a color, are dropped.
func (d *Display) DrawPixels(pixels iter.Seq[Pixel]) {
	for p := range pixels {
		if p.Color == nil {
			continue
		}
		d.img.SetRGB(p.X, p.Y, p.Color)
	}
}

// Flush writes the whole shadow buffer to the device.
//
// The shadow buffer is left as is if the write fails, so Flush may be retried.
func (d *Display) Flush() error {
	if err := d.dev.WriteFrame(d.img.Pix); err != nil {
		return &FlushError{Size: len(d.img.Pix), Err: err}
	}
	d.log.Debug("flushed frame", slog.Int("bytes", len(d.img.Pix)))
	return nil
}

// Dimensions returns the width and height in pixels, as queried at construction.
func (d *Display) Dimensions() (width, height int) {
	return int(d.geom.Width), int(d.geom.Height)
}

// Geometry returns the device geometry queried at construction.
func (d *Display) Geometry() framebuffer.Geometry {
	return d.geom
}

func (d *Display) Bounds() image.Rectangle {
	return d.img.Bounds()
}

// ColorModel used by the display.
func (d *Display) ColorModel() color.Model {
	return d.img.ColorModel()
}

// At returns the color of the pixel at (x, y) in the shadow buffer.
func (d *Display) At(x, y int) color.Color {
	return d.img.At(x, y)
}

// Set the pixel color at (x, y) in the shadow buffer.
func (d *Display) Set(x, y int, c color.Color) {
	d.img.Set(x, y, c)
}

// Clear the shadow buffer.
func (d *Display) Clear() {
	d.img.Clear()
}

// Fill every pixel of the shadow buffer with c.
func (d *Display) Fill(c color.Color) {
	d.img.Fill(c)
}

// Show toggles the backlight on or off. It does nothing without a backlight pin.
func (d *Display) Show(show bool) error {
	if d.backlight == nil || d.backlight == gpio.INVALID {
		return nil
	}
	return d.backlight.Out(gpio.Level(show))
}

// Close the device.
func (d *Display) Close() error {
	return d.dev.Close()
}

// Interface checks.
var (
	_ draw.Image  = (*Display)(nil)
	_ pixel.Image = (*Display)(nil)
	_ Device      = (*framebuffer.Device)(nil)
	_ Device      = (*framebuffer.Memory)(nil)
)
