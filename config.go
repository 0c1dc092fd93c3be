package fbdisplay

import (
	"log/slog"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/fbdisplay/framebuffer"
)

// DefaultDevicePath is the framebuffer device of the primary display.
const DefaultDevicePath = framebuffer.DefaultDevice

// Config is the display configuration.
type Config struct {
	// DevicePath is the framebuffer device node, DefaultDevicePath if empty.
	DevicePath string

	// PackedRows addresses rows as if they were exactly Width pixels long, ignoring any
	// padding the device has at the end of each line. Only use this to reproduce the
	// layout of software that does the same; by default rows are LineLength bytes apart.
	PackedRows bool

	// DeviceOrder writes the channels in the order the device reports in its geometry.
	// By default every pixel is written as blue, green, red regardless of the device.
	DeviceOrder bool

	// Backlight pin, optional.
	Backlight gpio.PinOut

	// Logger for debug messages, slog.Default() if nil.
	Logger *slog.Logger
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	DevicePath: DefaultDevicePath,
}

func (config *Config) logger() *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	return slog.Default()
}
