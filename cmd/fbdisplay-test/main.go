package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/fbdisplay"
	"github.com/BeatGlow/fbdisplay/draw"
	"github.com/BeatGlow/fbdisplay/framebuffer"
	"github.com/BeatGlow/fbdisplay/pixel"
)

var (
	debug        bool
	devicePath   string
	packedRows   bool
	deviceOrder  bool
	backlightPin string
	dryRun       string
	snapshotPath string
	frameCount   int
	interval     time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "fbdisplay-test",
	Short:         "Draw a test pattern on a framebuffer display",
	Long:          "Draw an animated test pattern on a Linux framebuffer, or on an in-memory framebuffer with --dry-run.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&debug, "debug", false, "debug logging and error stack traces")
	flags.StringVar(&devicePath, "device", fbdisplay.DefaultDevicePath, "framebuffer device")
	flags.BoolVar(&packedRows, "packed", false, "ignore line padding, address rows as width pixels long")
	flags.BoolVar(&deviceOrder, "device-order", false, "write channels in the order the device reports instead of blue, green, red")
	flags.StringVar(&backlightPin, "backlight", "", "backlight GPIO pin, for example GPIO18")
	flags.StringVar(&dryRun, "dry-run", "", "draw on an in-memory 32bpp framebuffer of this size, for example 320x240")
	flags.StringVar(&snapshotPath, "snapshot", "", "save the last frame as BMP image")
	flags.IntVar(&frameCount, "frames", 0, "number of frames to draw, 0 to draw until interrupted")
	flags.DurationVar(&interval, "interval", 50*time.Millisecond, "time between frames")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config := fbdisplay.DefaultConfig
	config.DevicePath = devicePath
	config.PackedRows = packedRows
	config.DeviceOrder = deviceOrder
	config.Logger = logger

	if backlightPin != "" {
		if _, err := host.Init(); err != nil {
			return errors.Wrap(err, 0)
		}
		if config.Backlight = gpioreg.ByName(backlightPin); config.Backlight == nil {
			return errors.Errorf("invalid backlight pin %q", backlightPin)
		}
	}

	var (
		output *fbdisplay.Display
		memory *framebuffer.Memory
		err    error
	)
	if dryRun != "" {
		var w, h uint32
		if _, err = fmt.Sscanf(dryRun, "%dx%d", &w, &h); err != nil {
			return errors.Errorf("invalid dry run size %q: %v", dryRun, err)
		}
		memory = framebuffer.NewMemory(framebuffer.Geometry{
			Width:        w,
			Height:       h,
			LineLength:   w * 4,
			BitsPerPixel: 32,
		})
		output, err = fbdisplay.New(memory, &config)
	} else {
		output, err = fbdisplay.Open(&config)
	}
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer output.Close()
	logger.Info("using display", slog.String("display", output.String()))

	if err = output.Show(true); err != nil {
		return errors.Wrap(err, 0)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if frameCount == 0 {
		logger.Info("hit control-c to stop...")
	}
loop:
	for offset := 0; frameCount == 0 || offset < frameCount; offset++ {
		if err = drawFrame(output, offset); err != nil {
			return errors.Wrap(err, 0)
		}
		if err = output.Flush(); err != nil {
			return errors.Wrap(err, 0)
		}
		if frameCount > 0 && offset+1 == frameCount {
			break
		}

		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}
	}

	if snapshotPath != "" {
		var snapshot image.Image = output
		if memory != nil {
			snapshot = memory.Image()
		}
		if err = saveSnapshot(snapshotPath, snapshot); err != nil {
			return errors.Wrap(err, 0)
		}
		logger.Info("saved snapshot", slog.String("path", snapshotPath))
	}
	return nil
}

func drawFrame(output *fbdisplay.Display, offset int) error {
	w, h := output.Dimensions()

	// Draw gradient inside box
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			output.Set(x, y, pixel.NewRGB888(
				uint8(x+y+offset),
				uint8(x-y+offset),
				uint8(x+y-offset),
			))
		}
	}

	// Draw box around edge
	draw.Rectangle(output, output.Bounds(), color.White)

	// The diagonals run past the edges on purpose, off-screen pixels are dropped.
	red := pixel.NewRGB888(0xff, 0, 0)
	output.DrawPixels(fbdisplay.Points(draw.LinePixels(image.Pt(-w, -h), image.Pt(2*w, 2*h)), red))
	output.DrawPixels(fbdisplay.Points(draw.LinePixels(image.Pt(2*w, -h), image.Pt(-w, 2*h)), red))

	radius := min(w, h) / 4
	center := image.Pt(w/2, h/2)
	draw.Disc(output, center, radius, color.Black)
	draw.Circle(output, center, radius+(offset%8), color.White)

	size := float64(max(min(w, h)/10, 8))
	label := fmt.Sprintf("frame %d", offset)
	textWidth, ascent, err := draw.MeasureText(size, label)
	if err != nil {
		return err
	}
	box := image.Rect(w/2-textWidth/2-4, h-2*ascent-4, w/2+textWidth/2+4, h-4)
	draw.Draw(output, box.Add(image.Pt(2, 2)), image.NewUniform(color.NRGBA{A: 0x80}), image.Point{}, draw.Over)
	draw.RoundedBox(output, box, ascent/3, color.Black)
	_, err = draw.Text(output, image.Pt(w/2-textWidth/2, h-ascent-6+ascent/2), size, label, color.White)
	return err
}

func saveSnapshot(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = bmp.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	}
	os.Exit(1)
}
