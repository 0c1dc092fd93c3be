package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/BeatGlow/fbdisplay"
	"github.com/BeatGlow/fbdisplay/framebuffer"
)

func TestDrawFrame(t *testing.T) {
	for _, size := range []image.Point{image.Pt(1, 1), image.Pt(16, 8), image.Pt(320, 240)} {
		t.Run(size.String(), func(t *testing.T) {
			memory := framebuffer.NewMemory(framebuffer.Geometry{
				Width:        uint32(size.X),
				Height:       uint32(size.Y),
				LineLength:   uint32(size.X * 4),
				BitsPerPixel: 32,
			})
			output, err := fbdisplay.New(memory, nil)
			require.NoError(t, err)

			require.NoError(t, drawFrame(output, 3))
			require.NoError(t, output.Flush())
			assert.Equal(t, 1, memory.Writes())
			if size.X > 1 {
				// A single pixel ends up black under the disc and the label box.
				assert.NotEqual(t, make([]byte, size.X*size.Y*4), memory.Frame())
			}
		})
	}
}

func TestDrawFrameLabelShadow(t *testing.T) {
	memory := framebuffer.NewMemory(framebuffer.Geometry{
		Width:        320,
		Height:       240,
		LineLength:   320 * 4,
		BitsPerPixel: 32,
	})
	output, err := fbdisplay.New(memory, nil)
	require.NoError(t, err)
	require.NoError(t, drawFrame(output, 3))
	require.NoError(t, output.Flush())

	// Below the label box the gradient (144,182,138) is darkened by half.
	c := memory.Image().RGBAAt(160, 237)
	assert.InDelta(t, 72, c.R, 2)
	assert.InDelta(t, 91, c.G, 2)
	assert.InDelta(t, 69, c.B, 2)
}

func TestDryRun(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "frame.bmp")
	rootCmd.SetArgs([]string{"--dry-run", "64x32", "--frames", "2", "--interval", "1ms", "--snapshot", snapshot})
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(snapshot)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())

	r, g, b, _ := img.At(63, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "border is white")
}

func TestDryRunStopsAfterLastFrame(t *testing.T) {
	rootCmd.SetArgs([]string{"--dry-run", "16x8", "--frames", "1", "--interval", "1h", "--snapshot="})

	done := make(chan error, 1)
	go func() { done <- rootCmd.Execute() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run waited for another frame interval after the last frame")
	}
}

func TestDryRunInvalidSize(t *testing.T) {
	rootCmd.SetArgs([]string{"--dry-run", "big", "--frames", "1"})
	assert.ErrorContains(t, rootCmd.Execute(), "invalid dry run size")
}
