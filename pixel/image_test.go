package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRGBImage(t *testing.T) {
	for _, bpp := range []int{3, 4} {
		for _, order := range []Order{OrderBGR, OrderRGB} {
			t.Run(order.String(), func(it *testing.T) {
				testImage(it, func(size image.Point) Image {
					return NewRGBImage(size.X, size.Y, bpp, size.X*bpp, size.X*size.Y*bpp, order)
				}, RGB888Model)
			})
		}
	}
}

func TestRGBImagePadding(t *testing.T) {
	// 2x2 pixels of 4 bytes, rows padded to 12 bytes.
	i := NewRGBImage(2, 2, 4, 12, 24, OrderBGR)
	for j := range i.Pix {
		i.Pix[j] = 0xee
	}
	i.Fill(NewRGB888(1, 2, 3))

	want := []byte{
		3, 2, 1, 0xee, 3, 2, 1, 0xee, 0xee, 0xee, 0xee, 0xee,
		3, 2, 1, 0xee, 3, 2, 1, 0xee, 0xee, 0xee, 0xee, 0xee,
	}
	for j := range want {
		if i.Pix[j] != want[j] {
			t.Fatalf("byte %d is %#02x, expected %#02x (%v)", j, i.Pix[j], want[j], i.Pix)
		}
	}
}

func TestRGBImageFillNil(t *testing.T) {
	i := NewRGBImage(2, 1, 3, 6, 6, OrderBGR)
	i.Fill(NewRGB888(1, 2, 3))
	i.Fill(nil)
	want := []byte{3, 2, 1, 3, 2, 1}
	for j := range want {
		if i.Pix[j] != want[j] {
			t.Fatalf("byte %d is %#02x, expected %#02x (%v)", j, i.Pix[j], want[j], i.Pix)
		}
	}
}

func TestRGBImageShortBuffer(t *testing.T) {
	i := NewRGBImage(2, 2, 4, 8, 14, OrderBGR)
	i.SetRGB(1, 1, NewRGB888(0xff, 0xff, 0xff))
	for j, v := range i.Pix {
		if v != 0 {
			t.Fatalf("byte %d was written with %#02x", j, v)
		}
	}
	if v := i.At(1, 1); v != color.Transparent {
		t.Errorf("expected transparent for a pixel past the buffer, got %#+v", v)
	}
	i.SetRGB(0, 1, NewRGB888(0xff, 0xff, 0xff))
	if v := i.At(0, 1); v != NewRGB888(0xff, 0xff, 0xff) {
		t.Errorf("expected white, got %#+v", v)
	}
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						if x >= 0 && x < test.X && y >= 0 && y < test.Y {
							continue
						}
						i.Set(x, y, testRandomColor())
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							return
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.At(x, y); v != (RGB888{}) {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
