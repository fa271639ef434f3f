package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

var (
	Red  = color.NRGBA{R: 255, A: 255}
	Blue = color.NRGBA{B: 255, A: 255}
)

// TwoColorImage paints the left half red and the right half blue.
func TwoColorImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.SetNRGBA(x, y, Red)
			} else {
				img.SetNRGBA(x, y, Blue)
			}
		}
	}
	return img
}

// HalfTransparentImage has a fully transparent top half and an opaque red bottom half.
func HalfTransparentImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := height / 2; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, Red)
		}
	}
	return img
}

func EncodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()

	buf := bytes.Buffer{}
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("cannot encode test image: %v", err)
	}
	return buf.Bytes()
}

// OpaquePNG is the 100x100 two color fixture used by the relay scenarios.
func OpaquePNG(t testing.TB) []byte {
	return EncodePNG(t, TwoColorImage(100, 100))
}

func DecodeImage(t testing.TB, data []byte) (image.Image, string) {
	t.Helper()

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("cannot decode produced image: %v", err)
	}
	return img, format
}

// RGBA8 returns straight 8-bit channels of the pixel at x, y.
func RGBA8(img image.Image, x, y int) (r, g, b, a uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B, c.A
}

func AbsDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
