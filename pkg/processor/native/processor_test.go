package nativeprocessor

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/franela/goblin"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/processor"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/relayerr"
	testutils "github.com/thebartekbanach/bandwidth-hero-proxy/test/utils"
)

const channelTolerance = 3

func TestNativeProcessor(t *testing.T) {
	g := goblin.Goblin(t)
	source := testutils.OpaquePNG(t)
	transparent := testutils.EncodePNG(t, testutils.HalfTransparentImage(40, 40))

	g.Describe("Transcoder", func() {
		g.Describe("Transcode", func() {
			g.It("Should produce webp of the same dimensions by default", func() {
				transcoder := NewTranscoder()
				result, err := transcoder.Transcode(context.Background(), source, processor.Request{
					Codec: processor.CodecWebP, Monochrome: true, Quality: 50,
				})

				g.Assert(err).IsNil()
				g.Assert(result.MimeType).Equal("image/webp")

				img, format := testutils.DecodeImage(t, result.Data)
				g.Assert(format).Equal("webp")
				g.Assert(img.Bounds().Dx()).Equal(100)
				g.Assert(img.Bounds().Dy()).Equal(100)
			})

			g.It("Should produce jpeg when requested", func() {
				transcoder := NewTranscoder()
				result, err := transcoder.Transcode(context.Background(), source, processor.Request{
					Codec: processor.CodecJPEG, Monochrome: false, Quality: 40,
				})

				g.Assert(err).IsNil()
				g.Assert(result.MimeType).Equal("image/jpeg")

				img, format := testutils.DecodeImage(t, result.Data)
				g.Assert(format).Equal("jpeg")
				g.Assert(img.Bounds().Dx()).Equal(100)
			})

			g.It("Should be deterministic for every parameter combination", func() {
				transcoder := NewTranscoder()
				for _, codec := range []processor.Codec{processor.CodecWebP, processor.CodecJPEG} {
					for _, monochrome := range []bool{true, false} {
						for _, quality := range []int{0, 40, 100, 255} {
							request := processor.Request{Codec: codec, Monochrome: monochrome, Quality: quality}

							first, err := transcoder.Transcode(context.Background(), source, request)
							g.Assert(err).IsNil()
							second, err := transcoder.Transcode(context.Background(), source, request)
							g.Assert(err).IsNil()

							g.Assert(bytes.Equal(first.Data, second.Data)).IsTrue()
						}
					}
				}
			})

			g.It("Should return grayscale pixels in monochrome mode", func() {
				transcoder := NewTranscoder()
				for _, codec := range []processor.Codec{processor.CodecWebP, processor.CodecJPEG} {
					result, err := transcoder.Transcode(context.Background(), source, processor.Request{
						Codec: codec, Monochrome: true, Quality: 80,
					})
					g.Assert(err).IsNil()

					img, _ := testutils.DecodeImage(t, result.Data)
					for _, point := range []image.Point{{10, 10}, {25, 50}, {75, 50}, {90, 90}} {
						r, gr, b, _ := testutils.RGBA8(img, point.X, point.Y)
						g.Assert(testutils.AbsDiff(r, gr) <= channelTolerance).IsTrue()
						g.Assert(testutils.AbsDiff(r, b) <= channelTolerance).IsTrue()
					}
				}
			})

			g.It("Should keep colors when monochrome is disabled", func() {
				transcoder := NewTranscoder()
				for _, codec := range []processor.Codec{processor.CodecWebP, processor.CodecJPEG} {
					result, err := transcoder.Transcode(context.Background(), source, processor.Request{
						Codec: codec, Monochrome: false, Quality: 80,
					})
					g.Assert(err).IsNil()

					img, _ := testutils.DecodeImage(t, result.Data)
					r, _, b, _ := testutils.RGBA8(img, 20, 50)
					g.Assert(r > 200 && b < 60).IsTrue()

					r, _, b, _ = testutils.RGBA8(img, 80, 50)
					g.Assert(b > 200 && r < 60).IsTrue()
				}
			})

			g.It("Should write monochrome jpeg as single channel image", func() {
				transcoder := NewTranscoder()
				result, err := transcoder.Transcode(context.Background(), source, processor.Request{
					Codec: processor.CodecJPEG, Monochrome: true, Quality: 40,
				})
				g.Assert(err).IsNil()

				img, _ := testutils.DecodeImage(t, result.Data)
				_, isGray := img.(*image.Gray)
				g.Assert(isGray).IsTrue()
			})

			g.It("Should keep transparency in webp output", func() {
				transcoder := NewTranscoder()
				result, err := transcoder.Transcode(context.Background(), transparent, processor.Request{
					Codec: processor.CodecWebP, Monochrome: true, Quality: 40,
				})
				g.Assert(err).IsNil()

				img, _ := testutils.DecodeImage(t, result.Data)
				_, _, _, topAlpha := testutils.RGBA8(img, 20, 5)
				_, _, _, bottomAlpha := testutils.RGBA8(img, 20, 35)
				g.Assert(topAlpha).Equal(uint8(0))
				g.Assert(bottomAlpha).Equal(uint8(255))
			})

			g.It("Should flatten transparency on white in jpeg output", func() {
				transcoder := NewTranscoder()
				result, err := transcoder.Transcode(context.Background(), transparent, processor.Request{
					Codec: processor.CodecJPEG, Monochrome: false, Quality: 90,
				})
				g.Assert(err).IsNil()

				img, _ := testutils.DecodeImage(t, result.Data)
				r, gr, b, _ := testutils.RGBA8(img, 20, 5)
				g.Assert(r > 240 && gr > 240 && b > 240).IsTrue()
			})

			g.It("Should return decode error for data that is not an image", func() {
				transcoder := NewTranscoder()
				_, err := transcoder.Transcode(context.Background(), []byte("<html>not found</html>"), processor.Request{})

				g.Assert(relayerr.IsKind(err, relayerr.KindDecode)).IsTrue()
			})

			g.It("Should return decode error for truncated image", func() {
				transcoder := NewTranscoder()
				_, err := transcoder.Transcode(context.Background(), source[:len(source)/2], processor.Request{})

				g.Assert(relayerr.IsKind(err, relayerr.KindDecode)).IsTrue()
			})

			g.It("Should not start when context is already cancelled", func() {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				transcoder := NewTranscoder()
				_, err := transcoder.Transcode(ctx, source, processor.Request{})

				g.Assert(err).IsNotNil()
				g.Assert(relayerr.IsKind(err, relayerr.KindDecode)).IsFalse()
			})
		})

		g.Describe("Grayscale", func() {
			g.It("Should use luma weights and keep alpha", func() {
				img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
				img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
				img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 255})

				gray := Grayscale(img)

				g.Assert(gray.NRGBAAt(0, 0)).Equal(color.NRGBA{R: 76, G: 76, B: 76, A: 128})
				g.Assert(gray.NRGBAAt(1, 0)).Equal(color.NRGBA{R: 10, G: 10, B: 10, A: 255})
			})

			g.It("Should not modify the source image", func() {
				img := testutils.TwoColorImage(4, 4)
				Grayscale(img)

				g.Assert(img.NRGBAAt(0, 0)).Equal(testutils.Red)
			})
		})

		g.Describe("Encode", func() {
			g.It("Should clamp out of range quality", func() {
				img := testutils.TwoColorImage(16, 16)
				for _, codec := range []processor.Codec{processor.CodecWebP, processor.CodecJPEG} {
					high, err := Encode(img, 255, codec)
					g.Assert(err).IsNil()

					best, err := Encode(img, 100, codec)
					g.Assert(err).IsNil()

					g.Assert(bytes.Equal(high, best)).IsTrue()
				}
			})

			g.It("Should reject unknown codec", func() {
				_, err := Encode(testutils.TwoColorImage(4, 4), 40, processor.Codec(42))
				g.Assert(err).Equal(ErrUnsupportedCodec)
			})
		})

		g.Describe("Decode", func() {
			g.It("Should move images to the origin", func() {
				src := image.NewNRGBA(image.Rect(5, 5, 15, 25))
				src.SetNRGBA(5, 5, testutils.Blue)

				img, err := Decode(testutils.EncodePNG(t, src))

				g.Assert(err).IsNil()
				g.Assert(img.Bounds()).Equal(image.Rect(0, 0, 10, 20))
				g.Assert(img.NRGBAAt(0, 0)).Equal(testutils.Blue)
			})
		})
	})
}
