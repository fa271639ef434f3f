package nativeprocessor

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/processor"
	"github.com/thebartekbanach/bandwidth-hero-proxy/pkg/relayerr"
)

// Transcoder decodes, optionally desaturates and re-encodes images in process.
type Transcoder struct{}

var _ processor.Transcoder = (*Transcoder)(nil)

func NewTranscoder() *Transcoder {
	return &Transcoder{}
}

func (t *Transcoder) Transcode(ctx context.Context, data []byte, request processor.Request) (processor.Result, error) {
	if err := ctx.Err(); err != nil {
		return processor.Result{}, relayerr.Wrap(relayerr.KindInternal, "nativeprocessor.transcode", "request cancelled before transcode", err)
	}

	img, err := Decode(data)
	if err != nil {
		return processor.Result{}, relayerr.Wrap(relayerr.KindDecode, "nativeprocessor.decode", "cannot decode source image", err)
	}

	if request.Monochrome {
		img = Grayscale(img)
	}

	output, err := Encode(img, request.Quality, request.Codec)
	if err != nil {
		return processor.Result{}, relayerr.Wrap(relayerr.KindEncode, "nativeprocessor.encode", "cannot encode "+request.Codec.String(), err)
	}

	return processor.Result{
		Data:     output,
		MimeType: request.Codec.MimeType(),
	}, nil
}

// Decode returns the image as straight-alpha NRGBA anchored at the origin.
func Decode(data []byte) (*image.NRGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, nil
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst, nil
}

// Grayscale replaces every pixel with its luma and keeps alpha untouched.
func Grayscale(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Rect)
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		src := img.Pix[img.PixOffset(bounds.Min.X, y):img.PixOffset(bounds.Max.X, y)]
		dst := out.Pix[out.PixOffset(bounds.Min.X, y):out.PixOffset(bounds.Max.X, y)]

		for i := 0; i+3 < len(src); i += 4 {
			lum := luma(src[i], src[i+1], src[i+2])
			dst[i] = lum
			dst[i+1] = lum
			dst[i+2] = lum
			dst[i+3] = src[i+3]
		}
	}

	return out
}

// Encode writes img with the given codec. Quality is clamped to 0-100.
func Encode(img *image.NRGBA, quality int, codec processor.Codec) ([]byte, error) {
	quality = clampQuality(quality)
	buf := bytes.Buffer{}

	var err error
	switch codec {
	case processor.CodecWebP:
		// libwebp reads RGBA buffers as straight alpha, which is how NRGBA stores pixels.
		straight := &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
		err = webp.Encode(&buf, straight, &webp.Options{Quality: float32(quality)})
	case processor.CodecJPEG:
		err = jpeg.Encode(&buf, flatten(img), &jpeg.Options{Quality: quality})
	default:
		err = ErrUnsupportedCodec
	}

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// flatten composites img over white. Gray input becomes a single channel image.
func flatten(img *image.NRGBA) draw.Image {
	bounds := img.Bounds()

	var dst draw.Image
	if isGray(img) {
		dst = image.NewGray(bounds)
	} else {
		dst = image.NewRGBA(bounds)
	}

	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Over)
	return dst
}

func isGray(img *image.NRGBA) bool {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] != img.Pix[i+1] || img.Pix[i] != img.Pix[i+2] {
			return false
		}
	}
	return true
}

// luma uses the ITU-R 601 weights of color.GrayModel.
func luma(r, g, b uint8) uint8 {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint8(y)
}

func clampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 100 {
		return 100
	}
	return quality
}

var (
	ErrUnsupportedCodec = errors.New("unsupported output codec")
)
