package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// Default normalization parameters for stored photos.
const (
	DefaultDimension = 500
	DefaultQuality   = 80
)

// ErrUnsupportedFormat is returned when the input is not a decodable JPEG or PNG.
var ErrUnsupportedFormat = errors.New("unsupported image format (only JPEG and PNG accepted)")

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Options controls the output of Process.
type Options struct {
	Dimension int // square output side length
	Quality   int // JPEG quality 1..100
}

func (o Options) withDefaults() Options {
	if o.Dimension <= 0 {
		o.Dimension = DefaultDimension
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

// Process reads image data, validates the format by sniffing bytes, crops and
// scales it to a fixed square (cover-fit: center crop, no letterboxing, no
// distortion) and re-encodes as JPEG. Output is always JPEG regardless of the
// input encoding.
func Process(r io.Reader, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	// Sniff actual MIME type from bytes (not trusting client headers).
	if !AllowedMIME[http.DetectContentType(data)] {
		return nil, ErrUnsupportedFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	dst := coverFit(img, opts.Dimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// coverFit scales the centered largest square of img to a dim x dim image.
// Uses high-quality Catmull-Rom interpolation.
func coverFit(img image.Image, dim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	side := w
	if h < side {
		side = h
	}
	x0 := bounds.Min.X + (w-side)/2
	y0 := bounds.Min.Y + (h-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, dim, dim))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)
	return dst
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
