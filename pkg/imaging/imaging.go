// Package imaging prepares item photos for upload: it checks the format,
// downscales oversized images and re-encodes them.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const (
	DefaultMaxDimension = 1600
	DefaultJPEGQuality  = 85
)

var ErrUnsupportedFormat = errors.New("imaging: unsupported image format")

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Result is an image ready to be attached to a request.
type Result struct {
	Data     []byte
	MIME     string
	Filename string
	Width    int
	Height   int
	Resized  bool
}

// Processor holds the size and quality limits.
type Processor struct {
	MaxDimension int
	JPEGQuality  int
}

func NewProcessor(maxDim, quality int) Processor {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return Processor{MaxDimension: maxDim, JPEGQuality: quality}
}

// Prepare sniffs data (client-supplied names are not trusted), and returns it
// untouched when it is a JPEG or PNG within bounds. Anything larger, and any
// WebP, is re-encoded as JPEG.
func (p Processor) Prepare(data []byte, filename string) (*Result, error) {
	detected := http.DetectContentType(data)
	if !allowedMIME[detected] {
		return nil, fmt.Errorf("%w: %s (JPEG, PNG and WebP accepted)", ErrUnsupportedFormat, detected)
	}

	img, err := decode(data, detected)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	fits := bounds.Dx() <= p.MaxDimension && bounds.Dy() <= p.MaxDimension
	if fits && detected != "image/webp" {
		return &Result{
			Data:     data,
			MIME:     detected,
			Filename: filename,
			Width:    bounds.Dx(),
			Height:   bounds.Dy(),
		}, nil
	}

	scaled := downscale(img, p.MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	sb := scaled.Bounds()
	return &Result{
		Data:     buf.Bytes(),
		MIME:     "image/jpeg",
		Filename: jpegName(filename),
		Width:    sb.Dx(),
		Height:   sb.Dy(),
		Resized:  !fits,
	}, nil
}

func decode(data []byte, mime string) (image.Image, error) {
	r := bytes.NewReader(data)
	switch mime {
	case "image/png":
		return png.Decode(r)
	case "image/webp":
		return webp.Decode(r)
	default:
		return jpeg.Decode(r)
	}
}

// downscale fits img within maxDim on both sides, keeping the aspect ratio,
// and flattens transparency onto white.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	newW, newH := w, h
	if w > maxDim || h > maxDim {
		if w > h {
			newW = maxDim
			newH = int(float64(h) * float64(maxDim) / float64(w))
		} else {
			newH = maxDim
			newW = int(float64(w) * float64(maxDim) / float64(h))
		}
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func jpegName(filename string) string {
	if filename == "" {
		return "image.jpg"
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + ".jpg"
}
