package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"

	"golang.org/x/image/draw"

	_ "image/png" // register png decoder

	_ "golang.org/x/image/webp" // register webp decoder
)

// MaxUploadBytes limits the accepted upload size.
const MaxUploadBytes = 5 << 20

// MaxDimension is the maximum stored width or height.
const MaxDimension = 1280

// JPEGQuality is the compression quality for re-encoded output.
const JPEGQuality = 85

// allowedMIME lists the accepted input formats, keyed by sniffed type.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Result is a processed, storage-ready image.
type Result struct {
	Data []byte
	MIME string
}

// Process validates an upload by sniffing its bytes (client headers are
// not trusted), decodes it, downscales anything over MaxDimension, and
// re-encodes as JPEG.
func Process(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(data)
	if !allowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format %s (only JPEG, PNG, and WebP accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = fit(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	return &Result{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// fit scales the image down so neither dimension exceeds maxDim,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func fit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	newW := max(int(float64(w)*scale), 1)
	newH := max(int(float64(h)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
