package render

import (
	"image"
	"image/png"
	"io"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Print a PNG to an iTerm compatible terminal, scaled down so that neither
// side exceeds maxSize pixels.
func Preview(path string, maxSize int, w io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	img, err := png.Decode(file)
	file.Close()
	if err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}

	return errors.Wrap(imgcat.CatImage(Thumbnail(img, maxSize), w), "printing preview")
}

// Scale img down to fit in a maxSize square, keeping the aspect ratio. Images
// which already fit are returned as is.
func Thumbnail(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return img
	}

	scale := float64(maxSize) / float64(max(width, height))
	dstWidth := max(1, int(float64(width)*scale))
	dstHeight := max(1, int(float64(height)*scale))
	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
