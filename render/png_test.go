package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/meshgrow/internal"
)

func renderPNG(t *testing.T, style Style, triangles []internal.Triangle) image.Image {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, PNG{Style: style}.Render(&buf, triangles))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img
}

func assertColor(t *testing.T, expected color.RGBA, actual color.Color, msgAndArgs ...interface{}) {
	t.Helper()
	r, g, b, _ := actual.RGBA()
	assert.InDelta(t, expected.R, r>>8, 2, msgAndArgs...)
	assert.InDelta(t, expected.G, g>>8, 2, msgAndArgs...)
	assert.InDelta(t, expected.B, b>>8, 2, msgAndArgs...)
}

func TestPNG_Render(t *testing.T) {
	img := renderPNG(t, DefaultStyle(), []internal.Triangle{seedTriangle})
	assert.Equal(t, image.Rect(0, 0, 600, 500), img.Bounds())

	assertColor(t, Black, img.At(2, 2), "background")
	// Mesh point (250, 150) is well inside the triangle
	assertColor(t, Red, img.At(300, 200), "fill")
	// Mesh point (250, 0) is on the middle of the bottom edge
	assertColor(t, DarkGray, img.At(300, 50), "edge")
}

func TestPNG_NoFill(t *testing.T) {
	style := DefaultStyle()
	style.Fill = false
	img := renderPNG(t, style, []internal.Triangle{seedTriangle})
	assertColor(t, Black, img.At(300, 200), "unfilled interior")
	assertColor(t, DarkGray, img.At(300, 50), "edge")
}

func TestPNG_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG{Style: DefaultStyle()}.Render(&buf, nil))
}
