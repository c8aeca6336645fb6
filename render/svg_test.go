package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/meshgrow/internal"
)

func TestSVG_Render(t *testing.T) {
	// Two triangles sharing an edge
	triangles := []internal.Triangle{
		seedTriangle,
		{A: seedTriangle.A, B: seedTriangle.B, C: internal.Point{X: 250, Y: -400}},
	}
	var buf bytes.Buffer
	require.NoError(t, SVG{Style: DefaultStyle(), Title: "test mesh"}.Render(&buf, triangles))

	root, err := svgparser.Parse(strings.NewReader(buf.String()), false)
	require.NoError(t, err)
	assert.Equal(t, "600", root.Attributes["width"])
	assert.Equal(t, "900", root.Attributes["height"])

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 2)
	// Shifted by (50, 450)
	assert.Equal(t,
		[]internal.Point{{X: 50, Y: 450}, {X: 550, Y: 450}, {X: 300, Y: 850}},
		parsePoints(polygons[0].Attributes["points"]))
	assert.Contains(t, polygons[0].Attributes["style"], "fill:rgb(255,0,0)")

	assert.Len(t, root.FindAll("line"), 5, "the shared edge is drawn once")
	assert.Contains(t, buf.String(), "stroke:rgb(64,64,64)")
	assert.Contains(t, buf.String(), "test mesh")
}

func TestSVG_NoFill(t *testing.T) {
	style := DefaultStyle()
	style.Fill = false
	var buf bytes.Buffer
	require.NoError(t, SVG{Style: style}.Render(&buf, []internal.Triangle{seedTriangle}))

	root, err := svgparser.Parse(strings.NewReader(buf.String()), false)
	require.NoError(t, err)
	assert.Empty(t, root.FindAll("polygon"))
	assert.Len(t, root.FindAll("line"), 3)
}

func TestSVG_WriteError(t *testing.T) {
	err := SVG{Style: DefaultStyle()}.Render(failingWriter{}, []internal.Triangle{seedTriangle})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

// svgo writes polygon points as "x1,y1 x2,y2 ..."
func parsePoints(attr string) []internal.Point {
	var points []internal.Point
	for _, pair := range strings.Fields(attr) {
		var p internal.Point
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			continue
		}
		p.X = atof(parts[0])
		p.Y = atof(parts[1])
		points = append(points, p)
	}
	return points
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
