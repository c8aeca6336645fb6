package render

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/meshgrow/internal"
	"github.com/pkg/errors"
)

const DefaultPadding = 50

// A frame maps mesh coordinates into image coordinates: the bounding box of
// the mesh's vertices, grown by a padding on every side, with its corner moved
// to the origin.
type Frame struct {
	// Bounding box of the mesh vertices, in mesh coordinates
	Bounds  r2.Rect
	Padding float64

	Width, Height int

	// Added to mesh coordinates to get image coordinates
	OffsetX, OffsetY float64
}

func NewFrame(triangles []internal.Triangle, padding float64) (Frame, error) {
	points := internal.DistinctPoints(triangles)
	if len(points) == 0 {
		return Frame{}, errors.New("cannot frame an empty mesh")
	}
	if padding < 0 {
		return Frame{}, errors.Errorf("padding must not be negative, got %g", padding)
	}

	r2Points := make([]r2.Point, len(points))
	for i, p := range points {
		r2Points[i] = r2.Point(p)
	}
	bounds := r2.RectFromPoints(r2Points...)
	size := bounds.Size()

	return Frame{
		Bounds:  bounds,
		Padding: padding,
		Width:   atLeastOne(size.X + 2*padding),
		Height:  atLeastOne(size.Y + 2*padding),
		OffsetX: padding - bounds.X.Lo,
		OffsetY: padding - bounds.Y.Lo,
	}, nil
}

// Move a triangle into image coordinates.
func (f Frame) Triangle(tri internal.Triangle) internal.Triangle {
	return internal.Triangle{
		A: tri.A.Shift(f.OffsetX, f.OffsetY),
		B: tri.B.Shift(f.OffsetX, f.OffsetY),
		C: tri.C.Shift(f.OffsetX, f.OffsetY),
	}
}

func (f Frame) Edge(e internal.Edge) internal.Edge {
	return e.Shift(f.OffsetX, f.OffsetY)
}

// Image dimensions are truncated like the coordinates would be; an image
// always has at least one pixel.
func atLeastOne(extent float64) int {
	return int(math.Max(1, extent))
}
