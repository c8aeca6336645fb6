package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/meshgrow/internal"
)

// Vector renderer producing the same picture as PNG.
type SVG struct {
	Style Style
	// Optional document title
	Title string
}

func (SVG) Extension() string {
	return ".svg"
}

func (r SVG) Render(w io.Writer, triangles []internal.Triangle) error {
	frame, err := NewFrame(triangles, r.Style.Padding)
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(frame.Width, frame.Height)
	if r.Title != "" {
		canvas.Title(r.Title)
	}
	canvas.Rect(0, 0, frame.Width, frame.Height, "fill:"+cssColor(r.Style.Background))

	if r.Style.Fill {
		style := fmt.Sprintf("fill:%s;fill-opacity:%g;stroke:none",
			cssColor(r.Style.FillColor), cssOpacity(r.Style.FillColor))
		xs := make([]int, 3)
		ys := make([]int, 3)
		for _, tri := range triangles {
			for i, p := range frame.Triangle(tri).Points() {
				xs[i], ys[i] = round(p.X), round(p.Y)
			}
			canvas.Polygon(xs, ys, style)
		}
	}

	if r.Style.EdgeWidth > 0 {
		style := fmt.Sprintf("stroke:%s;stroke-opacity:%g;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round",
			cssColor(r.Style.EdgeColor), cssOpacity(r.Style.EdgeColor), r.Style.EdgeWidth)
		canvas.Gstyle(style)
		for _, edge := range internal.DistinctEdges(triangles) {
			edge = frame.Edge(edge)
			canvas.Line(round(edge.P1.X), round(edge.P1.Y), round(edge.P2.X), round(edge.P2.Y))
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

func round(x float64) int {
	return int(math.Round(x))
}

// svgo ignores write errors, so remember the first one.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
