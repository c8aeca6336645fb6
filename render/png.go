package render

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/meshgrow/internal"
	"github.com/pkg/errors"
)

// Raster renderer. The image is sized to the mesh's frame.
type PNG struct {
	Style Style
}

func (PNG) Extension() string {
	return ".png"
}

func (r PNG) Render(w io.Writer, triangles []internal.Triangle) error {
	c, err := r.Draw(triangles)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// Draw the mesh into a new context without encoding it.
func (r PNG) Draw(triangles []internal.Triangle) (*gg.Context, error) {
	frame, err := NewFrame(triangles, r.Style.Padding)
	if err != nil {
		return nil, err
	}

	c := gg.NewContext(frame.Width, frame.Height)
	c.SetColor(r.Style.Background)
	c.DrawRectangle(0, 0, float64(frame.Width), float64(frame.Height))
	c.Fill()

	if r.Style.Fill {
		c.SetColor(r.Style.FillColor)
		for _, tri := range triangles {
			tri = frame.Triangle(tri)
			c.MoveTo(tri.A.X, tri.A.Y)
			c.LineTo(tri.B.X, tri.B.Y)
			c.LineTo(tri.C.X, tri.C.Y)
			c.ClosePath()
			// Fill one at a time; grown triangles can overlap with opposite
			// winding, and would cancel out as a single path.
			c.Fill()
		}
	}

	if r.Style.EdgeWidth > 0 {
		c.SetColor(r.Style.EdgeColor)
		c.SetLineWidth(r.Style.EdgeWidth)
		c.SetLineCapRound()
		c.SetLineJoinRound()
		for _, edge := range internal.DistinctEdges(triangles) {
			edge = frame.Edge(edge)
			c.DrawLine(edge.P1.X, edge.P1.Y, edge.P2.X, edge.P2.Y)
		}
		c.Stroke()
	}
	return c, nil
}
