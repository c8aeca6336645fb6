package render

import (
	"fmt"
	"image/color"
)

var (
	Black    = color.RGBA{0, 0, 0, 255}
	Red      = color.RGBA{255, 0, 0, 255}
	DarkGray = color.RGBA{64, 64, 64, 255}
)

// Style controls how a mesh is drawn. Triangles are filled first, then every
// distinct edge is stroked once with round caps and joins.
type Style struct {
	Padding    float64
	Fill       bool
	Background color.Color
	FillColor  color.Color
	EdgeColor  color.Color
	EdgeWidth  float64
}

func DefaultStyle() Style {
	return Style{
		Padding:    DefaultPadding,
		Fill:       true,
		Background: Black,
		FillColor:  Red,
		EdgeColor:  DarkGray,
		EdgeWidth:  12,
	}
}

// CSS rgb() notation for a color, ignoring alpha.
func cssColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

func cssOpacity(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}
