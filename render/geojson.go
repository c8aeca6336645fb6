package render

import (
	"io"

	"github.com/osuushi/meshgrow/internal"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Writes the mesh as a GeoJSON FeatureCollection with one polygon per
// triangle, in mesh coordinates and insertion order.
type GeoJSON struct{}

func (GeoJSON) Extension() string {
	return ".geojson"
}

func (GeoJSON) Render(w io.Writer, triangles []internal.Triangle) error {
	if len(triangles) == 0 {
		return errors.New("cannot export an empty mesh")
	}
	fc := FeatureCollection(triangles)
	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing geojson")
}

func FeatureCollection(triangles []internal.Triangle) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, tri := range triangles {
		feature := geojson.NewFeature(internal.TriangleToPolygon(tri))
		feature.Properties["index"] = i
		feature.Properties["min_angle"] = tri.MinAngle()
		feature.Properties["area"] = tri.Area()
		fc.Append(feature)
	}
	return fc
}
