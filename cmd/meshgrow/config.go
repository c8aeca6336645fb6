package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/osuushi/meshgrow"
	"github.com/osuushi/meshgrow/render"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Layout of the YAML config file. Growth settings sit at the top level,
// rendering settings under "render":
//
//	insertions: 300
//	min_distance: 150
//	seed: 42
//	render:
//	  dir: output
//	  name: grow
//	  formats: [png, svg]
//	  fill_color: "#ff0000"
type fileConfig struct {
	meshgrow.Config `yaml:",inline"`
	Render          renderConfig `yaml:"render"`
}

type renderConfig struct {
	render.Output `yaml:",inline"`

	Formats     []string `yaml:"formats"`
	Padding     float64  `yaml:"padding"`
	Fill        bool     `yaml:"fill"`
	EdgeWidth   float64  `yaml:"edge_width"`
	Background  string   `yaml:"background"`
	FillColor   string   `yaml:"fill_color"`
	EdgeColor   string   `yaml:"edge_color"`
	Preview     bool     `yaml:"preview"`
	PreviewSize int      `yaml:"preview_size"`
}

func defaultFileConfig() fileConfig {
	style := render.DefaultStyle()
	return fileConfig{
		Config: meshgrow.DefaultConfig(),
		Render: renderConfig{
			Output:      render.DefaultOutput(),
			Formats:     []string{"png"},
			Padding:     style.Padding,
			Fill:        style.Fill,
			EdgeWidth:   style.EdgeWidth,
			Background:  hexColor(style.Background),
			FillColor:   hexColor(style.FillColor),
			EdgeColor:   hexColor(style.EdgeColor),
			PreviewSize: 800,
		},
	}
}

// Read a config file over the values already in config. Keys missing from the
// file keep their current value; unknown keys are an error.
func loadConfigFile(path string, config *fileConfig) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening config")
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func (c renderConfig) style() (render.Style, error) {
	style := render.Style{
		Padding:   c.Padding,
		Fill:      c.Fill,
		EdgeWidth: c.EdgeWidth,
	}
	for _, field := range []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"background", c.Background, &style.Background},
		{"fill_color", c.FillColor, &style.FillColor},
		{"edge_color", c.EdgeColor, &style.EdgeColor},
	} {
		parsed, err := parseHexColor(field.value)
		if err != nil {
			return render.Style{}, errors.Wrap(err, field.name)
		}
		*field.dst = parsed
	}
	return style, nil
}

func (c renderConfig) renderers(title string) ([]render.Renderer, error) {
	style, err := c.style()
	if err != nil {
		return nil, err
	}
	var renderers []render.Renderer
	seen := map[string]bool{}
	for _, format := range c.Formats {
		format = strings.ToLower(format)
		if seen[format] {
			continue
		}
		seen[format] = true
		switch format {
		case "png":
			renderers = append(renderers, render.PNG{Style: style})
		case "svg":
			renderers = append(renderers, render.SVG{Style: style, Title: title})
		case "geojson":
			renderers = append(renderers, render.GeoJSON{})
		default:
			return nil, errors.Errorf("unknown output format %q", format)
		}
	}
	if len(renderers) == 0 {
		return nil, errors.New("no output format selected")
	}
	return renderers, nil
}

// Colors are written as #rrggbb or #rrggbbaa.
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = errors.New("wrong length")
	}
	if err != nil {
		return nil, errors.Errorf("invalid color %q, expected #rrggbb or #rrggbbaa", s)
	}
	return c, nil
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
