package render

import (
	"io"
	"os"
	"path/filepath"

	"github.com/osuushi/meshgrow/internal"
	"github.com/pkg/errors"
)

const (
	DefaultDir  = "output"
	DefaultName = "grow"
)

// Renderer turns a finished mesh into an artifact.
type Renderer interface {
	// File extension including the dot
	Extension() string
	Render(w io.Writer, triangles []internal.Triangle) error
}

// Output says where an artifact goes: Dir/SubDir/Name plus the renderer's
// extension. SubDir is optional.
type Output struct {
	Dir    string `yaml:"dir"`
	SubDir string `yaml:"subdir"`
	Name   string `yaml:"name"`
}

func DefaultOutput() Output {
	return Output{Dir: DefaultDir, Name: DefaultName}
}

func (o Output) Path(extension string) string {
	dir := o.Dir
	if o.SubDir != "" {
		dir = filepath.Join(dir, o.SubDir)
	}
	return filepath.Join(dir, o.Name+extension)
}

// Render the triangles into the output file, creating directories as needed.
// Returns the path written.
func Write(out Output, r Renderer, triangles []internal.Triangle) (string, error) {
	if out.Name == "" {
		return "", errors.New("output name must not be empty")
	}
	path := out.Path(r.Extension())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrapf(err, "creating output directory for %s", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", path)
	}

	renderErr := r.Render(file, triangles)
	closeErr := file.Close()
	if renderErr != nil || closeErr != nil {
		// Don't leave a truncated artifact behind
		os.Remove(path)
		if renderErr != nil {
			return "", errors.Wrapf(renderErr, "rendering %s", path)
		}
		return "", errors.Wrapf(closeErr, "closing %s", path)
	}
	return path, nil
}
