package render

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/meshgrow/internal"
)

func TestOutput_Path(t *testing.T) {
	out := DefaultOutput()
	assert.Equal(t, filepath.Join("output", "grow.png"), out.Path(".png"))

	out.SubDir = "runs"
	out.Name = "first"
	assert.Equal(t, filepath.Join("output", "runs", "first.svg"), out.Path(".svg"))
}

func TestWrite(t *testing.T) {
	out := Output{Dir: filepath.Join(t.TempDir(), "output"), SubDir: "nested", Name: "grow"}
	path, err := Write(out, PNG{Style: DefaultStyle()}, []internal.Triangle{seedTriangle})
	require.NoError(t, err)
	assert.Equal(t, out.Path(".png"), path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	config, err := png.DecodeConfig(file)
	require.NoError(t, err)
	assert.Equal(t, 600, config.Width)
	assert.Equal(t, 500, config.Height)
}

// A finished run with no insertions still renders the seed triangle
func TestWrite_SeedOnly(t *testing.T) {
	config := internal.DefaultConfig()
	config.Insertions = 0
	config.Seed = 3
	g, err := internal.NewGrower(config)
	require.NoError(t, err)
	mesh, err := g.Run()
	require.NoError(t, err)
	require.Len(t, mesh.Triangles, 1)

	dir := t.TempDir()
	for _, r := range []Renderer{PNG{Style: DefaultStyle()}, SVG{Style: DefaultStyle()}, GeoJSON{}} {
		path, err := Write(Output{Dir: dir, Name: "seed"}, r, mesh.Triangles)
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestWrite_Errors(t *testing.T) {
	dir := t.TempDir()
	// A file where the output directory should be
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Write(Output{Dir: blocker, Name: "grow"}, PNG{Style: DefaultStyle()}, []internal.Triangle{seedTriangle})
	assert.Error(t, err)

	_, err = Write(Output{Dir: dir}, PNG{Style: DefaultStyle()}, []internal.Triangle{seedTriangle})
	assert.Error(t, err, "empty name")

	_, err = Write(Output{Dir: dir, Name: "empty"}, PNG{Style: DefaultStyle()}, nil)
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "empty.png"))
}

// Writes some output, then fails
type brokenRenderer struct{}

func (brokenRenderer) Extension() string {
	return ".broken"
}

func (brokenRenderer) Render(w io.Writer, triangles []internal.Triangle) error {
	if _, err := w.Write([]byte("partial")); err != nil {
		return err
	}
	return assert.AnError
}

func TestWrite_RenderFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(Output{Dir: dir, Name: "grow"}, brokenRenderer{}, []internal.Triangle{seedTriangle})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, path)
	assert.NoFileExists(t, filepath.Join(dir, "grow.broken"))
}
