// Grows a random triangle mesh and renders it.
//
// Settings come from built-in defaults, then an optional YAML file (--config),
// then flags, each overriding the last. Artifacts are written to
// <output-dir>[/<subdir>]/<name>.<format>. If growth stalls, whatever was grown
// is still rendered, and the exit status is non-zero.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/meshgrow"
	"github.com/osuushi/meshgrow/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "0.1.0"

type options struct {
	configPath string
	logLevel   string
	color      bool
	formats    []string
	config     fileConfig
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "meshgrow: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseOptions(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(o.logLevel, stderr)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger = logger.With("run", runID)
	meshgrow.SetLogger(logger)
	defer meshgrow.SetLogger(nil)

	config := o.config.Config
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	logger.Info("starting", "version", version, "seed", config.Seed)

	renderers, err := o.config.Render.renderers("meshgrow " + runID)
	if err != nil {
		return err
	}

	started := time.Now()
	mesh, stats, growErr := meshgrow.Grow(config)
	if growErr != nil && !errors.Is(growErr, meshgrow.ErrGrowthStalled) {
		return growErr
	}
	if mesh == nil || len(mesh.Triangles) == 0 {
		// Stalled before the seed triangle was placed; nothing to render
		return growErr
	}

	var paths []string
	for _, r := range renderers {
		path, err := render.Write(o.config.Render.Output, r, mesh.Triangles)
		if err != nil {
			return err
		}
		logger.Info("wrote artifact", "path", path)
		paths = append(paths, path)

		if _, ok := r.(render.PNG); ok && o.config.Render.Preview {
			if err := render.Preview(path, o.config.Render.PreviewSize, stdout); err != nil {
				logger.Warn("preview failed", "error", err)
			}
		}
	}

	printSummary(stdout, aurora.NewAurora(o.color), mesh, stats, paths, time.Since(started), growErr)
	return growErr
}

// Flags are parsed twice. The first pass only finds the config file. The
// second pass uses the file's values as flag defaults, so that any flag given
// on the command line wins over the file.
func parseOptions(args []string) (*options, error) {
	first := &options{config: defaultFileConfig()}
	if _, err := newApp(first).Parse(args); err != nil {
		return nil, err
	}

	o := &options{config: defaultFileConfig()}
	if first.configPath != "" {
		if err := loadConfigFile(first.configPath, &o.config); err != nil {
			return nil, err
		}
	}
	if _, err := newApp(o).Parse(args); err != nil {
		return nil, err
	}
	o.config.Render.Formats = o.formats
	return o, nil
}

func newApp(o *options) *kingpin.Application {
	c := &o.config
	app := kingpin.New("meshgrow", "Grow a random triangle mesh and render it.")
	app.Version(version)
	app.HelpFlag.Short('h')

	app.Flag("config", "YAML config file.").Short('c').PlaceHolder("FILE").ExistingFileVar(&o.configPath)
	app.Flag("log-level", "Log level.").Default("info").EnumVar(&o.logLevel, "debug", "info", "warn", "error")
	app.Flag("color", "Colorize the summary (--no-color to disable).").Default("true").BoolVar(&o.color)

	app.Flag("insertions", "Triangles to grow after the seed triangle.").Short('n').
		Default(strconv.Itoa(c.Insertions)).IntVar(&c.Insertions)
	app.Flag("width", "Canvas width for candidate points.").
		Default(strconv.Itoa(c.Width)).IntVar(&c.Width)
	app.Flag("height", "Canvas height for candidate points.").
		Default(strconv.Itoa(c.Height)).IntVar(&c.Height)
	app.Flag("min-distance", "Reject candidates closer than this to any point.").
		Default(formatFloat(c.MinDistance)).Float64Var(&c.MinDistance)
	app.Flag("max-distance", "Reject candidates farther than this from every point.").
		Default(formatFloat(c.MaxDistance)).Float64Var(&c.MaxDistance)
	app.Flag("min-angle", "Smallest allowed triangle angle, in degrees.").
		Default(formatFloat(c.MinAngle)).Float64Var(&c.MinAngle)
	app.Flag("max-attempts", "Candidates per insertion before giving up.").
		Default(strconv.Itoa(c.MaxAttempts)).IntVar(&c.MaxAttempts)
	app.Flag("seed", "Random seed; 0 picks one from the clock.").Short('s').
		Default(strconv.FormatInt(c.Seed, 10)).Int64Var(&c.Seed)

	r := &c.Render
	app.Flag("output-dir", "Output directory.").Short('o').Default(r.Dir).StringVar(&r.Dir)
	app.Flag("subdir", "Optional subdirectory of the output directory.").Default(r.SubDir).StringVar(&r.SubDir)
	app.Flag("name", "Base file name of the artifacts.").Default(r.Name).StringVar(&r.Name)
	app.Flag("format", "Output format, may be repeated.").Short('f').
		Default(r.Formats...).EnumsVar(&o.formats, "png", "svg", "geojson")
	app.Flag("fill", "Fill triangles (--no-fill to only draw edges).").
		Default(strconv.FormatBool(r.Fill)).BoolVar(&r.Fill)
	app.Flag("padding", "Padding around the mesh.").Default(formatFloat(r.Padding)).Float64Var(&r.Padding)
	app.Flag("edge-width", "Edge stroke width.").Default(formatFloat(r.EdgeWidth)).Float64Var(&r.EdgeWidth)
	app.Flag("preview", "Print the PNG to the terminal (iTerm).").
		Default(strconv.FormatBool(r.Preview)).BoolVar(&r.Preview)
	return app
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func printSummary(w io.Writer, au aurora.Aurora, mesh *meshgrow.Mesh, stats meshgrow.Stats, paths []string, elapsed time.Duration, growErr error) {
	status := au.Green("grown")
	if growErr != nil {
		status = au.Red("stalled")
	}
	coverage := meshgrow.MeasureCoverage(mesh)
	fmt.Fprintf(w, "%s %d points, %d triangles in %v\n",
		au.Bold(status), len(mesh.Points), len(mesh.Triangles), elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  attempts %d, acceptance %.2f%%\n", stats.Attempts, 100*stats.AcceptanceRate())
	fmt.Fprintf(w, "  coverage %.1f%% of convex hull\n", 100*coverage.Ratio())
	for _, path := range paths {
		fmt.Fprintf(w, "  %s %s\n", au.Cyan("wrote"), path)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
