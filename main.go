package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType  string
	width      int
	depth      int
	workers    int
	format     output.Format
	outputPath string
	lighting   integrator.LightingMode
	tint       bool
	bias       float64
	quiet      bool
	list       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	var format, lighting string
	fs.StringVar(&opts.sceneType, "scene", "default", "Scene type: 'default', 'cornell', 'mirrors' or 'single'")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum reflection depth (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 1, "Rows rendered in parallel (0 = use CPU count)")
	fs.StringVar(&format, "format", "ppm", "Output format: 'ppm' or 'png'")
	fs.StringVar(&opts.outputPath, "o", "", "Output file, extension added if missing (default stdout)")
	fs.StringVar(&lighting, "lighting", "first", "Diffuse lighting: 'first' light only or 'average' of all lights")
	fs.BoolVar(&opts.tint, "tint", false, "Tint reflections with the mirror color")
	fs.Float64Var(&opts.bias, "bias", integrator.DefaultReflectionBias, "Offset of reflected rays along the surface normal")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Sphere Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options] > image.ppm")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	var err error
	if opts.format, err = output.ParseFormat(format); err != nil {
		return opts, err
	}
	switch lighting {
	case "first":
		opts.lighting = integrator.FirstLight
	case "average":
		opts.lighting = integrator.AverageLights
	default:
		return opts, fmt.Errorf("unknown lighting mode %q", lighting)
	}
	if opts.width < 0 || opts.depth < 0 || opts.workers < 0 {
		return opts, fmt.Errorf("width, depth and workers must not be negative")
	}
	return opts, nil
}

// createScene builds a built-in scene, applying the width override
func createScene(sceneType string, width int) (*scene.Scene, error) {
	s, err := scene.CreateScene(sceneType, geometry.CameraConfig{Width: width})
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, availableScenes())
	}
	return s, nil
}

func availableScenes() string {
	var ids []string
	for _, info := range scene.ListScenes() {
		ids = append(ids, info.ID)
	}
	return strings.Join(ids, ", ")
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stdout, "  %-8s - %s\n", info.ID, info.Description)
		}
		return nil
	}

	var logger core.Logger = renderer.NewWriterLogger(stderr)
	if opts.quiet {
		logger = renderer.NewNopLogger()
	}

	selectedScene, err := createScene(opts.sceneType, opts.width)
	if err != nil {
		return err
	}

	integ := integrator.NewWhittedIntegrator(integrator.Config{
		ReflectionBias:  opts.bias,
		LightingMode:    opts.lighting,
		TintReflections: opts.tint,
	})

	raytracer, err := renderer.NewRaytracer(selectedScene, integ, renderer.Config{
		Workers:  opts.workers,
		MaxDepth: opts.depth,
	}, logger)
	if err != nil {
		return err
	}

	logger.Printf("Rendering %s scene at %dx%d (%d objects, depth %d, %d workers)\n",
		selectedScene.Name, raytracer.Width(), raytracer.Height(),
		selectedScene.GetPrimitiveCount(), raytracer.Config().MaxDepth, raytracer.Config().Workers)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%.2f rays/pixel, %d bounces, longest chain %d, average luminance %.3f)\n",
		stats.Duration, stats.AverageRaysPerPixel(), stats.TotalBounces, stats.MaxBounces,
		renderer.CalculateAverageLuminance(img))

	return writeImage(img, opts, stdout, logger)
}

// outputFilename appends the format's extension when path has none
func outputFilename(path string, format output.Format) string {
	if filepath.Ext(path) == "" {
		return path + format.Extension()
	}
	return path
}

func writeImage(img *renderer.Image, opts options, stdout io.Writer, logger core.Logger) error {
	if opts.outputPath == "" {
		return output.Write(stdout, img, opts.format)
	}

	path := outputFilename(opts.outputPath, opts.format)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := output.Write(file, img, opts.format); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}
