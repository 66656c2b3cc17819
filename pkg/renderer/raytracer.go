package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// Config contains render loop configuration
type Config struct {
	Workers  int // Rows rendered in parallel (0 = use CPU count, 1 = sequential)
	MaxDepth int // Reflection budget (0 = use the scene's)
}

// DefaultConfig returns a sequential render using the scene's depth budget
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// Raytracer walks every pixel of the camera, traces it and stores the color
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer for a validated scene
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, config Config, logger core.Logger) (*Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = s.MaxDepth
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integ,
		config:     config,
		logger:     logger,
	}, nil
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.camera.Width() }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.camera.Height() }

// Config returns the effective configuration
func (rt *Raytracer) Config() Config { return rt.config }

// Render traces every pixel and returns the finished image.
// Progress is reported to the logger once per completed scanline.
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	startTime := time.Now()
	img := NewImage(rt.Width(), rt.Height())
	progress := &progressReporter{logger: rt.logger, remaining: rt.Height()}

	var stats RenderStats
	var err error
	if rt.config.Workers == 1 {
		stats, err = rt.renderSequential(ctx, img, progress)
	} else {
		stats, err = rt.renderParallel(ctx, img, progress)
	}
	stats.Workers = rt.config.Workers
	stats.Duration = time.Since(startTime)
	if err != nil {
		rt.logger.Printf("\nRender cancelled after %d of %d rows\n", stats.RowsRendered, rt.Height())
		return nil, stats, err
	}

	rt.logger.Printf("\rDone.                \n")
	return img, stats, nil
}

// renderSequential renders rows top to bottom on the calling goroutine
func (rt *Raytracer) renderSequential(ctx context.Context, img *Image, progress *progressReporter) (RenderStats, error) {
	var stats RenderStats
	for j := 0; j < img.Height; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Merge(rt.RenderRow(j, img.Row(j)))
		progress.rowDone()
	}
	return stats, nil
}

// renderParallel hands rows to a bounded group of goroutines; each writes only its own row
func (rt *Raytracer) renderParallel(ctx context.Context, img *Image, progress *progressReporter) (RenderStats, error) {
	var (
		mu    sync.Mutex
		stats RenderStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.config.Workers)

	for j := 0; j < img.Height; j++ {
		if gctx.Err() != nil {
			break
		}
		j := j // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rowStats := rt.RenderRow(j, img.Row(j))

			mu.Lock()
			stats.Merge(rowStats)
			mu.Unlock()

			progress.rowDone()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	// Cancellation may stop dispatch before any goroutine observes it
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// RenderRow traces every pixel of scanline j into row, left to right
func (rt *Raytracer) RenderRow(j int, row []core.Vec3) RenderStats {
	stats := RenderStats{RowsRendered: 1}
	for i := range row {
		ray := rt.camera.GetRay(i, j)
		trace := rt.integrator.Trace(ray, rt.scene, rt.config.MaxDepth)
		row[i] = trace.Color
		stats.AddTrace(trace)
	}
	return stats
}

// progressReporter prints the scanline countdown
type progressReporter struct {
	mu        sync.Mutex
	logger    core.Logger
	remaining int
}

func (p *progressReporter) rowDone() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remaining--
	p.logger.Printf("\rScanline remaining: %d ", p.remaining)
}
