package renderer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// testLogger implements core.Logger for testing by capturing all output
type testLogger struct {
	mu    sync.Mutex
	lines []string
}

// Ensure testLogger implements core.Logger
var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.lines = append(tl.lines, format)
}

// MockIntegrator returns a fixed color and counts calls
type MockIntegrator struct {
	mu          sync.Mutex
	returnColor core.Vec3
	callCount   int
	lastDepth   int
}

func (m *MockIntegrator) RayColor(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	return m.Trace(ray, s, depth).Color
}

func (m *MockIntegrator) Trace(ray core.Ray, s *scene.Scene, depth int) integrator.TraceResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastDepth = depth
	return integrator.TraceResult{Color: m.returnColor, Rays: 1}
}

func createTestScene(t *testing.T, width int) *scene.Scene {
	t.Helper()
	s, err := scene.NewDefaultScene(geometry.CameraConfig{Width: width})
	if err != nil {
		t.Fatalf("NewDefaultScene failed: %v", err)
	}
	return s
}

func TestNewRaytracer_Defaults(t *testing.T) {
	s := createTestScene(t, 32)
	rt, err := NewRaytracer(s, &MockIntegrator{}, Config{}, nil)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	if rt.Config().Workers <= 0 {
		t.Errorf("Expected workers to default to CPU count, got %d", rt.Config().Workers)
	}
	if rt.Config().MaxDepth != s.MaxDepth {
		t.Errorf("Expected scene depth %d, got %d", s.MaxDepth, rt.Config().MaxDepth)
	}
	if rt.Width() != 32 || rt.Height() != 18 {
		t.Errorf("Expected 32x18, got %dx%d", rt.Width(), rt.Height())
	}
}

func TestNewRaytracer_InvalidScene(t *testing.T) {
	s := createTestScene(t, 32)
	s.CameraConfig.FocalLength = -1

	if _, err := NewRaytracer(s, &MockIntegrator{}, DefaultConfig(), nil); !errors.Is(err, geometry.ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}
}

func TestRaytracer_RenderFillsEveryPixel(t *testing.T) {
	color := core.NewVec3(0.25, 0.5, 0.75)

	for _, workers := range []int{1, 4} {
		mock := &MockIntegrator{returnColor: color}
		s := createTestScene(t, 16)
		rt, err := NewRaytracer(s, mock, Config{Workers: workers, MaxDepth: 3}, nil)
		if err != nil {
			t.Fatalf("NewRaytracer failed: %v", err)
		}

		img, stats, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("workers=%d: Render failed: %v", workers, err)
		}

		expectedPixels := rt.Width() * rt.Height()
		if len(img.Pixels) != expectedPixels || mock.callCount != expectedPixels {
			t.Errorf("workers=%d: expected %d pixels and calls, got %d pixels and %d calls",
				workers, expectedPixels, len(img.Pixels), mock.callCount)
		}
		if mock.lastDepth != 3 {
			t.Errorf("workers=%d: expected depth override 3, got %d", workers, mock.lastDepth)
		}
		for i, c := range img.Pixels {
			if c != color {
				t.Fatalf("workers=%d: pixel %d has color %v", workers, i, c)
			}
		}
		if stats.TotalPixels != expectedPixels || stats.RowsRendered != rt.Height() {
			t.Errorf("workers=%d: unexpected stats %+v", workers, stats)
		}
		if stats.Workers != workers {
			t.Errorf("Expected %d workers in stats, got %d", workers, stats.Workers)
		}
	}
}

func TestRaytracer_ParallelMatchesSequential(t *testing.T) {
	s, err := scene.NewCornellScene(geometry.CameraConfig{Width: 24})
	if err != nil {
		t.Fatalf("NewCornellScene failed: %v", err)
	}
	integ := integrator.NewWhittedIntegrator(integrator.DefaultConfig())

	render := func(workers int) (*Image, RenderStats) {
		rt, err := NewRaytracer(s, integ, Config{Workers: workers}, nil)
		if err != nil {
			t.Fatalf("NewRaytracer failed: %v", err)
		}
		img, stats, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return img, stats
	}

	sequential, seqStats := render(1)
	parallel, parStats := render(8)

	for i := range sequential.Pixels {
		if sequential.Pixels[i] != parallel.Pixels[i] {
			t.Fatalf("Pixel %d differs: sequential %v, parallel %v", i, sequential.Pixels[i], parallel.Pixels[i])
		}
	}
	if seqStats.TotalRays != parStats.TotalRays || seqStats.TotalBounces != parStats.TotalBounces {
		t.Errorf("Stats differ: sequential %+v, parallel %+v", seqStats, parStats)
	}
	if seqStats.TotalBounces == 0 {
		t.Error("Cornell scene should contain mirror bounces")
	}
	if seqStats.MaxBounces > s.MaxDepth {
		t.Errorf("Max bounces %d exceeds depth budget %d", seqStats.MaxBounces, s.MaxDepth)
	}
}

func TestRaytracer_ProgressLines(t *testing.T) {
	logger := &testLogger{}
	s := createTestScene(t, 8)
	rt, err := NewRaytracer(s, &MockIntegrator{}, DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	if _, _, err := rt.Render(context.Background()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// One countdown line per row, then Done
	if len(logger.lines) != rt.Height()+1 {
		t.Fatalf("Expected %d log lines, got %d", rt.Height()+1, len(logger.lines))
	}
	for _, line := range logger.lines[:rt.Height()] {
		if !strings.Contains(line, "Scanline remaining") {
			t.Errorf("Unexpected progress line %q", line)
		}
	}
	if !strings.Contains(logger.lines[rt.Height()], "Done.") {
		t.Errorf("Expected final Done line, got %q", logger.lines[rt.Height()])
	}
}

func TestRaytracer_ProgressCountdown(t *testing.T) {
	var buf bytes.Buffer
	s := createTestScene(t, 8) // 8x4
	rt, err := NewRaytracer(s, &MockIntegrator{}, DefaultConfig(), NewWriterLogger(&buf))
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	if _, _, err := rt.Render(context.Background()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "\rScanline remaining: 3 \rScanline remaining: 2 \rScanline remaining: 1 \rScanline remaining: 0 \rDone.                \n"
	if buf.String() != expected {
		t.Errorf("Expected progress %q, got %q", expected, buf.String())
	}
}

func TestRaytracer_RenderCancelled(t *testing.T) {
	for _, workers := range []int{1, 4} {
		s := createTestScene(t, 16)
		rt, err := NewRaytracer(s, &MockIntegrator{}, Config{Workers: workers}, nil)
		if err != nil {
			t.Fatalf("NewRaytracer failed: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		img, _, err := rt.Render(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
		if img != nil {
			t.Errorf("workers=%d: expected no image after cancellation", workers)
		}
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.NewVec3(1, 0, 0))
	img.Set(1, 0, core.NewVec3(0, 1, 0))
	img.Set(0, 1, core.NewVec3(0, 0, 1))
	img.Set(1, 1, core.NewVec3(0, 0, 0))

	// (0.2126 + 0.7152 + 0.0722 + 0) / 4
	expected := 0.25
	tolerance := 0.0001
	if avg := CalculateAverageLuminance(img); avg < expected-tolerance || avg > expected+tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, avg)
	}
	if img.At(1, 0) != core.NewVec3(0, 1, 0) {
		t.Errorf("At(1,0) returned %v", img.At(1, 0))
	}
}

func TestRenderStats_Merge(t *testing.T) {
	var total RenderStats
	total.AddTrace(integrator.TraceResult{Rays: 3, Bounces: 2})
	total.Merge(RenderStats{TotalPixels: 1, TotalRays: 1, MaxBounces: 5, RowsRendered: 1})

	if total.TotalPixels != 2 || total.TotalRays != 4 || total.TotalBounces != 2 || total.MaxBounces != 5 {
		t.Errorf("Unexpected merged stats %+v", total)
	}
	if avg := total.AverageRaysPerPixel(); avg != 2 {
		t.Errorf("Expected 2 rays per pixel, got %f", avg)
	}
	if (RenderStats{}).AverageRaysPerPixel() != 0 {
		t.Error("Empty stats should average to zero")
	}
}
