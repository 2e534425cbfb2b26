// Package game wires the window, input, simulation state and field renderer
// into the frame loop.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/assets"
	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/camera"
	"github.com/Faultbox/meadow/internal/engine/field"
	"github.com/Faultbox/meadow/internal/engine/gfx"
	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/input"
	"github.com/Faultbox/meadow/internal/engine/screenshot"
	"github.com/Faultbox/meadow/internal/engine/window"
	"github.com/Faultbox/meadow/internal/logger"
	"github.com/Faultbox/meadow/pkg/math"
)

// Title is the window title.
const Title = "Meadow"

// Game owns every resource of a running renderer.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	backend  *gfx.GL
	input    *input.Input
	renderer *field.Renderer
	state    *State
	pacer    *Pacer
	shots    *screenshot.Capture
	log      *zap.Logger

	capturing bool
}

// New opens the window, loads assets, generates the grass patch and builds
// the renderer. Everything after the window needs its GL context.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{cfg: cfg, log: logger.Named("game")}

	g.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("blades", cfg.Grass.BladeCount),
		zap.Int("grid_extent", cfg.Grass.GridExtent),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.backend, err = gfx.NewGL()
	if err != nil {
		g.Close()
		return nil, err
	}

	g.renderer, err = buildRenderer(g.backend, cfg)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create field renderer: %w", err)
	}

	g.input = input.New()
	g.state = NewState(NewCamera(cfg.Camera))
	g.pacer = NewPacer(cfg.Graphics.FPSLimit, nil)
	g.shots = screenshot.New(cfg.Graphics.ScreenshotDir, "meadow")

	g.log.Info("initialized")
	return g, nil
}

// NewCamera builds the camera described by cfg.
func NewCamera(cfg config.CameraConfig) *camera.Camera {
	pos := math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}
	return camera.New(pos, camera.FOVFromDegrees(cfg.FOVDegrees), cfg.Near, cfg.Far, camera.Limits(cfg.Limits))
}

func buildRenderer(b gfx.Backend, cfg *config.Config) (*field.Renderer, error) {
	m := assets.NewManager()
	if cfg.Assets.Dir != "" {
		if err := m.AddDir(cfg.Assets.Dir); err != nil {
			return nil, err
		}
	}

	src, err := field.LoadSources(m, field.TextureNames{
		Alpha:    cfg.Assets.AlphaTexture,
		Diffuse:  cfg.Assets.DiffuseTexture,
		ForceMap: cfg.Assets.ForceMap,
	})
	if err != nil {
		return nil, err
	}
	hits, misses := m.CacheStats()
	logger.Debug("asset sources loaded", zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))

	gcfg := cfg.Grass.Generator()
	if err := gcfg.Validate(); err != nil {
		return nil, err
	}
	rnd, seed := grass.NewSource(cfg.Grass.Seed)
	plane := grass.UnitPlane()
	start := time.Now()
	blades := grass.Generate(gcfg, plane, rnd)
	logger.Info("grass patch generated",
		zap.Int("blades", len(blades)),
		zap.Uint64("seed", seed),
		zap.Duration("took", time.Since(start)),
	)

	cc := cfg.Graphics.ClearColor
	return field.New(b, src, field.Options{
		Plane:      plane,
		Blades:     blades,
		GridExtent: cfg.Grass.GridExtent,
		ClearColor: math.Vec3{X: cc[0], Y: cc[1], Z: cc[2]},
	})
}

// Run drives the frame loop until the window closes or ctx is cancelled.
// Cancellation is checked between frames, never mid-frame.
func (g *Game) Run(ctx context.Context) error {
	frameCount := 0
	var frameTime time.Duration
	fpsTimer := time.Now()

	g.log.Info("starting frame loop", zap.Duration("budget", g.pacer.Budget()))

	for {
		select {
		case <-ctx.Done():
			g.log.Info("frame loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		if g.input.Update() {
			g.log.Info("quit requested")
			return nil
		}

		snap := g.input.Snapshot()
		g.state.Update(snap)

		w, h := g.window.DrawableSize()
		stats := g.renderer.Render(g.state.Frame(w, h))

		if input.Released(g.capturing, snap.Capture) {
			g.capture(w, h)
		}
		g.capturing = snap.Capture

		g.window.SwapBuffers()
		frameTime += g.pacer.Wait()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			avg := frameTime / time.Duration(frameCount)
			g.window.SetTitle(windowTitle(frameCount, avg, g.state.WindActive))
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("avg_frame", avg),
				zap.Int("draws", stats.GroundDraws+stats.GrassDraws),
				zap.Bool("wind", g.state.WindActive),
			)
			frameCount = 0
			frameTime = 0
			fpsTimer = time.Now()
		}
	}
}

// windowTitle shows the last second's frame rate in the title bar.
func windowTitle(fps int, avgFrame time.Duration, wind bool) string {
	title := fmt.Sprintf("%s - %d fps (%.2f ms)", Title, fps, float64(avgFrame.Microseconds())/1000)
	if wind {
		title += " - wind"
	}
	return title
}

// capture saves the frame just rendered, before it is swapped out.
func (g *Game) capture(w, h int) {
	name, err := g.shots.SavePixels(g.backend.ReadPixels(w, h), w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases GPU resources and the window.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.backend != nil {
		g.backend.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
