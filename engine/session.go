package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"

	"gridcaster/config"
	"gridcaster/level"
	"gridcaster/model"
	"gridcaster/raycast"
	"gridcaster/render"
)

// ErrQuit is returned by Update once the quit intent is seen.
var ErrQuit = errors.New("quit requested")

// Intents are the per-frame controls. How they are produced is up to the
// host.
type Intents struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Quit        bool
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// Diagnostics is read-only state for a HUD.
type Diagnostics struct {
	FPS      float64
	Position geom.Vector2
	Angle    float64
	Dir      geom.Vector2
	Plane    geom.Vector2
}

// Session owns one grid, its camera and the frame it is rendered into.
type Session struct {
	cfg      config.Config
	grid     *level.Grid
	camera   *model.Camera
	renderer *render.Renderer
	frame    *render.Frame
	fps      float64
}

func New(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{}
	if err := copier.CopyWithOption(&s.cfg, &cfg, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy config: %w", err)
	}

	s.camera = model.NewCamera(s.cfg.Camera.X, s.cfg.Camera.Y, s.cfg.Camera.Angle)
	row, col := s.camera.Cell()

	grid, err := buildGrid(s.cfg, level.Cell{Row: row, Col: col})
	if err != nil {
		return nil, err
	}
	s.grid = grid

	if !grid.InBounds(row, col) {
		return nil, fmt.Errorf("%w: camera (%v,%v) is outside the %dx%d grid",
			config.ErrInvalid, s.cfg.Camera.X, s.cfg.Camera.Y, grid.Rows(), grid.Cols())
	}
	if grid.At(row, col) != level.Empty {
		return nil, fmt.Errorf("%w: camera (%v,%v) starts inside a wall",
			config.ErrInvalid, s.cfg.Camera.X, s.cfg.Camera.Y)
	}

	s.renderer, err = render.New(render.Options{
		LambdaMax:  s.cfg.Render.LambdaMax,
		Fisheye:    s.cfg.Render.FisheyeCorrection,
		Background: s.cfg.Render.Background.RGBA(),
		Cast: raycast.Options{
			MinDistance: s.cfg.Render.MinDistance,
			MaxDistance: s.cfg.Render.MaxDistance,
		},
		HeightScale: s.cfg.Render.HeightScale,
		Palette:     s.cfg.Palette(),
		Workers:     s.cfg.Render.Workers,
	})
	if err != nil {
		return nil, err
	}
	s.frame = render.NewFrame(s.cfg.Render.Width, s.cfg.Render.Height)

	log.Printf("session: %dx%d grid (%d occupied), camera at (%v,%v), %d render workers",
		grid.Rows(), grid.Cols(), grid.Occupied(), s.cfg.Camera.X, s.cfg.Camera.Y, s.cfg.Render.Workers)

	return s, nil
}

// buildGrid loads the map image if one is configured, otherwise generates a
// grid from the seed with the spawn cell kept clear.
func buildGrid(cfg config.Config, spawn level.Cell) (*level.Grid, error) {
	if cfg.Grid.Image == "" {
		rng := rand.New(rand.NewSource(cfg.Grid.Seed))
		return level.Generate(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Weights(), rng, spawn)
	}

	f, err := os.Open(cfg.Grid.Image)
	if err != nil {
		return nil, fmt.Errorf("open map image: %w", err)
	}
	defer f.Close()

	g, err := level.Decode(f, level.DefaultPalette())
	if err != nil {
		return nil, err
	}
	log.Printf("session: loaded map %s", cfg.Grid.Image)
	return g, nil
}

// Update advances the session by dt. Movement is applied before turning, so
// a frame moves along the direction the camera faced when it began.
func (s *Session) Update(dt time.Duration, in Intents) error {
	if in.Quit {
		return ErrQuit
	}

	secs := dt.Seconds()
	if secs > 0 {
		fps := 1 / secs
		if s.fps == 0 {
			s.fps = fps
		} else {
			s.fps += (fps - s.fps) * 0.1
		}
	}

	step := s.cfg.Movement.MoveSpeed * secs
	forward := axis(in.Forward, in.Back) * step
	// The left edge of the view is dir - plane.
	strafe := axis(in.StrafeRight, in.StrafeLeft) * step
	model.Move(s.camera, s.grid, forward, strafe)

	if turn := axis(in.TurnLeft, in.TurnRight); turn != 0 {
		s.camera.Rotate(turn * s.cfg.Movement.TurnSpeed * secs)
	}
	return nil
}

// Render draws the current view and returns the frame. The frame is reused by
// the next call.
func (s *Session) Render() *render.Frame {
	s.renderer.Render(s.frame, s.grid, s.camera)
	return s.frame
}

func (s *Session) Diagnostics() Diagnostics {
	return Diagnostics{
		FPS:      s.fps,
		Position: s.camera.Position(),
		Angle:    s.camera.Angle(),
		Dir:      s.camera.Dir(),
		Plane:    s.camera.Plane(),
	}
}

func (s *Session) Grid() *level.Grid     { return s.grid }
func (s *Session) Camera() *model.Camera { return s.camera }

// Config returns a copy of the configuration the session was built with.
func (s *Session) Config() config.Config {
	var cfg config.Config
	if err := copier.CopyWithOption(&cfg, &s.cfg, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("session: copy config: %v", err)
		return s.cfg
	}
	return cfg
}

// Lines formats the diagnostics as HUD text, one value per line.
func (d Diagnostics) Lines() []string {
	return []string{
		fmt.Sprintf("fps: %.0f", d.FPS),
		fmt.Sprintf("pos: %.2f, %.2f", d.Position.X, d.Position.Y),
		fmt.Sprintf("ang: %.2f", d.Angle),
		fmt.Sprintf("cam: %.2f, %.2f", d.Dir.X, d.Dir.Y),
		fmt.Sprintf("pln: %.2f, %.2f", d.Plane.X, d.Plane.Y),
	}
}
