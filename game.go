package main

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcaster/config"
	"gridcaster/engine"
	"gridcaster/hud"
)

// Game adapts a session to ebiten's game loop.
type Game struct {
	session *engine.Session
	cfg     config.Config

	// view receives the rendered frame before it is scaled to the window.
	view    *ebiten.Image
	minimap *ebiten.Image
	hud     *hud.HUD

	paused      bool
	showMinimap bool
	last        time.Time
}

func NewGame(cfg config.Config) (*Game, error) {
	log.Printf("Initializing %s", cfg.Window.Title)

	session, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}

	face, err := hud.Face(14)
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:     session,
		cfg:         session.Config(),
		view:        ebiten.NewImage(cfg.Render.Width, cfg.Render.Height),
		hud:         hud.New(face),
		showMinimap: true,
		last:        time.Now(),
	}
	g.generateMinimap()

	return g, nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Update() error {
	in := readIntents()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}

	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now

	if g.paused && !in.Quit {
		return nil
	}

	if err := g.session.Update(dt, in); err != nil {
		if errors.Is(err, engine.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	g.hud.Update(g.session.Diagnostics())

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.session.Render()
	g.view.WritePixels(frame.Pix())

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(
		float64(g.cfg.Window.Width)/float64(frame.Width()),
		float64(g.cfg.Window.Height)/float64(frame.Height()),
	)
	screen.DrawImage(g.view, op)

	if g.showMinimap {
		g.drawMinimap(screen)
	}
	g.drawUI(screen)
}
