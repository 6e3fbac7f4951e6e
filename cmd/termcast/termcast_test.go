package main

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcaster/config"
	"gridcaster/engine"
	"gridcaster/render"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestControlFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want control
	}{
		{runeKey('w'), forward},
		{runeKey('S'), back},
		{runeKey('a'), strafeLeft},
		{runeKey('d'), strafeRight},
		{runeKey('q'), turnLeft},
		{runeKey('e'), turnRight},
		{specialKey(tcell.KeyUp), forward},
		{specialKey(tcell.KeyLeft), turnLeft},
		{specialKey(tcell.KeyEscape), quit},
	}
	for _, tt := range tests {
		got, ok := controlFor(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("controlFor(%v)=%v,%v, want %v", tt.ev.Name(), got, ok, tt.want)
		}
	}
	if _, ok := controlFor(runeKey('x')); ok {
		t.Error("controlFor('x') mapped to a control")
	}
}

func TestKeyStateExpires(t *testing.T) {
	k := newKeyState()
	t0 := time.Now()
	k.press(runeKey('w'), t0)
	k.press(runeKey('e'), t0.Add(100*time.Millisecond))

	in := k.intents(t0.Add(110 * time.Millisecond))
	if !in.Forward || !in.TurnRight || in.Back || in.Quit {
		t.Errorf("intents=%+v, want forward and turn right", in)
	}

	in = k.intents(t0.Add(holdFor + time.Millisecond))
	if in.Forward {
		t.Error("forward still held after the hold window")
	}
	if !in.TurnRight {
		t.Error("turn right released early")
	}
}

func TestSample(t *testing.T) {
	f := render.NewFrame(4, 4)
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	f.Fill(blue)
	f.Set(2, 0, red)
	f.Set(3, 0, red)

	// 2x2 cells over a 4x4 frame: each cell is 2 pixels wide and each half
	// block 1 pixel tall.
	top, bottom := sample(f, 1, 0, 2, 2)
	if top != red || bottom != blue {
		t.Errorf("sample(1,0)=%v,%v, want red over blue", top, bottom)
	}
	top, bottom = sample(f, 0, 0, 2, 2)
	if top != blue || bottom != blue {
		t.Errorf("sample(0,0)=%v,%v, want blue", top, bottom)
	}
}

func TestLoopMovesThenQuits(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Rows, cfg.Grid.Cols = 5, 5
	cfg.Grid.Probabilities = map[int]float64{}
	cfg.Render.Width, cfg.Render.Height = 40, 20
	session, err := engine.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(40, 11)
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event)
	ticks := make(chan time.Time)
	done := make(chan error, 1)
	go func() {
		done <- loop(screen, session, events, ticks)
	}()

	events <- runeKey('w')
	ticks <- time.Now().Add(50 * time.Millisecond)
	events <- specialKey(tcell.KeyEscape)
	ticks <- time.Now().Add(60 * time.Millisecond)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on escape")
	}

	if y := session.Camera().Position().Y; y <= 2.5 {
		t.Errorf("camera y=%v, want forward of 2.5", y)
	}
}
