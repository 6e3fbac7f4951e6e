package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcaster/engine"
)

// holdFor is how long a key press counts as held. Terminals report repeats
// but never releases.
const holdFor = 120 * time.Millisecond

type control int

const (
	forward control = iota
	back
	strafeLeft
	strafeRight
	turnLeft
	turnRight
	quit
)

func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return forward, true
	case tcell.KeyDown:
		return back, true
	case tcell.KeyLeft:
		return turnLeft, true
	case tcell.KeyRight:
		return turnRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return forward, true
		case 's', 'S':
			return back, true
		case 'a', 'A':
			return strafeLeft, true
		case 'd', 'D':
			return strafeRight, true
		case 'q', 'Q':
			return turnLeft, true
		case 'e', 'E':
			return turnRight, true
		}
	}
	return 0, false
}

// keyState remembers when each control was last pressed.
type keyState struct {
	pressed map[control]time.Time
}

func newKeyState() *keyState {
	return &keyState{pressed: map[control]time.Time{}}
}

func (k *keyState) press(ev *tcell.EventKey, now time.Time) {
	if c, ok := controlFor(ev); ok {
		k.pressed[c] = now
	}
}

func (k *keyState) held(c control, now time.Time) bool {
	at, ok := k.pressed[c]
	return ok && now.Sub(at) < holdFor
}

func (k *keyState) intents(now time.Time) engine.Intents {
	return engine.Intents{
		Forward:     k.held(forward, now),
		Back:        k.held(back, now),
		StrafeLeft:  k.held(strafeLeft, now),
		StrafeRight: k.held(strafeRight, now),
		TurnLeft:    k.held(turnLeft, now),
		TurnRight:   k.held(turnRight, now),
		Quit:        k.held(quit, now),
	}
}
