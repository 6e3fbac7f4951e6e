package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/engine"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func readIntents() engine.Intents {
	return engine.Intents{
		Forward:     anyPressed(ebiten.KeyW, ebiten.KeyUp),
		Back:        anyPressed(ebiten.KeyS, ebiten.KeyDown),
		StrafeLeft:  anyPressed(ebiten.KeyA),
		StrafeRight: anyPressed(ebiten.KeyD),
		TurnLeft:    anyPressed(ebiten.KeyLeft, ebiten.KeyQ),
		TurnRight:   anyPressed(ebiten.KeyRight, ebiten.KeyE),
		Quit:        anyPressed(ebiten.KeyEscape),
	}
}
