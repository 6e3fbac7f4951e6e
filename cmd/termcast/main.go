// Command termcast renders the raycaster view in a terminal using half-block
// characters.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"gridcaster/config"
	"gridcaster/engine"
)

func main() {
	flags := config.Flags("termcast")
	fps := flags.Int("fps", 30, "frames per second")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags)
	if err != nil {
		log.Fatal(err)
	}
	if *fps < 1 {
		log.Fatalf("--fps must be positive, got %d", *fps)
	}

	session, err := engine.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(session, time.Second/time.Duration(*fps)); err != nil {
		log.Fatal(err)
	}
}

func run(session *engine.Session, frameTime time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	return loop(screen, session, events, time.NewTicker(frameTime).C)
}

// loop runs until the quit control is held or the event source closes.
func loop(screen tcell.Screen, session *engine.Session, events <-chan tcell.Event, ticks <-chan time.Time) error {
	keys := newKeyState()
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.press(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticks:
			dt := now.Sub(last)
			last = now
			if err := session.Update(dt, keys.intents(now)); err != nil {
				if errors.Is(err, engine.ErrQuit) {
					return nil
				}
				return err
			}
			present(screen, session.Render())
			drawStatus(screen, session.Diagnostics().Lines())
			screen.Show()
		}
	}
}
