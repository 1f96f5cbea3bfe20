package main

import (
	"fmt"
	"time"

	"dp-effects/config"
	"dp-effects/engine"
	"dp-effects/ui"

	"github.com/gdamore/tcell/v2"
)

// runTerminal hosts the page in the terminal. Input is polled on its own
// goroutine and handed to the frame loop over a channel, so all page state
// is touched from this goroutine only.
func runTerminal(a *app, cfg *config.Config, maxFrames int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	surface := ui.NewTerminalSurface(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	a.page.Mount(surface)
	defer a.page.Unmount()

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

	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	clock := engine.NewTimeProvider()
	pressed := false
	for frames := 0; maxFrames == 0 || frames < maxFrames; {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			now := clock.Now()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.page.HandleKey(ui.TerminalKey(ev), now) {
					return nil
				}
			case *tcell.EventMouse:
				col, row := ev.Position()
				x, y := surface.CellToPixel(col, row)
				a.page.PointerMove(x, y)
				down := ev.Buttons()&tcell.Button1 != 0
				if down && !pressed {
					a.page.Click(x, y, now)
				}
				pressed = down
			case *tcell.EventResize:
				screen.Sync()
				w, h := surface.Size()
				a.page.Resize(w, h, now)
			}
		case <-ticker.C:
			a.page.Frame(clock.Now())
			surface.Show()
			frames++
		}
	}
	return nil
}
