package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil
// restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run opens a screen and runs the demo until the user quits. It returns the
// colour selected on exit.
func Run(d *Demo) (string, error) {
	screen, err := screenFactory()
	if err != nil {
		return "", fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	defer screen.DisableMouse()
	screen.HideCursor()

	d.Loop(screen)
	return d.Colour().Hex(d.opacity != nil), nil
}

// Loop polls screen for events and redraws after each one until a quit key
// is pressed or the screen is finalised.
func (d *Demo) Loop(screen tcell.Screen) {
	width, height := screen.Size()
	d.Resize(width, height)
	d.Draw(screen)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			w, h := ev.Size()
			d.Resize(w, h)
			screen.Sync()
		case *tcell.EventKey:
			if d.HandleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			d.HandleMouse(ev)
		default:
			continue
		}
		d.Draw(screen)
		screen.Show()
	}
}
