package browser

import (
	"github.com/gdamore/tcell/v2"
	"github.com/imagespy/driverimages/driverimage"
	"github.com/pkg/errors"
)

var newScreen = tcell.NewScreen

// Browser shows driver images as a table the user can scroll through.
type Browser struct {
	layout layout
	screen tcell.Screen
	state  *State
}

// New returns a Browser drawing on an initialised screen.
func New(screen tcell.Screen, rows []driverimage.DriverImage) *Browser {
	return &Browser{
		layout: newLayout(rows),
		screen: screen,
		state:  NewState(rows),
	}
}

// State returns the navigation state.
func (b *Browser) State() *State {
	return b.state
}

// Run draws the table and applies one key press at a time until the user
// quits or the screen is finalised.
func (b *Browser) Run() error {
	for !b.state.Terminated() {
		render(b.screen, b.state, b.layout)
		switch ev := b.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			b.screen.Sync()
		case *tcell.EventKey:
			b.state.Apply(CommandForKey(ev))
		}
	}

	return nil
}

// Browse takes over the terminal, runs a Browser on it and restores the
// terminal when the Browser returns or panics.
func Browse(rows []driverimage.DriverImage) error {
	screen, err := newScreen()
	if err != nil {
		return errors.Wrap(err, "creating screen")
	}

	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialising screen")
	}
	defer screen.Fini()

	screen.HideCursor()
	return New(screen, rows).Run()
}
