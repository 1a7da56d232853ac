package browser

import (
	"github.com/imagespy/driverimages/driverimage"
)

// RowHeight is the number of terminal lines a table row occupies.
const RowHeight = 4

// Command is a navigation command derived from user input.
type Command int

const (
	// None leaves the state untouched.
	None Command = iota
	NextRow
	PreviousRow
	Quit
)

// State is the navigation state of a Browser. Rows never change after
// NewState, the selection is valid whenever there is at least one row.
type State struct {
	rows         []driverimage.DriverImage
	scrollOffset int
	selected     int
	terminated   bool
}

// NewState selects the first row of rows, if any.
func NewState(rows []driverimage.DriverImage) *State {
	s := &State{rows: rows, selected: -1}
	if len(rows) > 0 {
		s.selected = 0
	}

	return s
}

// Rows returns the rows of the session.
func (s *State) Rows() []driverimage.DriverImage {
	return s.rows
}

// Selected returns the index of the selected row. It returns false if
// there are no rows.
func (s *State) Selected() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}

	return s.selected, true
}

// ScrollOffset is the line offset of the selected row.
func (s *State) ScrollOffset() int {
	return s.scrollOffset
}

// Terminated reports whether Quit has been applied.
func (s *State) Terminated() bool {
	return s.terminated
}

// Apply performs the transition for c.
func (s *State) Apply(c Command) {
	switch c {
	case NextRow:
		s.nextRow()
	case PreviousRow:
		s.previousRow()
	case Quit:
		s.terminated = true
	}
}

func (s *State) nextRow() {
	if len(s.rows) == 0 {
		return
	}

	s.selected = (s.selected + 1) % len(s.rows)
	s.scrollOffset = s.selected * RowHeight
}

func (s *State) previousRow() {
	if len(s.rows) == 0 {
		return
	}

	s.selected = (s.selected - 1 + len(s.rows)) % len(s.rows)
	s.scrollOffset = s.selected * RowHeight
}
