package browser

import (
	"fmt"
	"testing"

	"github.com/imagespy/driverimages/driverimage"
	"github.com/stretchr/testify/assert"
)

func testRows(n int) []driverimage.DriverImage {
	var rows []driverimage.DriverImage
	for i := 0; i < n; i++ {
		rows = append(rows, driverimage.DriverImage{
			CreationDate: fmt.Sprintf("2024-06-%02dT12:00:00.000Z", i+1),
			ImageID:      fmt.Sprintf("ami-%d", i),
			Name:         fmt.Sprintf("java-driver-jammy-64-%d", i),
		})
	}

	return rows
}

func assertSelected(t *testing.T, s *State, expected int) {
	t.Helper()
	selected, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, expected, selected)
	assert.Equal(t, expected*RowHeight, s.ScrollOffset())
}

func TestNewState(t *testing.T) {
	s := NewState(testRows(3))
	assertSelected(t, s, 0)
	assert.False(t, s.Terminated())

	s = NewState(nil)
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, s.ScrollOffset())
}

func TestState_Wraps(t *testing.T) {
	s := NewState(testRows(3))
	s.Apply(PreviousRow)
	assertSelected(t, s, 2)

	s.Apply(NextRow)
	assertSelected(t, s, 0)

	s.Apply(NextRow)
	s.Apply(NextRow)
	assertSelected(t, s, 2)

	s.Apply(NextRow)
	assertSelected(t, s, 0)
}

func TestState_SingleRow(t *testing.T) {
	s := NewState(testRows(1))
	s.Apply(NextRow)
	assertSelected(t, s, 0)
	s.Apply(PreviousRow)
	assertSelected(t, s, 0)
}

func TestState_NoRows(t *testing.T) {
	s := NewState(nil)
	for _, c := range []Command{NextRow, PreviousRow, None} {
		s.Apply(c)
		_, ok := s.Selected()
		assert.False(t, ok)
		assert.Equal(t, 0, s.ScrollOffset())
	}
}

func TestState_Quit(t *testing.T) {
	testcases := []struct {
		name  string
		rows  int
		moves []Command
	}{
		{"Quit without rows", 0, nil},
		{"Quit right away", 3, nil},
		{"Quit after moving", 3, []Command{NextRow, NextRow, PreviousRow}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(testRows(tc.rows))
			for _, c := range tc.moves {
				s.Apply(c)
			}

			s.Apply(Quit)
			assert.True(t, s.Terminated())
		})
	}
}

func TestState_IgnoresNone(t *testing.T) {
	s := NewState(testRows(3))
	s.Apply(NextRow)
	s.Apply(None)
	s.Apply(Command(42))
	assertSelected(t, s, 1)
	assert.False(t, s.Terminated())
}
