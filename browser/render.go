package browser

import (
	"github.com/gdamore/tcell/v2"
	"github.com/imagespy/driverimages/driverimage"
	"github.com/mattn/go-runewidth"
)

var (
	headerNames = [2]string{"Name", "Creation Date"}

	// tailwind blue and slate
	headerBg         = tcell.NewHexColor(0x1e3a8a)
	headerFg         = tcell.NewHexColor(0xe2e8f0)
	rowFg            = tcell.NewHexColor(0xe2e8f0)
	selectedRowFg    = tcell.NewHexColor(0x60a5fa)
	normalRowBg      = tcell.NewHexColor(0x020617)
	altRowBg         = tcell.NewHexColor(0x0f172a)
	scrollbarThumbFg = tcell.NewHexColor(0x60a5fa)
)

// layout holds the column widths. It is computed once per session.
type layout struct {
	dateWidth int
	nameWidth int
}

func newLayout(rows []driverimage.DriverImage) layout {
	l := layout{
		dateWidth: runewidth.StringWidth(headerNames[1]),
		nameWidth: runewidth.StringWidth(headerNames[0]),
	}
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Name); w > l.nameWidth {
			l.nameWidth = w
		}

		if w := runewidth.StringWidth(r.CreationDate); w > l.dateWidth {
			l.dateWidth = w
		}
	}

	// padding between the columns
	l.nameWidth++
	return l
}

// firstVisibleRow returns the first row to draw so that the selected row
// is on screen when visible rows fit.
func firstVisibleRow(selected, visible int) int {
	if selected < visible {
		return 0
	}

	return selected - visible + 1
}

func render(screen tcell.Screen, s *State, l layout) {
	screen.Clear()
	width, height := screen.Size()
	tableWidth := width - 1

	headerStyle := tcell.StyleDefault.Foreground(headerFg).Background(headerBg)
	fill(screen, 0, tableWidth, headerStyle)
	drawString(screen, 0, 0, l.nameWidth, headerNames[0], headerStyle)
	drawString(screen, l.nameWidth, 0, tableWidth-l.nameWidth, headerNames[1], headerStyle)

	visible := (height - 1) / RowHeight
	if visible < 1 {
		visible = 1
	}

	selected, ok := s.Selected()
	first := 0
	if ok {
		first = firstVisibleRow(selected, visible)
	}

	rows := s.Rows()
	for i := first; i < len(rows) && i-first < visible; i++ {
		style := tcell.StyleDefault.Foreground(rowFg).Background(normalRowBg)
		if i%2 == 1 {
			style = style.Background(altRowBg)
		}

		if ok && i == selected {
			style = style.Foreground(selectedRowFg).Reverse(true)
		}

		top := 1 + (i-first)*RowHeight
		for dy := 0; dy < RowHeight; dy++ {
			fill(screen, top+dy, tableWidth, style)
		}

		drawString(screen, 0, top+1, l.nameWidth, rows[i].Name, style)
		drawString(screen, l.nameWidth, top+1, tableWidth-l.nameWidth, rows[i].CreationDate, style)
	}

	if len(rows) > visible {
		drawScrollbar(screen, width-1, height, s.ScrollOffset(), (len(rows)-1)*RowHeight)
	}

	screen.Show()
}

func drawScrollbar(screen tcell.Screen, x, height, position, length int) {
	track := height - 1
	if track < 1 || length < 1 {
		return
	}

	thumb := 1 + position*(track-1)/length
	for y := 1; y < height; y++ {
		if y == thumb {
			screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(scrollbarThumbFg))
			continue
		}

		screen.SetContent(x, y, '│', nil, tcell.StyleDefault)
	}
}

func fill(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawString draws s at x, y and cuts it off after limit cells.
func drawString(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > limit {
			return
		}

		screen.SetContent(x+used, y, r, nil, style)
		used += w
	}
}
