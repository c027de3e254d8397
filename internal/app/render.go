package app

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/input/mode"
	"github.com/dshills/helios/internal/renderer/backend"
)

var (
	styleGutter    = backend.Style{Dim: true}
	styleStatusBar = backend.Style{Reverse: true}
	styleMode      = backend.Style{Reverse: true, Bold: true}
)

// Screen layout: the text area fills all rows but the last two; the
// status bar sits above the message line.
type layout struct {
	width, height int
	textRows      int
	gutter        int
}

func newLayout(width, height, lineCount int, lineNumbers bool) layout {
	l := layout{width: width, height: height, textRows: height - 2}
	if l.textRows < 0 {
		l.textRows = 0
	}
	if lineNumbers {
		l.gutter = len(strconv.Itoa(lineCount)) + 1
		if l.gutter >= width {
			l.gutter = 0
		}
	}
	return l
}

func (l layout) statusRow() int  { return l.height - 2 }
func (l layout) messageRow() int { return l.height - 1 }

// render draws the session and positions the cursor.
func (app *Application) render() {
	b := app.backend
	width, height := b.Size()
	if width <= 0 || height <= 0 {
		return
	}

	state := app.machine.State()
	s := app.machine.Session()
	buf := s.Buffer()
	l := newLayout(width, height, buf.LineCount(), app.cfg.UI.ShowLineNumbers)
	s.UpdateViewport(l.textRows)

	b.Clear()

	cur := s.Cursor()
	cursorX, cursorY := l.gutter, -1
	for row := 0; row < l.textRows; row++ {
		line := s.Offset() + row
		if line >= buf.LineCount() {
			drawString(b, 0, row, width, "~", styleGutter)
			continue
		}
		if l.gutter > 0 {
			num := fmt.Sprintf("%*d ", l.gutter-1, line+1)
			drawString(b, 0, row, l.gutter, num, styleGutter)
		}
		x := drawLine(b, l.gutter, row, width, buf.LineText(line), buf.TabWidth(), cur.Column, line == cur.Line)
		if line == cur.Line {
			cursorX, cursorY = x, row
		}
	}

	app.drawStatusBar(l, state, buf)
	msgX := app.drawMessage(l, state, s)

	b.SetCursorStyle(cursorStyle(state.CursorStyle()))
	switch {
	case state.Name() == mode.ModeCommand:
		b.ShowCursor(msgX, l.messageRow())
	case cursorY >= 0:
		if cursorX >= width {
			cursorX = width - 1
		}
		b.ShowCursor(cursorX, cursorY)
	default:
		b.HideCursor()
	}
	b.Show()
}

func (app *Application) drawStatusBar(l layout, state mode.State, buf *buffer.Buffer) {
	row := l.statusRow()
	if row < 0 {
		return
	}
	b := app.backend
	for x := 0; x < l.width; x++ {
		b.SetContent(x, row, ' ', styleStatusBar)
	}

	name := buf.FilePath()
	if name == "" {
		name = "[No Name]"
	}
	if buf.IsModified() {
		name += " [+]"
	}
	label := " " + state.DisplayName() + " "
	x := drawString(b, 0, row, l.width, label, styleMode)
	x = drawString(b, x+1, row, l.width, name, styleStatusBar)

	cur := app.machine.Session().Cursor()
	right := fmt.Sprintf("%s  %d:%d ", buf.FileFormat(), cur.Line+1, cur.Column+1)
	rx := l.width - runewidth.StringWidth(right)
	if rx > x {
		drawString(b, rx, row, l.width, right, styleStatusBar)
	}
}

// drawMessage draws the command line, the status message or the pending
// key sequence and returns the column after the text.
func (app *Application) drawMessage(l layout, state mode.State, s *mode.Session) int {
	row := l.messageRow()
	var text string
	switch {
	case state.Name() == mode.ModeCommand:
		text = ":" + s.CommandLine()
	case s.Status() != "":
		text = s.Status()
	default:
		text = s.Pending()
	}
	return drawString(app.backend, 0, row, l.width, text, backend.StyleDefault)
}

// drawString draws text from x, clipping at maxX, and returns the column
// after the last cell drawn.
func drawString(b backend.Backend, x, y, maxX int, text string, style backend.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		b.SetContent(x, y, r, style)
		x += w
	}
	return x
}

// drawLine draws one buffer line with tabs expanded to tab stops and
// returns the screen column of cursorCol when cursorLine is set.
func drawLine(b backend.Backend, x0, y, maxX int, text string, tabWidth, cursorCol int, cursorLine bool) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	col := 0
	x := x0
	cursorX := x0
	for _, r := range text {
		if cursorLine && col == cursorCol {
			cursorX = x
		}
		col++

		if r == '\t' {
			next := x0 + ((x-x0)/tabWidth+1)*tabWidth
			for ; x < next; x++ {
				if x < maxX {
					b.SetContent(x, y, ' ', backend.StyleDefault)
				}
			}
			continue
		}
		if !unicode.IsPrint(r) {
			r = '?'
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
			r = '?'
		}
		if x+w <= maxX {
			b.SetContent(x, y, r, backend.StyleDefault)
		}
		x += w
	}
	if cursorLine && cursorCol >= col {
		cursorX = x
	}
	return cursorX
}

func cursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}
