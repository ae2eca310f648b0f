package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Document is the read side of an editing session.
type Document interface {
	LineCount() int
	Line(n int) []rune
	Len() int
	CursorPosition() (line, column int)
}

// Status is the extra information shown on the status line.
type Status struct {
	// Name is the file name; empty shows "[No Name]".
	Name string
	// Dirty marks unsaved changes.
	Dirty bool
	// Message is a transient note such as "saved".
	Message string
}

// Options configures a View.
type Options struct {
	TabWidth int
	Theme    Theme
}

// DefaultOptions returns the default view options.
func DefaultOptions() Options {
	return Options{
		TabWidth: 4,
		Theme:    DefaultTheme(),
	}
}

// View draws a document to a screen. The last row holds the status line;
// every other row shows one document line. The view scrolls just enough
// to keep the cursor visible.
type View struct {
	screen   tcell.Screen
	theme    Theme
	tabWidth int

	top  int // first document line shown
	left int // first screen column shown
}

// NewView creates a view drawing to screen.
func NewView(screen tcell.Screen, opts Options) *View {
	v := &View{screen: screen, theme: opts.Theme}
	v.SetTabWidth(opts.TabWidth)
	return v
}

// SetTheme replaces the view's theme.
func (v *View) SetTheme(t Theme) {
	v.theme = t
}

// SetTabWidth sets the tab stop interval.
func (v *View) SetTabWidth(n int) {
	if n < 1 {
		n = 4
	}
	v.tabWidth = n
}

// TabWidth returns the tab stop interval.
func (v *View) TabWidth() int {
	return v.tabWidth
}

// Scroll returns the first document line and screen column in view.
func (v *View) Scroll() (top, left int) {
	return v.top, v.left
}

// Draw renders doc and the status line, places the terminal cursor on the
// logical cursor, and shows the result.
func (v *View) Draw(doc Document, st Status) {
	width, height := v.screen.Size()
	v.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock, v.theme.Cursor)
	v.screen.Fill(' ', v.theme.Text)

	rows := height
	if height > 1 {
		rows--
	}

	line, col := doc.CursorPosition()
	cursorLine := doc.Line(line)
	cx := CellColumn(cursorLine, col, v.tabWidth)
	v.scrollTo(line, cx, rows, width)

	for y := 0; y < rows; y++ {
		n := v.top + y
		if n >= doc.LineCount() {
			break
		}
		v.drawLine(y, width, doc.Line(n))
	}

	if height > 1 {
		v.drawStatus(height-1, width, doc, st)
	}

	if rows > 0 && width > 0 {
		v.screen.ShowCursor(cx-v.left, line-v.top)
	} else {
		v.screen.HideCursor()
	}
	v.screen.Show()
}

// scrollTo adjusts the scroll offsets so that the cell at (line, x) lies
// inside a rows by cols window.
func (v *View) scrollTo(line, x, rows, cols int) {
	if rows < 1 || cols < 1 {
		return
	}
	if line < v.top {
		v.top = line
	} else if line >= v.top+rows {
		v.top = line - rows + 1
	}
	if x < v.left {
		v.left = x
	} else if x >= v.left+cols {
		v.left = x - cols + 1
	}
}

func (v *View) drawLine(y, width int, line []rune) {
	for _, c := range LayoutLine(line, v.tabWidth) {
		x := c.X - v.left
		if x < 0 || x+c.Width > width {
			continue
		}
		if c.Tab {
			for i := 0; i < c.Width; i++ {
				v.screen.SetContent(x+i, y, ' ', nil, v.theme.Text)
			}
			continue
		}
		v.screen.SetContent(x, y, c.Rune, c.Combining, v.theme.Text)
	}
}

func (v *View) drawStatus(y, width int, doc Document, st Status) {
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.theme.Status)
	}

	name := st.Name
	if name == "" {
		name = "[No Name]"
	}
	if st.Dirty {
		name += " [+]"
	}
	left := " " + name
	if st.Message != "" {
		left += "  " + st.Message
	}

	line, col := doc.CursorPosition()
	right := fmt.Sprintf("Ln %d, Col %d  %d chars ", line+1, col+1, doc.Len())

	rx := width - uniseg.StringWidth(right)
	v.drawText(0, y, rx, left)
	if rx >= 0 {
		v.drawText(rx, y, width, right)
	}
}

// drawText draws s starting at column x, stopping before column limit.
func (v *View) drawText(x, y, limit int, s string) {
	for _, c := range LayoutLine([]rune(s), 1) {
		if x+c.X+c.Width > limit {
			return
		}
		v.screen.SetContent(x+c.X, y, c.Rune, c.Combining, v.theme.Status)
	}
}
