package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a character buffer the games draw into. The terminal layer turns
// it into styled output.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect { return NewRect(0, 0, s.width, s.height) }

// Resize changes the screen dimensions. Content in the overlapping top-left
// area survives.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	keepW, keepH := Min(s.width, width), Min(s.height, height)
	for y := 0; y < keepH; y++ {
		copy(cells[y*width:y*width+keepW], s.cells[y*s.width:y*s.width+keepW])
	}

	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetColored places a colored rune. Off-screen positions are ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell off-screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes uncolored text starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text starting at (x, y), clipped to the screen.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawTextRight writes text on row y so it ends margin cells from the
// right edge.
func (s *Screen) DrawTextRight(y, margin int, text string) {
	s.DrawText(s.width-margin-utf8.RuneCountInString(text), y, text)
}

// DrawRectColored fills r with a colored rune. Only the on-screen part of r
// is visited, so world objects far outside the viewport cost nothing.
func (s *Screen) DrawRectColored(r Rect, fill rune, c Color) {
	x0, y0 := Max(r.X, 0), Max(r.Y, 0)
	x1, y1 := Min(r.Right(), s.width), Min(r.Bottom(), s.height)
	for y := y0; y < y1; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x := x0; x < x1; x++ {
			row[x] = Cell{Rune: fill, Color: c}
		}
	}
}

// DrawPanel clears r and outlines it with box-drawing characters.
func (s *Screen) DrawPanel(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.DrawRectColored(r, ' ', ColorDefault)

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetColored(x, r.Y, '─', ColorDefault)
		s.SetColored(x, bottom, '─', ColorDefault)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColored(r.X, y, '│', ColorDefault)
		s.SetColored(right, y, '│', ColorDefault)
	}
	s.SetColored(r.X, r.Y, '┌', ColorDefault)
	s.SetColored(right, r.Y, '┐', ColorDefault)
	s.SetColored(r.X, bottom, '└', ColorDefault)
	s.SetColored(right, bottom, '┘', ColorDefault)
}

// Row returns row y as plain text, or spaces when y is off-screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
