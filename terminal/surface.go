// Package terminal renders the molecule background in a terminal with tcell.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Each terminal cell covers CellWidth x CellHeight surface units, which keeps
// the particle density close to a pixel canvas of the same visual size.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	glyphSmall = '•'
	glyphLarge = '●'
	glyphLink  = '·'
)

// Surface draws onto a tcell screen, one glyph per cell
type Surface struct {
	screen   tcell.Screen
	backdrop colorful.Color

	width, height int

	shadowBlur  float64
	shadowColor color.Color
}

// NewSurface creates a surface over screen
func NewSurface(screen tcell.Screen, backdrop color.Color) *Surface {
	bg, ok := colorful.MakeColor(backdrop)
	if !ok {
		bg = colorful.Color{}
	}
	s := &Surface{
		screen:      screen,
		backdrop:    bg,
		shadowColor: color.Transparent,
	}
	cols, rows := screen.Size()
	s.width, s.height = cols*CellWidth, rows*CellHeight
	return s
}

// ContentBox reports the terminal size in surface units
func (s *Surface) ContentBox() (int, int, bool) {
	cols, rows := s.screen.Size()
	return cols * CellWidth, rows * CellHeight, cols > 0 && rows > 0
}

// Size returns the surface dimensions
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize records the new dimensions; the terminal itself decides its size
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Clear fills every cell with the backdrop
func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(s.backdrop)))
}

// SetShadow sets the glow applied to subsequent circles
func (s *Surface) SetShadow(blur float64, clr color.Color) {
	s.shadowBlur = blur
	s.shadowColor = clr
}

// FillCircle puts a dot glyph in the cell under (x, y). Glow tints the
// cell background.
func (s *Surface) FillCircle(x, y, radius float64, clr color.Color) {
	cx, cy, ok := s.cellAt(x, y)
	if !ok {
		return
	}

	fg, visible := s.blend(s.backdrop, clr)
	if !visible {
		return
	}
	bg := s.backdrop
	if s.shadowBlur > 0 {
		if glow, ok := s.blend(s.backdrop, s.shadowColor); ok {
			// A cell is much larger than the blur, so only a trace of it shows
			bg = s.backdrop.BlendRgb(glow, 0.35)
		}
	}

	glyph := glyphSmall
	if radius >= 5 {
		glyph = glyphLarge
	}
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	s.screen.SetContent(cx, cy, glyph, nil, style)
}

// StrokeLine marks every cell on the line between two points
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	fg, visible := s.blend(s.backdrop, clr)
	if !visible {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(s.backdrop))

	ax, ay := int(math.Floor(x0/CellWidth)), int(math.Floor(y0/CellHeight))
	bx, by := int(math.Floor(x1/CellWidth)), int(math.Floor(y1/CellHeight))
	cols, rows := s.screen.Size()

	for _, c := range bresenham(ax, ay, bx, by) {
		if c[0] < 0 || c[1] < 0 || c[0] >= cols || c[1] >= rows {
			continue
		}
		s.screen.SetContent(c[0], c[1], glyphLink, nil, style)
	}
}

// cellAt maps a surface point to a cell on screen
func (s *Surface) cellAt(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	cx, cy := int(x/CellWidth), int(y/CellHeight)
	cols, rows := s.screen.Size()
	return cx, cy, cx < cols && cy < rows
}

// blend composites clr over base by its alpha. It reports false for a
// fully transparent colour.
func (s *Surface) blend(base colorful.Color, clr color.Color) (colorful.Color, bool) {
	_, _, _, a := clr.RGBA()
	if a == 0 {
		return base, false
	}
	c, _ := colorful.MakeColor(clr)
	return base.BlendRgb(c, float64(a)/0xffff).Clamped(), true
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// bresenham returns the cells on the line from (x0, y0) to (x1, y1)
func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	cells := make([][2]int, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		cells = append(cells, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
