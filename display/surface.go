package display

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws onto the Ebiten screen bound for the current frame
type Surface struct {
	target        *ebiten.Image
	width, height int
	backdrop      color.Color

	shadowBlur  float64
	shadowColor color.Color

	halo *ebiten.Image
}

// NewSurface creates a surface. halo may be nil, in which case shadows are not drawn.
func NewSurface(backdrop color.Color, halo image.Image) *Surface {
	s := &Surface{
		backdrop:    backdrop,
		shadowColor: color.Transparent,
	}
	if halo != nil {
		s.halo = ebiten.NewImageFromImage(halo)
	}
	return s
}

// Bind sets the image drawn on until the next Bind. A nil target drops draw calls.
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

// Size returns the surface dimensions
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize records the new dimensions; Ebiten sizes the screen from Layout
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Clear fills the screen with the backdrop
func (s *Surface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(s.backdrop)
}

// SetShadow sets the halo drawn under subsequent circles
func (s *Surface) SetShadow(blur float64, clr color.Color) {
	s.shadowBlur = blur
	s.shadowColor = clr
}

// FillCircle draws a filled circle, with its halo when a shadow is set
func (s *Surface) FillCircle(x, y, radius float64, clr color.Color) {
	if s.target == nil {
		return
	}
	if s.shadowBlur > 0 && s.halo != nil {
		s.drawHalo(x, y, radius+s.shadowBlur)
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), clr, true)
}

// StrokeLine draws an anti-aliased line
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// drawHalo scales the glow sprite to the halo diameter and tints it
func (s *Surface) drawHalo(x, y, radius float64) {
	b := s.halo.Bounds()
	scale := radius * 2 / float64(b.Dx())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-radius, y-radius)
	op.ColorScale.ScaleWithColor(s.shadowColor)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(s.halo, op)
}
