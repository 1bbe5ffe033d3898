// Package raster renders the background into an in-memory image, for
// snapshots and anything else without a window.
package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Surface draws onto an *image.RGBA with anti-aliased shapes
type Surface struct {
	img      *image.RGBA
	backdrop color.Color
	z        *vector.Rasterizer

	shadowBlur  float64
	shadowColor color.Color

	// halo is the glow sprite used for shadows; masks caches it per diameter
	halo  image.Image
	masks map[int]*image.Alpha
}

// NewSurface creates a width x height surface. halo may be nil, in which
// case shadows are not drawn.
func NewSurface(width, height int, backdrop color.Color, halo image.Image) *Surface {
	s := &Surface{
		backdrop:    backdrop,
		shadowColor: color.Transparent,
		halo:        halo,
		masks:       map[int]*image.Alpha{},
	}
	s.Resize(width, height)
	return s
}

// Image returns the current frame
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size returns the image dimensions
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the image with a cleared one of the new size
func (s *Surface) Resize(width, height int) {
	width = max(0, width)
	height = max(0, height)
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.z = vector.NewRasterizer(width, height)
	s.Clear()
}

// Clear fills the image with the backdrop
func (s *Surface) Clear() {
	xdraw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.backdrop), image.Point{}, xdraw.Src)
}

// SetShadow sets the halo drawn under subsequent circles
func (s *Surface) SetShadow(blur float64, clr color.Color) {
	s.shadowBlur = blur
	s.shadowColor = clr
}

// FillCircle draws a filled circle, with its halo when a shadow is set
func (s *Surface) FillCircle(x, y, radius float64, clr color.Color) {
	if radius <= 0 || s.img.Bounds().Empty() {
		return
	}
	if s.shadowBlur > 0 && s.halo != nil {
		s.drawHalo(x, y, radius+s.shadowBlur)
	}

	steps := max(16, int(radius*4))
	s.z.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.z.MoveTo(float32(x+radius), float32(y))
	for i := 1; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		s.z.LineTo(float32(x+math.Cos(angle)*radius), float32(y+math.Sin(angle)*radius))
	}
	s.z.ClosePath()
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// StrokeLine draws a line as a quad of the given width
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 || s.img.Bounds().Empty() {
		return
	}

	// Half-width normal to the line
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	s.z.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.z.MoveTo(float32(x0+nx), float32(y0+ny))
	s.z.LineTo(float32(x1+nx), float32(y1+ny))
	s.z.LineTo(float32(x1-nx), float32(y1-ny))
	s.z.LineTo(float32(x0-nx), float32(y0-ny))
	s.z.ClosePath()
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// drawHalo tints the glow sprite with the shadow colour and composites it
// centred on (x, y)
func (s *Surface) drawHalo(x, y, radius float64) {
	diameter := int(math.Ceil(radius * 2))
	mask := s.mask(diameter)
	origin := image.Pt(int(math.Round(x-float64(diameter)/2)), int(math.Round(y-float64(diameter)/2)))
	r := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(diameter, diameter))}
	xdraw.DrawMask(s.img, r, image.NewUniform(s.shadowColor), image.Point{}, mask, image.Point{}, xdraw.Over)
}

func (s *Surface) mask(diameter int) *image.Alpha {
	if m, ok := s.masks[diameter]; ok {
		return m
	}
	m := image.NewAlpha(image.Rect(0, 0, diameter, diameter))
	xdraw.BiLinear.Scale(m, m.Bounds(), s.halo, s.halo.Bounds(), xdraw.Src, nil)
	s.masks[diameter] = m
	return m
}
