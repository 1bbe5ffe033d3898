package background

import (
	"image/color"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a single point drifting around its rest position
type Particle struct {
	Pos            r2.Vec  // current position
	Base           r2.Vec  // rest position, fixed at creation
	Size           float64 // draw radius
	Responsiveness float64 // how hard the pointer pushes this particle
}

// Style holds the per-frame drawing and easing parameters shared by all particles
type Style struct {
	Fill     color.NRGBA
	Glow     color.NRGBA
	GlowBlur float64
	Easing   float64
}

// StyleFor derives the particle style from a config
func StyleFor(cfg Config) Style {
	return Style{
		Fill:     cfg.AccentAlpha(cfg.ParticleAlpha),
		Glow:     cfg.AccentAlpha(cfg.GlowAlpha),
		GlowBlur: cfg.GlowBlur,
		Easing:   cfg.RestEasing,
	}
}

// NewParticle creates a particle resting at (x, y) with random size and responsiveness
func NewParticle(x, y float64, cfg Config, rng *rand.Rand) Particle {
	pos := r2.Vec{X: x, Y: y}
	return Particle{
		Pos:            pos,
		Base:           pos,
		Size:           cfg.SizeMin + rng.Float64()*(cfg.SizeMax-cfg.SizeMin),
		Responsiveness: cfg.ResponsivenessMin + rng.Float64()*(cfg.ResponsivenessMax-cfg.ResponsivenessMin),
	}
}

// Update moves the particle for one frame.
// Inside the pointer radius it is pushed away from the pointer, outside it
// eases back toward its rest position. With no pointer it does not move.
func (p *Particle) Update(ptr Pointer, easing float64) {
	if !ptr.Set {
		return
	}

	toPointer := r2.Sub(ptr.Pos(), p.Pos)
	distance := r2.Norm(toPointer)

	if distance < ptr.Radius {
		// A pointer exactly on the particle has no direction to push in
		if distance == 0 {
			return
		}
		force := (ptr.Radius - distance) / ptr.Radius
		p.Pos = r2.Sub(p.Pos, r2.Scale(force*p.Responsiveness/distance, toPointer))
		return
	}

	p.Pos = r2.Add(p.Pos, r2.Scale(easing, r2.Sub(p.Base, p.Pos)))
}

// Draw paints the particle as a glowing filled circle
func (p *Particle) Draw(s Surface, st Style) {
	s.SetShadow(st.GlowBlur, st.Glow)
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Size, st.Fill)
}
