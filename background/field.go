package background

import (
	"math"
	"math/rand"
	"time"
)

// Field owns the particle population for the current surface bounds
type Field struct {
	config    Config
	style     Style
	rng       *rand.Rand
	particles []Particle

	width, height int

	// generation counts repopulations so callers can tell a rebuild happened
	generation uint64
}

// NewField creates an empty field. A nil rng is seeded from the clock.
func NewField(config Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Field{
		config: config,
		style:  StyleFor(config),
		rng:    rng,
	}
}

// ParticleCount returns how many particles a width x height surface holds
func ParticleCount(width, height int, areaPerParticle float64) int {
	if width <= 0 || height <= 0 || areaPerParticle <= 0 {
		return 0
	}
	return int(math.Floor(float64(width) * float64(height) / areaPerParticle))
}

// Repopulate replaces every particle with a fresh random set covering the bounds
func (f *Field) Repopulate(width, height int) {
	f.width = width
	f.height = height
	f.generation++

	count := ParticleCount(width, height, f.config.AreaPerParticle)
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		x := f.rng.Float64() * float64(width)
		y := f.rng.Float64() * float64(height)
		particles = append(particles, NewParticle(x, y, f.config, f.rng))
	}
	f.particles = particles
}

// StepAll updates then draws each particle in sequence order
func (f *Field) StepAll(s Surface, ptr Pointer) {
	for i := range f.particles {
		p := &f.particles[i]
		p.Update(ptr, f.style.Easing)
		p.Draw(s, f.style)
	}
}

// Particles returns the current particles. Callers must not modify them.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the number of particles
func (f *Field) Len() int {
	return len(f.particles)
}

// Bounds returns the area the field was last populated for
func (f *Field) Bounds() (int, int) {
	return f.width, f.height
}

// Generation returns how many times the field has been repopulated
func (f *Field) Generation() uint64 {
	return f.generation
}
