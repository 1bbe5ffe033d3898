package background

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LinkStrategy selects how the linker finds candidate pairs
type LinkStrategy int

const (
	// LinkScan compares every pair of particles
	LinkScan LinkStrategy = iota

	// LinkGrid buckets particles into cells the size of the link distance
	LinkGrid
)

// Config holds the visual constants of the background
type Config struct {
	// AccentHex is the colour of particles, glow and links
	AccentHex string

	// ParticleAlpha is the opacity of a particle's fill
	ParticleAlpha float64

	// GlowAlpha is the opacity of the shadow around a particle
	GlowAlpha float64

	// GlowBlur is the shadow blur radius in surface units
	GlowBlur float64

	// PointerRadius is the distance within which the pointer repels particles
	PointerRadius float64

	// SizeMin and SizeMax bound a particle's radius, [min, max)
	SizeMin, SizeMax float64

	// ResponsivenessMin and ResponsivenessMax bound the repulsion scale, [min, max)
	ResponsivenessMin, ResponsivenessMax float64

	// RestEasing is the fraction of the offset to rest recovered per frame
	RestEasing float64

	// LinkDistance is the exclusive upper bound on linked pair distance
	LinkDistance float64

	// LinkMaxAlpha is the opacity of a link of zero length
	LinkMaxAlpha float64

	// LinkWidth is the stroke width of a link
	LinkWidth float64

	// MaxLinks caps the links a particle opens as the lower index of a pair
	MaxLinks int

	// AreaPerParticle is the surface area that yields one particle
	AreaPerParticle float64

	// Links selects the pair search strategy
	Links LinkStrategy
}

// DefaultConfig returns the molecule background look
func DefaultConfig() Config {
	return Config{
		AccentHex:         "#61dafb", // rgb(97,218,251)
		ParticleAlpha:     0.9,
		GlowAlpha:         0.5,
		GlowBlur:          10,
		PointerRadius:     150,
		SizeMin:           3,
		SizeMax:           7,
		ResponsivenessMin: 10,
		ResponsivenessMax: 30,
		RestEasing:        1.0 / 15.0,
		LinkDistance:      110,
		LinkMaxAlpha:      0.4,
		LinkWidth:         2,
		MaxLinks:          2,
		AreaPerParticle:   10000,
		Links:             LinkScan,
	}
}

// Accent returns the parsed accent colour, falling back to the default one
func (c Config) Accent() colorful.Color {
	accent, err := colorful.Hex(c.AccentHex)
	if err != nil {
		return colorful.Color{R: 97.0 / 255, G: 218.0 / 255, B: 251.0 / 255}
	}
	return accent
}

// AccentAlpha returns the accent colour with the given opacity, clamped to [0, 1]
func (c Config) AccentAlpha(alpha float64) color.NRGBA {
	r, g, b := c.Accent().RGB255()
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

// LinkAlpha returns the opacity of a link between particles d units apart.
// It never goes below zero.
func (c Config) LinkAlpha(d float64) float64 {
	return math.Max(0, c.LinkMaxAlpha-d/c.LinkDistance)
}
