package background

import (
	"image/color"
	"math/rand"
)

type drawCall struct {
	op     string
	args   []float64
	colour color.NRGBA
}

// recorder is a Surface that remembers every call made on it
type recorder struct {
	width, height int
	calls         []drawCall
}

func (r *recorder) Size() (int, int) { return r.width, r.height }

func (r *recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.calls = append(r.calls, drawCall{op: "resize", args: []float64{float64(width), float64(height)}})
}

func (r *recorder) Clear() { r.calls = append(r.calls, drawCall{op: "clear"}) }

func (r *recorder) SetShadow(blur float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "shadow", args: []float64{blur}, colour: toNRGBA(clr)})
}

func (r *recorder) FillCircle(x, y, radius float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", args: []float64{x, y, radius}, colour: toNRGBA(clr)})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "line", args: []float64{x0, y0, x1, y1, width}, colour: toNRGBA(clr)})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func toNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

type box struct {
	width, height int
	missing       bool
}

func (b box) ContentBox() (int, int, bool) {
	return b.width, b.height, !b.missing
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// fieldOf builds a field holding particles at the given positions
func fieldOf(points ...[2]float64) []Particle {
	cfg := DefaultConfig()
	rng := newRand()
	particles := make([]Particle, 0, len(points))
	for _, p := range points {
		particles = append(particles, NewParticle(p[0], p[1], cfg, rng))
	}
	return particles
}
