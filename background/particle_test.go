package background

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestNewParticleRanges(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand()
	for i := 0; i < 1000; i++ {
		p := NewParticle(12, 34, cfg, rng)
		if p.Pos != p.Base || p.Pos != (r2.Vec{X: 12, Y: 34}) {
			t.Fatalf("position not at rest: pos=%v base=%v", p.Pos, p.Base)
		}
		if p.Size < 3 || p.Size >= 7 {
			t.Fatalf("size out of range: %f", p.Size)
		}
		if p.Responsiveness < 10 || p.Responsiveness >= 30 {
			t.Fatalf("responsiveness out of range: %f", p.Responsiveness)
		}
	}
}

func TestUpdateWithoutPointerIsNoop(t *testing.T) {
	p := fieldOf([2]float64{100, 100})[0]
	p.Pos = r2.Vec{X: 300, Y: 40}
	p.Update(Pointer{Radius: 150}, 1.0/15)
	if p.Pos != (r2.Vec{X: 300, Y: 40}) {
		t.Fatalf("particle moved with pointer unset: %v", p.Pos)
	}
}

func TestUpdatePushesAwayFromPointer(t *testing.T) {
	p := fieldOf([2]float64{500, 600})[0]
	resp := p.Responsiveness

	p.Update(Pointer{X: 500, Y: 500, Radius: 150, Set: true}, 1.0/15)

	wantY := 600 + resp/3
	if math.Abs(p.Pos.X-500) > 1e-9 || math.Abs(p.Pos.Y-wantY) > 1e-9 {
		t.Fatalf("got=%v want=(500,%f)", p.Pos, wantY)
	}
}

func TestUpdateEasesTowardRest(t *testing.T) {
	p := fieldOf([2]float64{100, 100})[0]
	p.Pos = r2.Vec{X: 130, Y: 70}
	ptr := Pointer{X: 1000, Y: 1000, Radius: 150, Set: true}

	p.Update(ptr, 1.0/15)

	want := r2.Vec{X: 130 - 30.0/15, Y: 70 + 30.0/15}
	if r2.Norm(r2.Sub(p.Pos, want)) > 1e-9 {
		t.Fatalf("got=%v want=%v", p.Pos, want)
	}
}

func TestUpdateAtRestStaysPut(t *testing.T) {
	p := fieldOf([2]float64{100, 100})[0]
	p.Update(Pointer{X: 1000, Y: 1000, Radius: 150, Set: true}, 1.0/15)
	if p.Pos != p.Base {
		t.Fatalf("resting particle moved: %v", p.Pos)
	}
}

func TestUpdatePointerOnParticle(t *testing.T) {
	p := fieldOf([2]float64{250, 250})[0]
	p.Update(Pointer{X: 250, Y: 250, Radius: 150, Set: true}, 1.0/15)
	if math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y) {
		t.Fatalf("position became NaN")
	}
	if p.Pos != p.Base {
		t.Fatalf("coincident pointer moved particle: %v", p.Pos)
	}
}

func TestUpdateProperties(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand()
	ptr := Pointer{X: 400, Y: 300, Radius: cfg.PointerRadius, Set: true}

	for i := 0; i < 2000; i++ {
		p := NewParticle(rng.Float64()*800, rng.Float64()*600, cfg, rng)
		p.Pos = r2.Add(p.Pos, r2.Vec{X: rng.Float64()*80 - 40, Y: rng.Float64()*80 - 40})

		before := p.Pos
		distBefore := r2.Norm(r2.Sub(before, ptr.Pos()))
		restBefore := r2.Norm(r2.Sub(before, p.Base))

		p.Update(ptr, cfg.RestEasing)

		if distBefore < ptr.Radius && distBefore > 0 {
			if after := r2.Norm(r2.Sub(p.Pos, ptr.Pos())); after <= distBefore {
				t.Fatalf("inside radius did not move away: before=%f after=%f", distBefore, after)
			}
			continue
		}
		restAfter := r2.Norm(r2.Sub(p.Pos, p.Base))
		if restBefore > 0 && restAfter >= restBefore {
			t.Fatalf("outside radius did not approach rest: before=%f after=%f", restBefore, restAfter)
		}
	}
}

func TestDrawSetsGlowThenFills(t *testing.T) {
	cfg := DefaultConfig()
	p := fieldOf([2]float64{10, 20})[0]
	r := &recorder{}

	p.Draw(r, StyleFor(cfg))

	if len(r.calls) != 2 || r.calls[0].op != "shadow" || r.calls[1].op != "circle" {
		t.Fatalf("unexpected calls: %+v", r.calls)
	}
	if r.calls[0].args[0] != 10 {
		t.Fatalf("glow blur: got=%f want=10", r.calls[0].args[0])
	}
	fill := r.calls[1].colour
	if fill.R != 97 || fill.G != 218 || fill.B != 251 || fill.A != 230 {
		t.Fatalf("fill colour: got=%v", fill)
	}
	if r.calls[1].args[2] != p.Size {
		t.Fatalf("radius: got=%f want=%f", r.calls[1].args[2], p.Size)
	}
}
