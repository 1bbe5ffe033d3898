package background

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestLinkNearPairDrawn(t *testing.T) {
	r := &recorder{width: 200, height: 200}
	l := NewLinker(DefaultConfig())

	drawn := l.LinkAll(r, fieldOf([2]float64{0, 0}, [2]float64{20, 0}))

	if drawn != 1 || r.count("line") != 1 {
		t.Fatalf("lines: got=%d recorded=%d want=1", drawn, r.count("line"))
	}
	line := r.calls[0]
	wantAlpha := 0.4 - 20.0/110
	if math.Abs(float64(line.colour.A)/255-wantAlpha) > 1.0/255 {
		t.Fatalf("alpha: got=%d want≈%f", line.colour.A, wantAlpha)
	}
	if line.args[4] != 2 {
		t.Fatalf("line width: got=%f want=2", line.args[4])
	}
}

func TestLinkFadedPairSkipped(t *testing.T) {
	r := &recorder{width: 200, height: 200}
	l := NewLinker(DefaultConfig())

	if drawn := l.LinkAll(r, fieldOf([2]float64{0, 0}, [2]float64{109, 0})); drawn != 0 {
		t.Fatalf("zero-alpha link drawn: %d", drawn)
	}
	if len(r.calls) != 0 {
		t.Fatalf("unexpected calls: %+v", r.calls)
	}
}

func TestLinkPastFadeCountsButNotDrawn(t *testing.T) {
	r := &recorder{width: 300, height: 300}
	l := NewLinker(DefaultConfig())

	// At 50 apart the alpha clamps to zero, yet the pair still uses a slot
	ps := fieldOf([2]float64{0, 0}, [2]float64{50, 0}, [2]float64{0, 60}, [2]float64{10, 0})
	if drawn := l.LinkAll(r, ps); drawn != 1 {
		t.Fatalf("lines: got=%d want=1", drawn)
	}
	if c := r.calls[0]; c.args[0] != 50 || c.args[1] != 0 {
		t.Fatalf("unexpected line: %+v", c)
	}
	if got := DefaultConfig().LinkAlpha(50); got != 0 {
		t.Fatalf("alpha at 50: got=%f want=0", got)
	}
}

func TestLinkAlphaClamped(t *testing.T) {
	cfg := DefaultConfig()
	for _, d := range []float64{0, 10, 44, 50, 109, 110, 500} {
		a := cfg.LinkAlpha(d)
		if a < 0 || a > 0.4 {
			t.Fatalf("alpha at %f out of range: %f", d, a)
		}
	}
	if cfg.LinkAlpha(109) != 0 {
		t.Fatalf("alpha at 109: got=%f want=0", cfg.LinkAlpha(109))
	}
}

func TestLinkFarPairIgnored(t *testing.T) {
	r := &recorder{width: 400, height: 400}
	l := NewLinker(DefaultConfig())
	if drawn := l.LinkAll(r, fieldOf([2]float64{0, 0}, [2]float64{110, 0}, [2]float64{300, 300})); drawn != 0 {
		t.Fatalf("far pairs linked: %d", drawn)
	}
}

func TestLinkCapPerLowerIndex(t *testing.T) {
	r := &recorder{width: 200, height: 200}
	l := NewLinker(DefaultConfig())

	// Every particle is within fading range of every other one
	ps := fieldOf([2]float64{50, 50}, [2]float64{55, 50}, [2]float64{50, 55}, [2]float64{45, 50}, [2]float64{50, 45})
	l.LinkAll(r, ps)

	from := map[[2]float64]int{}
	for _, c := range r.calls {
		from[[2]float64{c.args[0], c.args[1]}]++
	}
	for i, p := range ps {
		if n := from[[2]float64{p.Pos.X, p.Pos.Y}]; n > 2 {
			t.Fatalf("particle %d opened %d links", i, n)
		}
	}
	if from[[2]float64{50, 50}] != 2 {
		t.Fatalf("first particle links: got=%d want=2", from[[2]float64{50, 50}])
	}
}

func TestLinkCapCountsFadedLinks(t *testing.T) {
	r := &recorder{width: 300, height: 300}
	l := NewLinker(DefaultConfig())

	// Two invisible links from particle 0 use up its cap before the close one
	ps := fieldOf([2]float64{0, 0}, [2]float64{100, 0}, [2]float64{0, 100}, [2]float64{10, 0})
	l.LinkAll(r, ps)

	for _, c := range r.calls {
		if c.args[0] == 0 && c.args[1] == 0 {
			t.Fatalf("particle 0 linked past its cap: %+v", c)
		}
	}
}

func TestGridMatchesScan(t *testing.T) {
	scanCfg := DefaultConfig()
	gridCfg := DefaultConfig()
	gridCfg.Links = LinkGrid

	for seed := 0; seed < 5; seed++ {
		f := NewField(scanCfg, rand.New(rand.NewSource(int64(seed))))
		f.Repopulate(900+seed*50, 700)

		// Scatter some particles off the surface the way the pointer does
		ps := f.Particles()
		for i := 0; i < len(ps); i += 7 {
			ps[i].Pos.X -= 60
			ps[i].Pos.Y += float64(seed) * 40
		}

		scan := &recorder{width: 900 + seed*50, height: 700}
		grid := &recorder{width: 900 + seed*50, height: 700}
		NewLinker(scanCfg).LinkAll(scan, ps)
		NewLinker(gridCfg).LinkAll(grid, ps)

		if !reflect.DeepEqual(scan.calls, grid.calls) {
			t.Fatalf("seed %d: grid drew %d lines, scan drew %d", seed, len(grid.calls), len(scan.calls))
		}
	}
}
