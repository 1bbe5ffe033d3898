package background

import "gonum.org/v1/gonum/spatial/r2"

// Linker draws lines between particles that are close to each other
type Linker struct {
	config Config
	grid   *Grid

	// candidate buffer reused across particles
	candidates []int
}

// NewLinker creates a linker using the strategy named in the config
func NewLinker(config Config) *Linker {
	l := &Linker{config: config}
	if config.Links == LinkGrid {
		l.grid = NewGrid(config.LinkDistance)
	}
	return l
}

// LinkAll walks pairs (i, j), i < j, and links those closer than the link
// distance, at most MaxLinks per lower index. Links whose opacity fades to
// zero still count toward the cap but are not drawn. It returns the number
// of lines drawn.
func (l *Linker) LinkAll(s Surface, particles []Particle) int {
	if l.grid != nil {
		width, height := s.Size()
		l.grid.Build(particles, width, height)
	}

	drawn := 0
	for i := range particles {
		links := 0
		for _, j := range l.partners(i, particles) {
			if links >= l.config.MaxLinks {
				break
			}

			distance := r2.Norm(r2.Sub(particles[i].Pos, particles[j].Pos))
			if distance >= l.config.LinkDistance {
				continue
			}
			links++

			alpha := l.config.LinkAlpha(distance)
			if alpha <= 0 {
				continue
			}
			a, b := particles[i].Pos, particles[j].Pos
			s.StrokeLine(a.X, a.Y, b.X, b.Y, l.config.LinkWidth, l.config.AccentAlpha(alpha))
			drawn++
		}
	}
	return drawn
}

// partners returns the candidate indices above i in ascending order
func (l *Linker) partners(i int, particles []Particle) []int {
	l.candidates = l.candidates[:0]
	if l.grid != nil {
		l.candidates = l.grid.Neighbours(i, particles[i].Pos, l.candidates)
		return l.candidates
	}
	for j := i + 1; j < len(particles); j++ {
		l.candidates = append(l.candidates, j)
	}
	return l.candidates
}
