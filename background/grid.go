package background

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Grid buckets particles over the surface so near pairs can be found
// without comparing every pair
type Grid struct {
	// CellSize is the edge length of a cell in surface units
	CellSize float64

	// Preallocated 2D grid of cells, indexed [x][y]
	Cells [][]*Cell

	cols, rows int
}

// NewGrid creates an empty grid with the given cell size
func NewGrid(cellSize float64) *Grid {
	return &Grid{CellSize: cellSize}
}

// Build assigns every particle to a cell covering a width x height surface.
// Particles pushed outside the surface are clamped to the edge cells.
func (g *Grid) Build(particles []Particle, width, height int) {
	cols := max(1, int(float64(width)/g.CellSize)+1)
	rows := max(1, int(float64(height)/g.CellSize)+1)
	if cols != g.cols || rows != g.rows {
		g.allocate(cols, rows)
	} else {
		for x := range g.Cells {
			for _, cell := range g.Cells[x] {
				cell.Clear()
			}
		}
	}

	for i := range particles {
		cx, cy := g.CellOf(particles[i].Pos)
		g.Cells[cx][cy].Add(i)
	}
}

func (g *Grid) allocate(cols, rows int) {
	g.cols = cols
	g.rows = rows
	g.Cells = make([][]*Cell, cols)
	for x := 0; x < cols; x++ {
		g.Cells[x] = make([]*Cell, rows)
		for y := 0; y < rows; y++ {
			g.Cells[x][y] = NewCell(8)
		}
	}
}

// CellOf converts a position to cell coordinates
func (g *Grid) CellOf(p r2.Vec) (int, int) {
	cellX := int(p.X / g.CellSize)
	cellY := int(p.Y / g.CellSize)
	if p.X < 0 {
		cellX = 0
	}
	if p.Y < 0 {
		cellY = 0
	}

	// Clamp to valid cell range
	cellX = min(cellX, g.cols-1)
	cellY = min(cellY, g.rows-1)

	return cellX, cellY
}

// Neighbours appends to dst the indices above i found in the 3x3 block of
// cells around p, in ascending order
func (g *Grid) Neighbours(i int, p r2.Vec, dst []int) []int {
	centerX, centerY := g.CellOf(p)
	start := len(dst)

	for x := max(0, centerX-1); x <= min(g.cols-1, centerX+1); x++ {
		for y := max(0, centerY-1); y <= min(g.rows-1, centerY+1); y++ {
			for _, j := range g.Cells[x][y].Get() {
				if j > i {
					dst = append(dst, j)
				}
			}
		}
	}

	slices.Sort(dst[start:])
	return dst
}
