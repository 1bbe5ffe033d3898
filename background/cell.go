package background

// Cell is one bucket of the link grid holding particle indices
type Cell struct {
	// Indices in this cell (preallocated slice), ascending as inserted
	Indices []int

	// Current count of indices in use
	Count int
}

// NewCell creates a new cell with preallocated index storage
func NewCell(initialCapacity int) *Cell {
	return &Cell{
		Indices: make([]int, 0, initialCapacity),
		Count:   0,
	}
}

// Add appends a particle index to this cell
func (c *Cell) Add(index int) {
	if c.Count < len(c.Indices) {
		c.Indices[c.Count] = index
	} else {
		c.Indices = append(c.Indices, index)
	}
	c.Count++
}

// Get returns the indices currently in this cell
func (c *Cell) Get() []int {
	return c.Indices[:c.Count]
}

// Clear empties the cell but keeps its capacity
func (c *Cell) Clear() {
	c.Count = 0
}
