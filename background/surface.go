package background

import "image/color"

// Surface is the 2D drawing target the background paints on
type Surface interface {
	// Size returns the surface dimensions in drawing units
	Size() (width, height int)

	// Resize sets the surface dimensions
	Resize(width, height int)

	// Clear erases the whole surface
	Clear()

	// SetShadow sets the glow applied to subsequent fills. A blur of 0 disables it.
	SetShadow(blur float64, clr color.Color)

	// FillCircle paints a filled circle
	FillCircle(x, y, radius float64, clr color.Color)

	// StrokeLine paints a straight line of the given width
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Container reports the size of the area the surface should cover
type Container interface {
	// ContentBox returns the content size, or ok=false if the container is not available
	ContentBox() (width, height int, ok bool)
}

// Manager keeps the surface sized to its container and the field populated for it
type Manager struct {
	surface   Surface
	container Container
	field     *Field
}

// NewManager creates a surface manager
func NewManager(surface Surface, container Container, field *Field) *Manager {
	return &Manager{
		surface:   surface,
		container: container,
		field:     field,
	}
}

// OnResize matches the surface to the container and repopulates the field.
// It does nothing when the container is not available.
func (m *Manager) OnResize() {
	if m.container == nil {
		return
	}
	width, height, ok := m.container.ContentBox()
	if !ok {
		return
	}

	if m.surface != nil {
		m.surface.Resize(width, height)
	}
	m.field.Repopulate(width, height)
}

// Width returns the current surface width
func (m *Manager) Width() int {
	w, _ := m.size()
	return w
}

// Height returns the current surface height
func (m *Manager) Height() int {
	_, h := m.size()
	return h
}

func (m *Manager) size() (int, int) {
	if m.surface == nil {
		return m.field.Bounds()
	}
	return m.surface.Size()
}
