package wizard

// Cell is the visual element for one step.
type Cell interface {
	SetZIndex(z int)
	AddClass(name string)
	RemoveClass(name string)
}

// Mount is the component-scoped handle holding one Cell per step index.
type Mount interface {
	Len() int
	Cell(i int) Cell
}

// StepCell is the in-memory Cell used by Strip.
type StepCell struct {
	Z       int
	classes map[string]bool
}

func (c *StepCell) SetZIndex(z int) { c.Z = z }

func (c *StepCell) AddClass(name string) {
	if c.classes == nil {
		c.classes = make(map[string]bool)
	}
	c.classes[name] = true
}

func (c *StepCell) RemoveClass(name string) { delete(c.classes, name) }

func (c *StepCell) HasClass(name string) bool { return c.classes[name] }

// Strip is a row of StepCells.
type Strip struct {
	cells []*StepCell
}

func NewStrip(n int) *Strip {
	cells := make([]*StepCell, n)
	for i := range cells {
		cells[i] = &StepCell{}
	}
	return &Strip{cells: cells}
}

func (s *Strip) Len() int { return len(s.cells) }

func (s *Strip) Cell(i int) Cell { return s.cells[i] }

// Step returns the concrete cell at i.
func (s *Strip) Step(i int) *StepCell { return s.cells[i] }
