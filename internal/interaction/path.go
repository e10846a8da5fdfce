package interaction

import "github.com/ayusman/mudra/internal/geom"

// Op is the kind of a path element.
type Op int

const (
	// MoveTo starts a new disjoint segment at a point.
	MoveTo Op = iota
	// LineTo extends the current segment with a straight line.
	LineTo
)

// Element is one step of a path.
type Element struct {
	Op    Op         `json:"op"`
	Point geom.Point `json:"point"`
}

// Path is an append-only sequence of MoveTo/LineTo elements. Within a
// stroke the path only grows; elements are never rewritten or removed,
// so segments from earlier strokes stay intact as new ones accumulate.
type Path struct {
	elements []Element
}

// MoveTo appends the start of a new segment.
func (p *Path) MoveTo(pt geom.Point) {
	p.elements = append(p.elements, Element{Op: MoveTo, Point: pt})
}

// LineTo appends a line to the current segment.
func (p *Path) LineTo(pt geom.Point) {
	p.elements = append(p.elements, Element{Op: LineTo, Point: pt})
}

// Elements returns a copy of the path's elements in append order.
func (p *Path) Elements() []Element {
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}
