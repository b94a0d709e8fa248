package domain

// CursorStatus is the pointer interaction reported on the "cursor" channel.
type CursorStatus string

const (
	CursorEnable    CursorStatus = "enable"
	CursorMove      CursorStatus = "move"
	CursorDisable   CursorStatus = "disable"
	CursorLeave     CursorStatus = "leave"
	CursorMouseover CursorStatus = "mouseover"
)

// Known reports whether s is one of the statuses the engine emits.
func (s CursorStatus) Known() bool {
	switch s {
	case CursorEnable, CursorMove, CursorDisable, CursorLeave, CursorMouseover:
		return true
	}
	return false
}

// Point is a pointer position in client coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// CursorEvent is the payload of the "cursor" channel.
type CursorEvent struct {
	Status         CursorStatus `json:"status"`
	CursorPosition Point        `json:"cursorPosition"`
}

// BoundingBox is the on-screen extent of an element.
type BoundingBox struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right &&
		p.Y >= b.Top && p.Y <= b.Bottom
}
