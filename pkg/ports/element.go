package ports

import "github.com/aretw0/molcanvas/pkg/domain"

// Element is the host-side element the engine and its overlays live in.
type Element interface {
	// BoundingBox reads the element's current on-screen extent.
	// Callers read it at event time; it must not be cached.
	BoundingBox() domain.BoundingBox

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	SetText(text string)
	Text() string
}
