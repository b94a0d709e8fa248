package memory

import (
	"slices"
	"sync"

	"github.com/aretw0/molcanvas/pkg/domain"
)

// Element implements ports.Element in memory.
// Safe for concurrent use.
type Element struct {
	mu      sync.RWMutex
	box     domain.BoundingBox
	classes []string
	text    string
}

// NewElement creates an element with the given extent.
func NewElement(box domain.BoundingBox) *Element {
	return &Element{box: box}
}

// BoundingBox returns the current extent.
func (e *Element) BoundingBox() domain.BoundingBox {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.box
}

// SetBoundingBox moves or resizes the element.
func (e *Element) SetBoundingBox(box domain.BoundingBox) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.box = box
}

// AddClass adds a class name; adding a present name is a no-op.
func (e *Element) AddClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !slices.Contains(e.classes, name) {
		e.classes = append(e.classes, name)
	}
}

// RemoveClass removes a class name if present.
func (e *Element) RemoveClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := slices.Index(e.classes, name); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// HasClass reports whether the class name is present.
func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Contains(e.classes, name)
}

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.classes)
}

// SetText replaces the text content.
func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

// Text returns the text content.
func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}
