package tools

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyID is returned when registering a descriptor without an id.
	ErrEmptyID = errors.New("tool id is empty")

	// ErrDuplicateID is returned when an id is registered twice.
	ErrDuplicateID = errors.New("duplicate tool id")
)

// Source supplies an unordered collection of descriptors.
type Source interface {
	Descriptors() []Descriptor
}

// Registry holds descriptors in registration order.
// It is not safe for concurrent registration.
type Registry struct {
	ordered []Descriptor
	byID    map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Descriptor)}
}

// Register adds a descriptor to the registry.
func (r *Registry) Register(d Descriptor) error {
	id := d.ID()
	if id == "" {
		return ErrEmptyID
	}
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	r.byID[id] = d
	r.ordered = append(r.ordered, d)
	return nil
}

// All returns every descriptor in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Descriptors implements Source.
func (r *Registry) Descriptors() []Descriptor {
	return r.All()
}

// Get returns the descriptor with the given id, or nil if not found.
func (r *Registry) Get(id string) Descriptor {
	return r.byID[id]
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.ordered)
}
