package dom

import (
	"fmt"
	"sync"
)

// ErrTagDefined indicates an attempt to bind a tag name twice.
var ErrTagDefined = fmt.Errorf("tag already defined")

// Definition holds the lifecycle callbacks bound to a custom tag.
// Either callback may be nil.
type Definition struct {
	// Connected is invoked when an element of this tag enters a connected tree.
	Connected func(*Element)
	// Disconnected is invoked when an element of this tag leaves a connected tree.
	Disconnected func(*Element)
}

// Registry binds tag names to element definitions. It is the host-side
// extension mechanism: each tag name can be bound at most once per registry.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// RegisterTag binds tag to def. It fails with ErrInvalidTagName if tag is not
// a valid custom tag name, and with ErrTagDefined if tag is already bound.
func (r *Registry) RegisterTag(tag string, def Definition) error {
	if err := ValidateCustomTagName(tag); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[tag]; ok {
		return fmt.Errorf("%w: %s", ErrTagDefined, tag)
	}
	d := def
	r.defs[tag] = &d
	return nil
}

// NewElement constructs a new, unattached element of the given tag. If the
// tag has a registered definition it is bound to the element at creation;
// unknown tags produce a plain element with no lifecycle callbacks.
func (r *Registry) NewElement(tag string) (*Element, error) {
	if err := ValidateTagName(tag); err != nil {
		return nil, err
	}
	r.mu.RLock()
	def := r.defs[tag]
	r.mu.RUnlock()
	return &Element{tag: tag, def: def}, nil
}

// Defined reports whether tag is bound in this registry.
func (r *Registry) Defined(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[tag]
	return ok
}
