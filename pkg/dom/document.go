package dom

// Document owns a connected tree. Elements appended under its root (directly
// or transitively) are connected and receive lifecycle callbacks.
type Document struct {
	registry *Registry
	root     *Element
}

// NewDocument returns a document backed by the given registry.
func NewDocument(registry *Registry) *Document {
	return &Document{
		registry: registry,
		root:     &Element{tag: "#document", connected: true},
	}
}

// Root returns the document's root element. The root is always connected.
func (d *Document) Root() *Element {
	return d.root
}

// Registry returns the registry the document was created with.
func (d *Document) Registry() *Registry {
	return d.registry
}

// CreateElement constructs a new, unattached element via the document's
// registry.
func (d *Document) CreateElement(tag string) (*Element, error) {
	return d.registry.NewElement(tag)
}
