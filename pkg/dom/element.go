package dom

import (
	"fmt"
	"time"

	"github.com/go-drift/eldom/pkg/errors"
)

var (
	// ErrHierarchy indicates a tree mutation that would create a cycle.
	ErrHierarchy = fmt.Errorf("element cannot be inserted into its own subtree")
	// ErrNotChild indicates a removal of an element that is not a child.
	ErrNotChild = fmt.Errorf("element is not a child of this parent")
	// ErrNilElement indicates a nil element argument.
	ErrNilElement = fmt.Errorf("element is nil")
)

// Element is one node of a document tree. Elements are created unattached and
// become connected when inserted under a connected ancestor (ultimately a
// Document root).
type Element struct {
	tag       string
	parent    *Element
	children  []*Element
	attrs     map[string]string
	connected bool
	def       *Definition
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Parent returns the element's parent, or nil if it is detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the element's child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// IsConnected reports whether the element is part of a connected tree.
// Application code can read this from inside its own callbacks, for example
// to decide whether a timer should be restarted.
func (e *Element) IsConnected() bool {
	return e.connected
}

// SetAttribute sets a string attribute on the element.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attribute returns the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AttributeNames returns the names of all set attributes, in unspecified order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	return names
}

// AppendChild inserts child as the last child of e. If child already has a
// parent it is first removed from it, firing Disconnected callbacks when the
// old tree was connected. If e is connected, Connected callbacks fire for
// child and its whole subtree in tree order.
func (e *Element) AppendChild(child *Element) error {
	return e.insert(child, len(e.children))
}

// InsertBefore inserts child immediately before ref among e's children.
// A nil ref appends.
func (e *Element) InsertBefore(child, ref *Element) error {
	if ref == nil {
		return e.insert(child, len(e.children))
	}
	idx := e.childIndex(ref)
	if idx < 0 {
		return fmt.Errorf("%w: reference %s", ErrNotChild, ref.tag)
	}
	return e.insert(child, idx)
}

func (e *Element) insert(child *Element, index int) error {
	if child == nil {
		return ErrNilElement
	}
	if child == e || child.contains(e) {
		return ErrHierarchy
	}
	if child.parent == e {
		// Reinsertion under the same parent still detaches first, so a
		// connected child sees a disconnect/connect pair, as a real move does.
		if old := e.childIndex(child); old >= 0 && old < index {
			index--
		}
	}
	child.detach()
	child.parent = e
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	if e.connected {
		child.markConnected()
	}
	return nil
}

// RemoveChild removes child from e, firing Disconnected callbacks for the
// removed subtree when e is connected.
func (e *Element) RemoveChild(child *Element) error {
	if child == nil {
		return ErrNilElement
	}
	if child.parent != e {
		return fmt.Errorf("%w: %s", ErrNotChild, child.tag)
	}
	child.detach()
	return nil
}

// contains reports whether other is e or a descendant of e.
func (e *Element) contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

func (e *Element) childIndex(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// detach unlinks e from its parent, firing Disconnected callbacks if the
// element was connected.
func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	if idx := p.childIndex(e); idx >= 0 {
		p.children = append(p.children[:idx], p.children[idx+1:]...)
	}
	e.parent = nil
	if e.connected {
		e.markDisconnected()
	}
}

// markConnected flags the subtree rooted at e as connected and fires
// Connected callbacks in tree order.
func (e *Element) markConnected() {
	e.connected = true
	if e.def != nil && e.def.Connected != nil {
		invokeLifecycle("dom.connectedCallback", e, e.def.Connected)
	}
	for _, c := range e.children {
		c.markConnected()
	}
}

// markDisconnected flags the subtree rooted at e as disconnected and fires
// Disconnected callbacks in tree order.
func (e *Element) markDisconnected() {
	e.connected = false
	if e.def != nil && e.def.Disconnected != nil {
		invokeLifecycle("dom.disconnectedCallback", e, e.def.Disconnected)
	}
	for _, c := range e.children {
		c.markDisconnected()
	}
}

// invokeLifecycle runs a lifecycle callback. A panic in the callback is
// reported through the global error handler and does not abort the tree
// mutation in progress; this is the host's callback-invocation contract.
func invokeLifecycle(op string, e *Element, fn func(*Element)) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         op,
				Value:      r,
				Tag:        e.tag,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	fn(e)
}
