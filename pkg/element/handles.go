package element

import (
	"runtime"
	"sync"
	"weak"

	"github.com/go-drift/eldom/pkg/dom"
)

// handleTable associates live instances with their handles without keeping
// the instances alive. Keys are weak pointers, and a runtime cleanup purges
// each entry once its instance is collected, so the association's lifetime is
// parasitic on the element's own.
type handleTable struct {
	mu      sync.Mutex
	entries map[weak.Pointer[dom.Element]]*Handle
}

func newHandleTable() *handleTable {
	return &handleTable{entries: make(map[weak.Pointer[dom.Element]]*Handle)}
}

// store records the handle for el. Called once per instance, at construction.
func (t *handleTable) store(el *dom.Element, h *Handle) {
	key := weak.Make(el)
	t.mu.Lock()
	t.entries[key] = h
	t.mu.Unlock()
	runtime.AddCleanup(el, t.purge, key)
}

// lookup returns el's handle, or nil if none was recorded.
func (t *handleTable) lookup(el *dom.Element) *Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries[weak.Make(el)]
}

// purge drops the entry for a collected instance.
func (t *handleTable) purge(key weak.Pointer[dom.Element]) {
	t.mu.Lock()
	delete(t.entries, key)
	t.mu.Unlock()
}

func (t *handleTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *handleTable) reset() {
	t.mu.Lock()
	t.entries = make(map[weak.Pointer[dom.Element]]*Handle)
	t.mu.Unlock()
}
