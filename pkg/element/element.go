package element

import (
	"fmt"
	"sync"

	"github.com/go-drift/eldom/pkg/dom"
)

// Handle is the record of lifecycle callbacks an initializer may return.
// Both fields are optional; a nil field skips that notification.
type Handle struct {
	// Connect is invoked, with no arguments, each time the instance enters a
	// connected tree.
	Connect func()
	// Disconnect is invoked, with no arguments, each time the instance leaves
	// a connected tree.
	Disconnect func()
}

// Initializer prepares one freshly constructed instance. It runs exactly
// once per instance, synchronously, before the instance is returned from
// make. params is the value passed to make, forwarded verbatim.
type Initializer func(el *dom.Element, params any) *Handle

// Make constructs instances of the tag it was defined for.
type Make func(params any) (*dom.Element, error)

// Host is the platform boundary: tag registration and element construction.
// *dom.Registry satisfies it.
type Host interface {
	// RegisterTag binds a tag to lifecycle callbacks. Binding the same tag
	// twice is a host-level failure; Define avoids it with its own registry.
	RegisterTag(tag string, def dom.Definition) error
	// NewElement constructs a new, unattached instance of the tag.
	NewElement(tag string) (*dom.Element, error)
}

var (
	// ErrHostUnavailable is returned when no host platform is configured.
	ErrHostUnavailable = fmt.Errorf("element: no host platform configured")
	// ErrNilInitializer is returned by Define for a nil initializer.
	ErrNilInitializer = fmt.Errorf("element: initializer must not be nil")
)

var (
	hostMu sync.RWMutex
	host   Host

	// definedTags tracks tags already bound to the host, so Define stays
	// idempotent per tag for the process lifetime.
	definedMu   sync.Mutex
	definedTags = make(map[string]struct{})

	// handles maps live instances to their initializer-returned handles.
	handles = newHandleTable()
)

// SetHost installs the host platform used by Define and the make functions
// it returns. Called once during application startup.
func SetHost(h Host) {
	hostMu.Lock()
	host = h
	hostMu.Unlock()
}

func currentHost() Host {
	hostMu.RLock()
	defer hostMu.RUnlock()
	return host
}

// Define binds tag to the host platform (at most once per process) and
// returns a make function that constructs instances of tag, running init
// exactly once per instance.
//
// The first Define for a tag installs connected/disconnected callbacks that
// look up the instance's Handle and conditionally invoke Connect or
// Disconnect; a missing handle or callback is silently skipped. Later Define
// calls for the same tag skip host registration entirely, but each returned
// make still runs its own initializer.
//
// A host-level registration failure (for example an invalid tag name)
// propagates unchanged as the returned error.
func Define(tag string, init Initializer) (Make, error) {
	if init == nil {
		return nil, ErrNilInitializer
	}
	h := currentHost()
	if h == nil {
		return nil, ErrHostUnavailable
	}

	definedMu.Lock()
	if _, bound := definedTags[tag]; !bound {
		err := h.RegisterTag(tag, dom.Definition{
			Connected: func(el *dom.Element) {
				if hd := handles.lookup(el); hd != nil && hd.Connect != nil {
					hd.Connect()
				}
			},
			Disconnected: func(el *dom.Element) {
				if hd := handles.lookup(el); hd != nil && hd.Disconnect != nil {
					hd.Disconnect()
				}
			},
		})
		if err != nil {
			definedMu.Unlock()
			return nil, err
		}
		definedTags[tag] = struct{}{}
	}
	definedMu.Unlock()

	return func(params any) (*dom.Element, error) {
		h := currentHost()
		if h == nil {
			return nil, ErrHostUnavailable
		}
		el, err := h.NewElement(tag)
		if err != nil {
			return nil, err
		}
		// The initializer runs before the caller sees the instance, so the
		// handle is in place before any possible attach. A panic here
		// propagates and leaves no handle entry behind.
		if hd := init(el, params); hd != nil {
			handles.store(el, hd)
		}
		return el, nil
	}, nil
}

// ResetForTest clears the host, the defined-tag set, and the handle table so
// the package behaves as if freshly initialized. This should only be called
// from tests.
func ResetForTest() {
	SetHost(nil)
	definedMu.Lock()
	definedTags = make(map[string]struct{})
	definedMu.Unlock()
	handles.reset()
}
