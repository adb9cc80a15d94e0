// Package element defines custom element types from plain functions.
//
// Instead of implementing a definition type per tag, application code calls
// Define with a tag name and an initializer. Define binds the tag to the
// host platform once (repeat calls are no-ops) and returns a make function:
//
//	makeCounter, err := element.Define("x-counter", func(el *dom.Element, params any) *element.Handle {
//	    count := 0
//	    return &element.Handle{
//	        Connect: func() { count++ },
//	    }
//	})
//	el, err := makeCounter(nil)
//
// The initializer runs exactly once per instance, synchronously, before make
// returns. Its returned Handle is associated with the instance for the
// instance's whole lifetime: the host's connected/disconnected callbacks
// delegate to Handle.Connect and Handle.Disconnect whenever the instance
// enters or leaves a document. Returning nil, or a Handle with nil fields,
// simply opts out of the corresponding notification.
//
// The handle association is weak: it never keeps an instance alive, and it
// is discarded automatically once the instance is collected.
//
// A host must be installed with SetHost before Define is called. *dom.Registry
// satisfies Host directly:
//
//	registry := dom.NewRegistry()
//	element.SetHost(registry)
package element
