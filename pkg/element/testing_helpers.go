package element

import "github.com/go-drift/eldom/pkg/dom"

// SetupTestHost installs a fresh in-memory registry as the host and returns
// it. The cleanup function should be testing.T.Cleanup or equivalent; it
// registers a teardown that calls ResetForTest.
//
//	registry := element.SetupTestHost(t.Cleanup)
func SetupTestHost(cleanup func(func())) *dom.Registry {
	registry := dom.NewRegistry()
	SetHost(registry)
	cleanup(ResetForTest)
	return registry
}
