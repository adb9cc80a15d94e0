// Package dom implements the host document model that backs eldom elements.
//
// The package provides three pieces: a Registry that binds tag names to
// lifecycle definitions, an Element node type forming a document tree, and a
// Document whose subtree is the connected tree. Inserting an element under a
// connected parent fires its definition's Connected callback in tree order;
// removing it fires Disconnected. The registry is the single name-based
// extension point: a tag can be bound at most once, and a duplicate binding
// is an error, matching the native custom-element contract.
//
// Lifecycle callbacks run synchronously on the caller's goroutine. A panic
// inside a callback is recovered, reported through the errors package, and
// does not abort the tree mutation that triggered it.
package dom
