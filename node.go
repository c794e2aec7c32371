// Package kozue propagates typed values through a tree of host objects.
//
// An ancestor that exposes a value of some type T pushes it to its
// descendants with Propagate; a descendant that needs a T pulls it from
// its ancestors with Request. Host objects take part by implementing
// capability interfaces (Injector, Injectable, Interceptor, Blocker)
// for the value types they care about, either directly or through a
// Bindings registry emitted by the kozue code generator.
package kozue

// Node is the core's view of one position in the host tree. The host
// application owns the tree; kozue only reads it while a propagation or
// request pass is running and never caches parents or children.
//
// The tree reachable through Parent and Children must be acyclic and
// finite whenever a traversal starts. kozue performs no cycle
// detection.
type Node interface {
	// Name returns a diagnostic label for the node.
	Name() string

	// Parent returns the parent node, or nil for the root.
	Parent() Node

	// Children returns the ordered child nodes. The slice is read at
	// traversal time and must not be mutated while a traversal is in
	// flight.
	Children() []Node

	// Ready reports whether the node may currently serve as a request
	// target. A node whose parent is not ready fails Request
	// immediately: a not-ready ancestor is expected to push its values
	// itself once it becomes ready.
	Ready() bool

	// Object returns the underlying host object the node wraps. The
	// node never owns the object.
	Object() any
}
