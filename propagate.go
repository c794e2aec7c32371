package kozue

import (
	"fmt"

	"github.com/mazrean/kozue/internal/pkg/collection"
)

// pending is one work-list entry of the push traversal: a node together
// with the value it received from its parent.
type pending[T any] struct {
	node   Node
	value  T
	origin bool
}

// Propagate pushes value down the subtree rooted at origin.
//
// Each visited descendant whose object is Injectable[T] receives
// exactly one Inject call with the value its parent addressed to it.
// A Blocker on a non-origin node excludes vetoed children and their
// entire subtrees; an Interceptor rewrites the value per child before
// it travels further. The origin itself is never injected and its
// Blocker is never consulted: it already holds the value and must not
// veto its own broadcast. Its Interceptor, like every other node's, is
// applied to the values handed to its children.
//
// The walk is depth-first in child order and runs on an explicit
// work-list, so tree depth never translates into call-stack depth. It
// still only terminates if the host tree is acyclic.
func Propagate[T any](origin Node, value T, opts ...Option) {
	o := buildOptions(opts)
	if o.log != nil {
		o.log(fmt.Sprintf("kozue: propagate %v (%s) from %q", value, typeKey[T](), origin.Name()))
	}

	work := collection.NewStack[pending[T]]()
	work.Push(pending[T]{node: origin, value: value, origin: true})

	for work.Len() > 0 {
		item := work.Pop()
		obj := item.node.Object()

		var (
			blocker    Blocker[T]
			hasBlocker bool
		)
		if !item.origin {
			blocker, hasBlocker = blockerOf[T](obj)
		}
		interceptor, hasInterceptor := interceptorOf[T](obj)

		// Blocking is decided before interception: a vetoed child is
		// never intercepted and never visited, at any depth.
		children := item.node.Children()
		retained := make([]pending[T], 0, len(children))
		for _, child := range children {
			if hasBlocker && blocker.ShouldBlock(child, item.value) {
				continue
			}

			childValue := item.value
			if hasInterceptor {
				childValue = interceptor.Intercept(child, item.value)
			}

			retained = append(retained, pending[T]{node: child, value: childValue})
		}

		// The node's own injection uses the un-intercepted value it was
		// handed by its parent.
		if !item.origin {
			if injectable, ok := injectableOf[T](obj); ok {
				injectable.Inject(item.value)
			}
		}

		// Reverse push keeps delivery depth-first in child order.
		for i := len(retained) - 1; i >= 0; i-- {
			work.Push(retained[i])
		}
	}
}
