package kozue

import "fmt"

// provision is the explicit outcome of an ancestor search. Carrying the
// provider and the found flag separately keeps a legitimately zero
// provided value distinguishable from "no provider found".
type provision[T any] struct {
	provider Node
	value    T
}

// Request climbs the ancestors of requester looking for a provider of
// T and, when one is found, propagates the provided value from that
// ancestor over its entire subtree, not only along the path back to
// requester.
//
// It fails immediately, returning false, when requester is the root or
// when requester's parent is not Ready: a not-ready ancestor is
// expected to push its values itself once ready, so no injector is
// consulted. With WithAncestorFallback, an ancestor object that is
// itself usable as a T satisfies the search when no Injector[T] does.
//
// A true result certifies only that a provider was located and a
// broadcast pass ran from it. It does not certify that requester
// itself received the value: a Blocker between the provider and
// requester can exclude requester's branch.
func Request[T any](requester Node, opts ...Option) bool {
	o := buildOptions(opts)

	parent := requester.Parent()
	if parent == nil {
		return false
	}
	if !parent.Ready() {
		return false
	}

	found, ok := findProvider[T](parent, o)
	if !ok {
		return false
	}

	if o.log != nil {
		o.log(fmt.Sprintf("kozue: found %s at %q, redistributing", typeKey[T](), found.provider.Name()))
	}

	Propagate(found.provider, found.value, opts...)
	return true
}

// findProvider walks from start to the root. An Injector[T] capability
// wins over the ancestor-as-value fallback on the same node.
func findProvider[T any](start Node, o options) (provision[T], bool) {
	for current := start; current != nil; current = current.Parent() {
		if o.log != nil {
			o.log(fmt.Sprintf("kozue: searching %q for %s", current.Name(), typeKey[T]()))
		}

		if injector, ok := injectorOf[T](current.Object()); ok {
			return provision[T]{provider: current, value: injector.InjectValue()}, true
		}

		if o.ancestorFallback {
			if value, ok := current.Object().(T); ok {
				return provision[T]{provider: current, value: value}, true
			}
		}
	}

	var none provision[T]
	return none, false
}
