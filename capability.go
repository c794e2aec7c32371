package kozue

// The four capability contracts. A host object may implement any
// subset, for any number of distinct value types: a single type T works
// through the interfaces below directly, multiple types per object go
// through a Bindings registry (see Bound).

// Injector supplies a value of type T on demand. InjectValue is a pure
// read of the current value.
type Injector[T any] interface {
	InjectValue() T
}

// Injectable accepts and applies a value of type T. Inject is
// side-effecting by design.
type Injectable[T any] interface {
	Inject(value T)
}

// Interceptor rewrites a value of type T independently for each child
// before it travels further down. Intercept must be a pure transform;
// two children of the same node may receive different results. The
// intercepting node itself always receives the un-intercepted value.
type Interceptor[T any] interface {
	Intercept(child Node, value T) T
}

// Blocker vetoes propagation of type T into a child's entire subtree.
// ShouldBlock must be a pure predicate; returning true excludes the
// child and every node below it from the traversal.
type Blocker[T any] interface {
	ShouldBlock(child Node, value T) bool
}

// InjectorFunc adapts a function to an Injector.
type InjectorFunc[T any] func() T

// InjectValue implements Injector.
func (f InjectorFunc[T]) InjectValue() T { return f() }

// InjectableFunc adapts a function to an Injectable.
type InjectableFunc[T any] func(value T)

// Inject implements Injectable.
func (f InjectableFunc[T]) Inject(value T) { f(value) }

// InterceptorFunc adapts a function to an Interceptor.
type InterceptorFunc[T any] func(child Node, value T) T

// Intercept implements Interceptor.
func (f InterceptorFunc[T]) Intercept(child Node, value T) T { return f(child, value) }

// BlockerFunc adapts a function to a Blocker.
type BlockerFunc[T any] func(child Node, value T) bool

// ShouldBlock implements Blocker.
func (f BlockerFunc[T]) ShouldBlock(child Node, value T) bool { return f(child, value) }
