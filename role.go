package kozue

// Capability discovery is a two-step check: a direct type assertion
// covers objects whose method set implements the role for a single
// value type, and the Bindings registry covers objects bound for many
// types. Both engines go through these helpers so the two forms stay
// interchangeable.

func injectorOf[T any](obj any) (Injector[T], bool) {
	if in, ok := obj.(Injector[T]); ok {
		return in, true
	}

	if bound, ok := obj.(Bound); ok {
		if impl, ok := bound.Bindings().lookup(RoleInjector, typeKey[T]()); ok {
			return impl.(Injector[T]), true
		}
	}

	return nil, false
}

func injectableOf[T any](obj any) (Injectable[T], bool) {
	if in, ok := obj.(Injectable[T]); ok {
		return in, true
	}

	if bound, ok := obj.(Bound); ok {
		if impl, ok := bound.Bindings().lookup(RoleInjectable, typeKey[T]()); ok {
			return impl.(Injectable[T]), true
		}
	}

	return nil, false
}

func interceptorOf[T any](obj any) (Interceptor[T], bool) {
	if in, ok := obj.(Interceptor[T]); ok {
		return in, true
	}

	if bound, ok := obj.(Bound); ok {
		if impl, ok := bound.Bindings().lookup(RoleInterceptor, typeKey[T]()); ok {
			return impl.(Interceptor[T]), true
		}
	}

	return nil, false
}

func blockerOf[T any](obj any) (Blocker[T], bool) {
	if in, ok := obj.(Blocker[T]); ok {
		return in, true
	}

	if bound, ok := obj.(Bound); ok {
		if impl, ok := bound.Bindings().lookup(RoleBlocker, typeKey[T]()); ok {
			return impl.(Blocker[T]), true
		}
	}

	return nil, false
}
