package kozue

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrDuplicateBinding is reported when a second capability of the same
// role is bound for the same value type on one Bindings registry.
var ErrDuplicateBinding = errors.New("kozue: duplicate binding")

// DuplicateBindingError carries the role and value type of a rejected
// binding. It matches ErrDuplicateBinding under errors.Is.
type DuplicateBindingError struct {
	Type reflect.Type
	Role Role
}

// Error implements the error interface.
func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("kozue: duplicate %s binding for %s", e.Role, e.Type)
}

// Is reports whether target is ErrDuplicateBinding.
func (e *DuplicateBindingError) Is(target error) bool {
	return target == ErrDuplicateBinding
}

// Role names one of the four capability contracts inside a Bindings
// registry.
type Role string

const (
	RoleInjector    Role = "injector"
	RoleInjectable  Role = "injectable"
	RoleInterceptor Role = "interceptor"
	RoleBlocker     Role = "blocker"
)

type bindingKey struct {
	typ  reflect.Type
	role Role
}

// Bindings is a per-object capability registry keyed by value type. It
// lets one host object carry capabilities for any number of distinct
// value types, which Go method sets alone cannot express (two
// Injector instantiations would collide on the InjectValue name).
//
// Bindings are expected to be built once, at host object construction
// time, and are not safe for concurrent mutation.
type Bindings struct {
	entries map[bindingKey]any
}

// NewBindings creates an empty registry.
func NewBindings() *Bindings {
	return &Bindings{
		entries: make(map[bindingKey]any),
	}
}

func (b *Bindings) add(r Role, t reflect.Type, impl any) error {
	key := bindingKey{typ: t, role: r}
	if _, ok := b.entries[key]; ok {
		return &DuplicateBindingError{Role: r, Type: t}
	}

	b.entries[key] = impl
	return nil
}

func (b *Bindings) lookup(r Role, t reflect.Type) (any, bool) {
	if b == nil {
		return nil, false
	}

	impl, ok := b.entries[bindingKey{typ: t, role: r}]
	return impl, ok
}

// Summary returns a sorted human-readable list of the bound roles, one
// "role[type]" entry per binding. Diagnostic use only.
func (b *Bindings) Summary() []string {
	if b == nil {
		return nil
	}

	entries := make([]string, 0, len(b.entries))
	for key := range b.entries {
		entries = append(entries, fmt.Sprintf("%s[%s]", key.role, key.typ))
	}
	slices.Sort(entries)

	return entries
}

// Bound is implemented by host objects that expose their capabilities
// through a Bindings registry instead of, or in addition to, the
// capability interfaces. The kozue generator emits Bindings methods
// for types with //kozue:provide markers.
type Bound interface {
	Bindings() *Bindings
}

// typeKey returns the identity token for T. reflect.Type values are
// stable, comparable and hashable, which is all the registry needs.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// BindInjector registers fn as the Injector for T. At most one
// injector per value type may exist on a registry; a duplicate is
// rejected here, at registration time, rather than discovered during a
// later traversal.
func BindInjector[T any](b *Bindings, fn func() T) error {
	return b.add(RoleInjector, typeKey[T](), InjectorFunc[T](fn))
}

// MustBindInjector is BindInjector panicking on a duplicate. It is
// intended for generated code, where the generator has already
// rejected duplicate providers at build time.
func MustBindInjector[T any](b *Bindings, fn func() T) {
	if err := BindInjector(b, fn); err != nil {
		panic(err)
	}
}

// BindInjectable registers fn as the Injectable for T.
func BindInjectable[T any](b *Bindings, fn func(value T)) error {
	return b.add(RoleInjectable, typeKey[T](), InjectableFunc[T](fn))
}

// BindInterceptor registers fn as the Interceptor for T.
func BindInterceptor[T any](b *Bindings, fn func(child Node, value T) T) error {
	return b.add(RoleInterceptor, typeKey[T](), InterceptorFunc[T](fn))
}

// BindBlocker registers fn as the Blocker for T.
func BindBlocker[T any](b *Bindings, fn func(child Node, value T) bool) error {
	return b.add(RoleBlocker, typeKey[T](), BlockerFunc[T](fn))
}
