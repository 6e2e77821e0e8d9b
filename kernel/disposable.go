package kernel

import (
	"io"
	"reflect"
)

// Disposable is implemented by specimens that hold a resource requiring
// explicit release.
type Disposable interface {
	Dispose()
}

type releaseKind uint8

const (
	kindDisposable releaseKind = iota + 1
	kindCloser
)

// resource is a specimen that carries a release capability.
type resource struct {
	value any
	kind  releaseKind
}

// asResource detects the release capability of v.
//
// Disposable wins over io.Closer when a value implements both.
func asResource(v any) (resource, bool) {
	switch r := v.(type) {
	case Disposable:
		return resource{value: r, kind: kindDisposable}, true
	case io.Closer:
		return resource{value: r, kind: kindCloser}, true
	default:
		return resource{}, false
	}
}

// release invokes the resource's release operation. Panics raised by Dispose
// or Close are reported as ReleasePanicError.
func (r resource) release() (err error) {
	method := "Dispose"
	if r.kind == kindCloser {
		method = "Close"
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = ReleasePanicError{Method: method, Value: rec}
		}
	}()

	switch r.kind {
	case kindCloser:
		return r.value.(io.Closer).Close()
	case kindDisposable:
		r.value.(Disposable).Dispose()
	}
	return nil
}

// identity is the key used to suppress duplicates.
type identity struct {
	typ  reflect.Type
	ptr  uintptr
	val  any
	addr bool
}

// identityOf returns the identity key of v. ok is false for values that have
// no usable identity (slices, funcs and other non-comparable values); those
// are tracked without duplicate suppression. A slice's data pointer is shared
// by every reslice of the same array, so it cannot identify an instance.
func identityOf(v any) (key identity, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return identity{typ: rv.Type(), ptr: rv.Pointer(), addr: true}, true
	}
	if !rv.Comparable() {
		return identity{}, false
	}
	return identity{typ: rv.Type(), val: v}, true
}
