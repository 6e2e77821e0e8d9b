package kernel

import (
	"fmt"
	"reflect"
)

// MapBuilder is a simple in-memory SpecimenBuilder.
//
// It answers a request with the specimen provided for that exact request key
// and ignores ctx (it keeps it in the signature to satisfy SpecimenBuilder).
// Unknown or non-comparable requests produce NoSpecimen.
//
// Expected usage:
//
//	b := kernel.NewMapBuilder().Provide("db", db).Provide(reflect.TypeOf(cfg), cfg)
//	v, err := b.Create("db", nil)
type MapBuilder struct {
	items map[any]any
}

func NewMapBuilder() *MapBuilder {
	return &MapBuilder{items: map[any]any{}}
}

// Provide stores a specimen under a request key and returns the builder for chaining.
//
// It panics if key is not comparable.
func (b *MapBuilder) Provide(key, val any) *MapBuilder {
	if !isComparable(key) {
		panic(fmt.Errorf("kernel: map builder key of type %s is not comparable", typeName(key)))
	}
	b.items[key] = val
	return b
}

// Create implements SpecimenBuilder and defensively converts panics into errors.
func (b *MapBuilder) Create(request any, _ SpecimenContext) (val any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			err = fmt.Errorf("%w: %v", ErrBuilderPanic, rec)
		}
	}()
	if !isComparable(request) {
		return NoSpecimen{Request: request}, nil
	}
	v, ok := b.items[request]
	if !ok {
		return NoSpecimen{Request: request}, nil
	}
	return v, nil
}

// Get returns the specimen if present (no panic).
func (b *MapBuilder) Get(key any) (any, bool) {
	if !isComparable(key) {
		return nil, false
	}
	v, ok := b.items[key]
	return v, ok
}

// MustGet returns the specimen or panics with a helpful message.
// Useful in examples/tests where missing keys should fail fast.
func (b *MapBuilder) MustGet(key any) any {
	v, ok := b.Get(key)
	if !ok {
		panic(fmt.Errorf("kernel: map builder missing key %v", key))
	}
	return v
}

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}
