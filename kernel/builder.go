//go:generate mockgen -source=builder.go -destination=builder_mock.go -package=kernel
package kernel

import "reflect"

// SpecimenContext resolves nested requests while a specimen is being built.
//
// The tracker never calls it; it is forwarded to the decorated builder as is.
type SpecimenContext interface {
	Resolve(request any) (any, error)
}

// SpecimenBuilder creates a specimen for a request.
//
// A builder that does not handle the request returns NoSpecimen{Request: request}
// and a nil error. A non-nil error means the request was recognized but
// construction failed.
type SpecimenBuilder interface {
	Create(request any, ctx SpecimenContext) (any, error)
}

// SpecimenBuilderFunc adapts an ordinary function to SpecimenBuilder.
type SpecimenBuilderFunc func(request any, ctx SpecimenContext) (any, error)

// Create calls f(request, ctx).
func (f SpecimenBuilderFunc) Create(request any, ctx SpecimenContext) (any, error) {
	return f(request, ctx)
}

// NoSpecimen signals that a builder produced nothing for Request.
type NoSpecimen struct {
	Request any
}

// IsNoSpecimen reports whether v is a NoSpecimen signal.
func IsNoSpecimen(v any) bool {
	switch v.(type) {
	case NoSpecimen, *NoSpecimen:
		return true
	}
	return false
}

// BuilderContext is a SpecimenContext that resolves requests through a builder,
// passing itself along so nested requests go through the same builder.
type BuilderContext struct {
	builder SpecimenBuilder
}

// NewBuilderContext returns a context backed by builder.
func NewBuilderContext(builder SpecimenBuilder) (*BuilderContext, error) {
	if isNil(builder) {
		return nil, ErrNilBuilder
	}
	return &BuilderContext{builder: builder}, nil
}

// Resolve implements SpecimenContext.
func (c *BuilderContext) Resolve(request any) (any, error) {
	return c.builder.Create(request, c)
}

// isNil reports whether v is nil or an interface holding a nil reference.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
