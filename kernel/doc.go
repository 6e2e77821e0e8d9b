// Package kernel provides the specimen building blocks used to create test
// fixtures and to clean up after them.
//
// A SpecimenBuilder turns a request into a specimen (or a NoSpecimen signal).
// Builders are composed by decoration: one builder wraps another behind the
// same interface, so each piece stays small and independently testable.
//
// DisposableTracker is such a decorator. It forwards every Create call to the
// builder it wraps and remembers each produced value that carries a release
// capability, either:
//
//   - Disposable (Dispose(), no result), or
//   - io.Closer (Close() error)
//
// so that all of them can be released together with a single Dispose call.
//
// Design goals:
//   - Transparent: values and errors from the decorated builder pass through unchanged.
//   - Idempotent: the same instance is tracked once, however many times it is returned.
//   - Repeatable release: Dispose may be called any number of times; the tracker
//     stays usable afterwards.
//
// Quick start
//
//	builder := kernel.NewMapBuilder().Provide("db", db)
//	tracker := kernel.MustNewDisposableTracker(builder)
//	defer tracker.Dispose()
//
//	ctx, err := kernel.NewBuilderContext(tracker)
//	if err != nil {
//		return err
//	}
//	v, err := ctx.Resolve("db")
//
// Import
//
//	"github.com/sghaida/specimen/kernel"
package kernel
