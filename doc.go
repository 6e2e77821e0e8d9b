// Package specimen provides small building blocks for creating test fixtures
// and cleaning up after them.
//
// The library lives in the kernel subpackage:
//
//   - kernel.SpecimenBuilder: turns a request into a specimen (or NoSpecimen)
//   - kernel.DisposableTracker: decorates a builder and releases every
//     disposable specimen it produced with one Dispose call
//   - kernel.MapBuilder: an in-memory builder for fixed specimens
//
// Builders are composed by decoration, never by reflection-based containers.
// Wiring stays explicit in the test or composition root that owns the tracker.
//
// Package specimen See subpackages:
//   - kernel: builders, contexts and the disposable tracker
//   - examples/tracker: a runnable example
package specimen
