// Package patterns is the Composition Root for the pattern demos.
//
// It connects the library domain (pkg/core) with its storage adapter
// (pkg/adapters/memory) so callers only deal with a core.Manager.
//
// Two programs live under cmd/:
//
//   - vehicles: an Abstract Factory demo. Region factories (pkg/vehicle) build
//     a car and a motorcycle and start their engines.
//   - library: an interactive catalog. A Manager depends on the core.Library
//     interface only; the in-memory store is injected here.
//
// Usage:
//
//	manager, err := patterns.New(patterns.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	err = manager.AddBook(ctx, "Dune", "Frank Herbert", "1965")
package patterns
