// Package quill is the composition root for the quill note store.
//
// It connects the core list-synchronization logic (Domain Layer) with the
// storage adapters (Persistence Layer) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// Quill is the persistence core of a single-device note app. One process,
// one user, one collection: notes are immutable values merged into an
// in-memory list that is re-sorted and snapshotted to a key-value backend
// after every mutation. The core is agnostic to where that blob lives; the
// default adapter writes plain files, with SQLite and in-memory adapters
// behind the same core.Backend port.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from storage details.
//   - **Whole-collection snapshots**: Every save rewrites one atomic blob.
//   - **Merge-on-return**: Upsert is insert-or-replace keyed by note identity.
//   - **Silent recovery**: Malformed persisted records heal with defaults.
//   - **Reactive**: Subscribers receive change events; the file adapter can
//     also watch for external modifications.
//
// Usage:
//
//	// Open the collection with functional options
//	ctrl, err := quill.New(ctx, "./notes",
//		quill.WithLogger(logger),
//	)
//
//	// Merge an edit back into the list
//	err = ctrl.Upsert(ctx, note)
package quill
