// Package repository implements data access over the document store.
//
// Each repository wraps the database.Database interface and owns the
// queries and result parsing for one table. Repositories return nil (not
// an error) when a primary lookup finds no record; callers decide how a
// missing record is classified.
//
// SurrealDB returns record IDs as structured values and timestamps in
// several encodings depending on transport; the helpers in this package
// normalize both before results are decoded into model types.
package repository
