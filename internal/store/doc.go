// Package store provides SQLite-backed history of Quirk conversions.
//
// The store is an append-only log. Each record holds the circuit name and
// source path, the grid digest (see quirk.Digest), the column and
// operation counts, and the URL that was produced. Records are ordered by
// an insertion sequence number, never by wall-clock time.
//
// Conversion itself never reads or writes the store; the CLI records a
// conversion only when asked to.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Record ids come from an IDGenerator. The default generates UUIDv7 values,
// which sort by creation time.
package store
