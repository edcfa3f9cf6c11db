// Package store provides an append-only SQLite log of completed
// conversions for the CLI shell.
//
// The conversion pipeline itself is stateless and never reads the log;
// the CLI writes one record after a conversion succeeds and the history
// command lists them back. Records identify the input by an
// NFC-normalized content hash rather than by storing source text.
//
// Database configuration:
//   - WAL mode for concurrent reads during writes
//   - synchronous=NORMAL to balance durability and performance
//   - single-writer connection pool to avoid SQLITE_BUSY
package store
