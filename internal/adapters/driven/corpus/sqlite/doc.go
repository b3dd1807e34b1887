// Package sqlite loads the fixed query corpus from a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. The corpus database is
// built offline; at query time it is opened read-only, loaded fully into
// memory and the connection closed again, so queries never touch the file.
//
// # Schema
//
// A single chunks table carries the chunk text together with its metadata:
//
//	CREATE TABLE chunks (
//	    id               INTEGER PRIMARY KEY,
//	    content          TEXT NOT NULL,
//	    medical_specialty TEXT NOT NULL,
//	    source_record_id INTEGER NOT NULL
//	);
//
// Row order by ascending id defines the corpus positions that the vector
// index refers to.
//
// # Data Location
//
// By default, the corpus lives at ~/.medrag/corpus/corpus.db next to its
// vectors.bin index file.
//
// # Thread Safety
//
// The loaded store is immutable, so all accessors are safe for concurrent
// use without locking.
package sqlite
