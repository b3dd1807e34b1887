package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/vector/flat"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
	"github.com/bismatayyab23-tech/medrag-cli/internal/logger"
)

// DBFileName is the corpus database file inside a corpus directory.
const DBFileName = "corpus.db"

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store holds the full corpus in memory. Loaded once by Open and never
// modified afterwards, so all accessors are safe for concurrent use.
type Store struct {
	entries     []domain.CorpusEntry
	specialties []string
	dim         int
	path        string
}

// Open loads the corpus from dir, which must contain corpus.db and its
// vectors.bin index file. Every failure wraps domain.ErrCorpusLoad: a
// broken corpus is fatal at startup, never a per-query condition.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, DBFileName)
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusLoad, err)
	}

	entries, err := readEntries(dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusLoad, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: corpus database %s holds no chunks", domain.ErrCorpusLoad, dbPath)
	}

	// The vector index is built alongside the database; positions must
	// line up row for row or retrieval would return the wrong chunks.
	dim, count, err := flat.ReadHeader(filepath.Join(dir, flat.FileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusLoad, err)
	}
	if count != len(entries) {
		return nil, fmt.Errorf("%w: index holds %d vectors but database holds %d chunks",
			domain.ErrCorpusLoad, count, len(entries))
	}

	logger.Info("Corpus loaded: %d chunks, %d-dimension vectors", len(entries), dim)

	return &Store{
		entries:     entries,
		specialties: distinctSpecialties(entries),
		dim:         dim,
		path:        dbPath,
	}, nil
}

// readEntries loads all chunk rows ordered by id. Row order defines the
// corpus positions the vector index refers to.
func readEntries(dbPath string) ([]domain.CorpusEntry, error) {
	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, content, medical_specialty, source_record_id
		FROM chunks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var entries []domain.CorpusEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var e domain.CorpusEntry
		if err := rows.Scan(&e.Chunk.ID, &e.Chunk.Content,
			&e.Metadata.MedicalSpecialty, &e.Metadata.SourceRecordID); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		e.Metadata.ChunkID = e.Chunk.ID
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	return entries, nil
}

// distinctSpecialties returns the sorted distinct specialties.
func distinctSpecialties(entries []domain.CorpusEntry) []string {
	seen := make(map[string]bool)
	for _, e := range entries {
		seen[e.Metadata.MedicalSpecialty] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ChunkCount returns the number of entries in the corpus.
func (s *Store) ChunkCount() int { return len(s.entries) }

// SpecialtySet returns the sorted distinct medical specialties.
func (s *Store) SpecialtySet() []string { return s.specialties }

// VectorDimension returns the embedding dimension of the corpus index.
func (s *Store) VectorDimension() int { return s.dim }

// Entry returns the combined chunk+metadata record at position i.
func (s *Store) Entry(i int) (domain.CorpusEntry, error) {
	if i < 0 || i >= len(s.entries) {
		return domain.CorpusEntry{}, fmt.Errorf("corpus position %d out of range [0, %d)", i, len(s.entries))
	}
	return s.entries[i], nil
}

// Close releases resources. The store holds no open handles after load.
func (s *Store) Close() error { return nil }

// Path returns the corpus database file path.
func (s *Store) Path() string { return s.path }

// WriteCorpus writes a complete corpus directory: corpus.db with one row
// per entry and vectors.bin with the matching vector rows. Entries and
// vectors correspond positionally. Used by tests and offline builders.
func WriteCorpus(dir string, entries []domain.CorpusEntry, vectors [][]float32) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries to write")
	}
	if len(entries) != len(vectors) {
		return fmt.Errorf("%d entries but %d vectors", len(entries), len(vectors))
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating corpus directory: %w", err)
	}

	dbPath := filepath.Join(dir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS chunks (
			id INTEGER PRIMARY KEY,
			content TEXT NOT NULL,
			medical_specialty TEXT NOT NULL,
			source_record_id INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating chunks table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare(`
		INSERT INTO chunks (id, content, medical_specialty, source_record_id)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Chunk.ID, e.Chunk.Content,
			e.Metadata.MedicalSpecialty, e.Metadata.SourceRecordID); err != nil {
			return fmt.Errorf("inserting chunk %d: %w", e.Chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	index, err := flat.New(vectors)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	if err := index.Save(filepath.Join(dir, flat.FileName)); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}

	return nil
}
