package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
)

// Ensure MemorySessionLog implements the interface.
var _ driven.SessionLog = (*MemorySessionLog)(nil)

// MemorySessionLog is the in-memory session log. Appends are mutex-guarded
// so append order equals insertion order under concurrent queries; records
// are never mutated or removed, and nothing survives a restart.
type MemorySessionLog struct {
	mu      sync.RWMutex
	records []domain.AnswerRecord
}

// NewMemorySessionLog creates an empty session log.
func NewMemorySessionLog() *MemorySessionLog {
	return &MemorySessionLog{}
}

// Record appends an AnswerRecord stamped with the current time.
func (l *MemorySessionLog) Record(query, answer string, chunksUsed int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, domain.AnswerRecord{
		ID:         uuid.NewString(),
		Query:      query,
		Answer:     answer,
		ChunksUsed: chunksUsed,
		AskedAt:    time.Now(),
	})
}

// Recent returns up to n records, most recent first.
func (l *MemorySessionLog) Recent(n int) []domain.AnswerRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	if n > len(l.records) {
		n = len(l.records)
	}

	out := make([]domain.AnswerRecord, n)
	for i := 0; i < n; i++ {
		out[i] = l.records[len(l.records)-1-i]
	}
	return out
}

// Len returns the number of records appended so far.
func (l *MemorySessionLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
