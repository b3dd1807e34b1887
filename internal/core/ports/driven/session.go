package driven

import "github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"

// SessionLog records answered queries for display. Append-only, in-memory,
// cleared on process restart - explicitly not a durability guarantee.
//
// Appends must be synchronised so append order equals insertion order under
// concurrent queries; reads may serve a slightly stale view.
type SessionLog interface {
	// Record appends an AnswerRecord stamped with the current time.
	Record(query, answer string, chunksUsed int)

	// Recent returns up to n records, most recent first.
	Recent(n int) []domain.AnswerRecord

	// Len returns the number of records appended so far.
	Len() int
}
