package domain

import "time"

// AnswerRecord is one entry in the session log: a question that was asked,
// the answer it received, and how many chunks grounded it.
//
// Records are append-only and live only for the process session. The log is
// a display convenience, not a durability guarantee, and no other component
// reads it back into the pipeline.
type AnswerRecord struct {
	// ID uniquely identifies the record within the session.
	ID string

	// Query is the question as the user asked it.
	Query string

	// Answer is the text that was returned, including the fixed
	// no-context answer. Failed queries are not recorded.
	Answer string

	// ChunksUsed is the number of retrieval results the answer was
	// grounded in (zero for the no-context answer).
	ChunksUsed int

	// AskedAt is when the record was appended.
	AskedAt time.Time
}
