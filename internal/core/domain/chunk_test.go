package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpusEntry_CombinesChunkAndMetadata(t *testing.T) {
	entry := CorpusEntry{
		Chunk: Chunk{ID: 7, Content: "Patient presents with seasonal rhinitis."},
		Metadata: ChunkMetadata{
			ChunkID:          7,
			MedicalSpecialty: "Allergy / Immunology",
			SourceRecordID:   104,
		},
	}

	assert.Equal(t, entry.Chunk.ID, entry.Metadata.ChunkID)
	assert.Equal(t, "Allergy / Immunology", entry.Metadata.MedicalSpecialty)
}

func TestAnswer_Grounded(t *testing.T) {
	grounded := Answer{
		Text:    "Loratadine was prescribed.",
		Sources: []RetrievalResult{{Content: "...", SimilarityScore: 0.91}},
	}
	assert.True(t, grounded.Grounded())

	ungrounded := Answer{Text: NoContextAnswer}
	assert.False(t, ungrounded.Grounded())
}

func TestNoContextAnswer_IsNotAnErrorString(t *testing.T) {
	// The fixed no-context message must stay recognisable so callers can
	// distinguish it from a real answer without parsing error text.
	assert.NotEmpty(t, NoContextAnswer)
	assert.NotContains(t, NoContextAnswer, "Error")
	assert.NotContains(t, NoContextAnswer, "error:")
}
