package cli

import (
	"context"
	"strings"
	"time"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driving"
)

// fakeAskService implements driving.AskService for command tests.
type fakeAskService struct {
	answer  *domain.Answer
	err     error
	history []domain.AnswerRecord
	asked   []string
	lastK   int
}

func (f *fakeAskService) Ask(_ context.Context, query string, opts driving.AskOptions) (*domain.Answer, error) {
	f.asked = append(f.asked, query)
	f.lastK = opts.K
	if f.err != nil {
		return nil, f.err
	}
	return f.answer, nil
}

func (f *fakeAskService) CorpusInfo() domain.CorpusInfo {
	return domain.CorpusInfo{
		ChunkCount:      5,
		Specialties:     []string{"Allergy / Immunology", "Cardiovascular / Pulmonary"},
		VectorDimension: 3,
	}
}

func (f *fakeAskService) History(n int) []domain.AnswerRecord {
	if n > len(f.history) {
		n = len(f.history)
	}
	return f.history[:n]
}

// groundedAnswer builds a typical successful answer.
func groundedAnswer() *domain.Answer {
	return &domain.Answer{
		Text: "Loratadine is commonly prescribed for seasonal allergies.",
		Sources: []domain.RetrievalResult{
			{
				Content:         "Patient treated for seasonal allergies with loratadine.",
				Metadata:        domain.ChunkMetadata{ChunkID: 1, MedicalSpecialty: "Allergy / Immunology"},
				SimilarityScore: 0.912345,
			},
			{
				Content:         strings.Repeat("long clinical note content ", 30),
				Metadata:        domain.ChunkMetadata{ChunkID: 2, MedicalSpecialty: "Allergy / Immunology"},
				SimilarityScore: 0.85,
			},
		},
	}
}

// setupTestServices injects a fake pipeline and returns a cleanup func.
func setupTestServices(fake *fakeAskService) func() {
	oldService := askService
	oldSettings := appSettings
	oldTimeout := queryTimeout

	askService = fake
	appSettings = domain.AppSettings{Ask: domain.AskSettings{DefaultK: 3, MaxK: 5}}
	queryTimeout = 5 * time.Second

	return func() {
		askService = oldService
		appSettings = oldSettings
		queryTimeout = oldTimeout
		askK = 0
		askJSON = false
		rootCmd.SetArgs(nil)
	}
}
