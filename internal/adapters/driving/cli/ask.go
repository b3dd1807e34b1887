package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
)

// sourcePreviewLength caps the chunk content shown per source.
const sourcePreviewLength = 400

var (
	askK    int
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the medical corpus",
	Long: `Asks a single question. The question is embedded, the most similar
note chunks are retrieved, and the answer is generated strictly from that
context. Sources are listed with their specialty and similarity score.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askK, "chunks", "k", 0, "number of chunks to retrieve (1-5, default from config)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer and sources as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensurePipeline(); err != nil {
		return err
	}
	if err := validateK(askK); err != nil {
		return err
	}

	answer, err := runQuery(args[0], askK)
	if err != nil {
		return fmt.Errorf("%s: %w", failureMessage(err), err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, args[0], answer)
	}
	outputAnswerText(cmd, answer)
	return nil
}

// validateK enforces the configured chunk range. Zero means "use the
// configured default" and is always allowed.
func validateK(k int) error {
	if k == 0 {
		return nil
	}
	maxK := appSettings.Ask.MaxK
	if maxK <= 0 {
		maxK = 5
	}
	if k < 1 || k > maxK {
		return fmt.Errorf("%w: -k must be between 1 and %d, got %d", domain.ErrInvalidInput, maxK, k)
	}
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer *domain.Answer) {
	cmd.Println("Answer:")
	cmd.Println(answer.Text)

	if !answer.Grounded() {
		return
	}

	cmd.Println()
	cmd.Printf("Sources (%d):\n", len(answer.Sources))
	for i, src := range answer.Sources {
		cmd.Printf("  [%d] Specialty: %s | Similarity: %.3f\n",
			i+1, src.Metadata.MedicalSpecialty, src.SimilarityScore)
		cmd.Printf("      %s\n", previewContent(src.Content))
	}
}

// jsonAnswer is the --json output shape.
type jsonAnswer struct {
	Query    string       `json:"query"`
	Answer   string       `json:"answer"`
	Grounded bool         `json:"grounded"`
	Sources  []jsonSource `json:"sources"`
}

type jsonSource struct {
	Specialty  string  `json:"specialty"`
	Similarity float64 `json:"similarity"`
	Content    string  `json:"content"`
}

func outputAnswerJSON(cmd *cobra.Command, query string, answer *domain.Answer) error {
	out := jsonAnswer{
		Query:    query,
		Answer:   answer.Text,
		Grounded: answer.Grounded(),
		Sources:  make([]jsonSource, 0, len(answer.Sources)),
	}
	for _, src := range answer.Sources {
		out.Sources = append(out.Sources, jsonSource{
			Specialty:  src.Metadata.MedicalSpecialty,
			Similarity: src.SimilarityScore,
			Content:    src.Content,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// previewContent truncates chunk content for display.
func previewContent(content string) string {
	return truncate(content, sourcePreviewLength)
}

// truncate shortens s to at most limit runes. Clinical text carries
// multi-byte characters (degree signs, micro signs), so the cut must land
// on a rune boundary.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
