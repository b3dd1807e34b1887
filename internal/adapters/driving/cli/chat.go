package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

// historyDisplayCount is how many recent Q/As the history command shows.
const historyDisplayCount = 3

// historyAnswerPreview caps the answer text shown per history entry.
const historyAnswerPreview = 200

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question loop",
	Long: `Starts an interactive loop. Each line is answered independently
against the corpus; there is no conversational memory between questions.

Special inputs:
  history   show the most recent questions and answers
  info      show corpus statistics
  exit      leave the loop (also: quit, Ctrl-D)`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if err := ensurePipeline(); err != nil {
		return err
	}

	info := askService.CorpusInfo()
	cmd.Printf("medrag chat - %d chunks across %d specialties, %d-dimension vectors\n",
		info.ChunkCount, len(info.Specialties), info.VectorDimension)
	cmd.Println(`Ask a question, or type "history", "info" or "exit".`)
	cmd.Println()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "history":
			printHistory(cmd)
			continue
		case "info":
			printCorpusInfo(cmd)
			continue
		}

		answer, err := runQuery(line, 0)
		if err != nil {
			// One failed question does not end the session.
			cmd.PrintErrf("Error: %s: %v\n", failureMessage(err), err)
			continue
		}

		cmd.Println()
		outputAnswerText(cmd, answer)
		cmd.Println()
	}
}

func printHistory(cmd *cobra.Command) {
	records := askService.History(historyDisplayCount)
	if len(records) == 0 {
		cmd.Println("No questions asked yet.")
		return
	}

	cmd.Println("Recent questions:")
	for _, rec := range records {
		cmd.Printf("Q: %s\n", rec.Query)
		cmd.Printf("A: %s\n", truncate(rec.Answer, historyAnswerPreview))
		cmd.Printf("   (sources used: %d)\n", rec.ChunksUsed)
	}
}
