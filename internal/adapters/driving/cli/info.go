package cli

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show corpus statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := ensurePipeline(); err != nil {
			return err
		}
		printCorpusInfo(cmd)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printCorpusInfo(cmd *cobra.Command) {
	info := askService.CorpusInfo()

	cmd.Println("Corpus:")
	cmd.Printf("  Chunks:           %d\n", info.ChunkCount)
	cmd.Printf("  Specialties:      %d\n", len(info.Specialties))
	cmd.Printf("  Vector dimension: %d\n", info.VectorDimension)

	if len(info.Specialties) > 0 {
		cmd.Println()
		cmd.Println("Specialties:")
		for _, s := range info.Specialties {
			cmd.Printf("  - %s\n", s)
		}
	}
}
