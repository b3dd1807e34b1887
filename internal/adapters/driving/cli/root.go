// Package cli implements the medrag command line interface. Commands are
// thin: they parse flags, wire the pipeline through the driven adapters,
// and render results. All query semantics live in the core services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/ai"
	configfile "github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/config/file"
	corpussqlite "github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/corpus/sqlite"
	"github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/vector/flat"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driving"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/services"
	"github.com/bismatayyab23-tech/medrag-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
	flagCorpusDir string
)

// Wired services. Package-level so tests can inject fakes; ensurePipeline
// leaves injected services untouched.
var (
	askService   driving.AskService
	appSettings  domain.AppSettings
	queryTimeout time.Duration
	closers      []func() error
)

var rootCmd = &cobra.Command{
	Use:   "medrag",
	Short: "Question answering over a fixed corpus of clinical notes",
	Long: `medrag answers medical questions grounded in a local corpus of
clinical transcription notes. Each question is embedded, the most similar
note chunks are retrieved, and the generation backend produces an answer
constrained to that context, with the source chunks cited alongside.

The corpus is built offline; medrag only queries it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose pipeline logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.medrag)")
	rootCmd.PersistentFlags().StringVar(&flagCorpusDir, "corpus", "", "corpus directory override")
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// ensurePipeline wires the full query pipeline on first use. Commands that
// never query (version, help) skip this entirely, so they work with no
// corpus and no backend configured.
func ensurePipeline() error {
	if askService != nil {
		return nil
	}

	cfgStore, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}

	settings, err := cfgStore.Load()
	if err != nil {
		return fmt.Errorf("load config %s: %w", cfgStore.Path(), err)
	}
	if flagCorpusDir != "" {
		settings.CorpusDir = flagCorpusDir
	}

	// The environment supplies the API key when the config file does not,
	// so the key never has to be written to disk.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		if settings.Generation.APIKey == "" {
			settings.Generation.APIKey = key
		}
		if settings.Embedding.APIKey == "" {
			settings.Embedding.APIKey = key
		}
	}
	appSettings = settings
	queryTimeout = time.Duration(settings.Generation.TimeoutSeconds) * time.Second

	logger.Section("Initialisation")
	logger.Debug("Config: %s", cfgStore.Path())
	logger.Debug("Corpus directory: %s", settings.CorpusDir)

	corpus, err := corpussqlite.Open(settings.CorpusDir)
	if err != nil {
		return err
	}
	closers = append(closers, corpus.Close)

	index, err := flat.Open(filepath.Join(settings.CorpusDir, flat.FileName))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCorpusLoad, err)
	}

	if settings.Embedding.Dimensions == 0 {
		settings.Embedding.Dimensions = index.Dimension()
	}
	embedder, err := ai.CreateAndValidateEmbeddingService(settings.Embedding)
	if err != nil {
		return err
	}
	closers = append(closers, embedder.Close)

	generator, err := ai.CreateAndValidateGenerationService(settings.Generation)
	if err != nil {
		return err
	}
	closers = append(closers, generator.Close)

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("prompt store: %w", err)
	}

	answerer := services.NewAnswererService(generator)
	answerer.SetPromptStore(promptStore)

	askService = services.NewRAGService(
		embedder,
		services.NewRetrieverService(corpus, index),
		answerer,
		corpus,
		services.NewMemorySessionLog(),
		services.RAGConfig{
			DefaultK:           settings.Ask.DefaultK,
			SerialiseEmbedding: settings.Embedding.Serialise,
		},
	)

	logger.Info("Pipeline ready: %d chunks, embedding=%s, generation=%s",
		corpus.ChunkCount(), embedder.ModelName(), generator.ModelName())

	return nil
}

// closeServices releases adapter resources in reverse wiring order.
func closeServices() {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			logger.Warn("close: %v", err)
		}
	}
	closers = nil
}

// runQuery runs one question through the pipeline under the configured
// per-query timeout. No retry: a failed query surfaces immediately.
func runQuery(query string, k int) (*domain.Answer, error) {
	ctx := context.Background()
	if queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, queryTimeout)
		defer cancel()
	}

	return askService.Ask(ctx, query, driving.AskOptions{K: k})
}

// failureMessage maps a pipeline error to a short operator-facing line.
// The error classes stay distinguishable; an error is never rendered as
// if it were an answer.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid question"
	case errors.Is(err, domain.ErrEmbedding):
		return "embedding the question failed"
	case errors.Is(err, domain.ErrRetrieval):
		return "searching the corpus failed"
	case errors.Is(err, domain.ErrGeneration):
		return "generating the answer failed"
	case errors.Is(err, domain.ErrCorpusLoad):
		return "the corpus could not be loaded"
	case errors.Is(err, domain.ErrNotInitialised):
		return "the pipeline is not initialised"
	default:
		return "query failed"
	}
}
