package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists application settings as TOML.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// tomlSettings is the on-disk shape of the configuration. Kept separate
// from domain.AppSettings so the file layout can evolve without touching
// the domain types.
type tomlSettings struct {
	CorpusDir string `toml:"corpus_dir"`

	Embedding struct {
		Provider   string `toml:"provider"`
		Model      string `toml:"model"`
		BaseURL    string `toml:"base_url"`
		APIKey     string `toml:"api_key"`
		Dimensions int    `toml:"dimensions"`
		Serialise  bool   `toml:"serialise"`
	} `toml:"embedding"`

	Generation struct {
		Provider          string `toml:"provider"`
		Model             string `toml:"model"`
		BaseURL           string `toml:"base_url"`
		APIKey            string `toml:"api_key"`
		TimeoutSeconds    int    `toml:"timeout_seconds"`
		RequestsPerMinute int    `toml:"requests_per_minute"`
	} `toml:"generation"`

	Ask struct {
		DefaultK int `toml:"default_k"`
		MaxK     int `toml:"max_k"`
	} `toml:"ask"`
}

// NewConfigStore creates a TOML config store. If configDir is empty,
// defaults to ~/.medrag.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".medrag")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// DefaultSettings returns the settings used when no configuration file
// exists yet: Gemini generation over a hash-embedded corpus in ~/.medrag.
func DefaultSettings() domain.AppSettings {
	home, err := os.UserHomeDir()
	corpusDir := "corpus"
	if err == nil {
		corpusDir = filepath.Join(home, ".medrag", "corpus")
	}

	return domain.AppSettings{
		CorpusDir: corpusDir,
		Embedding: domain.EmbeddingSettings{
			Provider: domain.AIProviderHash,
		},
		Generation: domain.GenerationSettings{
			Provider:       domain.AIProviderGemini,
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 30,
		},
		Ask: domain.AskSettings{
			DefaultK: 3,
			MaxK:     5,
		},
	}
}

// Load reads the persisted settings, returning defaults when no
// configuration file exists yet.
func (s *ConfigStore) Load() (domain.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return domain.AppSettings{}, fmt.Errorf("read config: %w", err)
	}

	var raw tomlSettings
	if err := toml.Unmarshal(data, &raw); err != nil {
		return domain.AppSettings{}, fmt.Errorf("parse config: %w", err)
	}

	settings := fromTOML(raw)
	applyDefaults(&settings)
	return settings, nil
}

// Save persists the settings with restricted permissions; the file may
// carry an API key.
func (s *ConfigStore) Save(settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(toTOML(settings))
	if err != nil {
		return fmt.Errorf("serialise config: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// applyDefaults fills zero values with the shipped defaults so a partial
// config file behaves sensibly.
func applyDefaults(settings *domain.AppSettings) {
	defaults := DefaultSettings()

	if settings.CorpusDir == "" {
		settings.CorpusDir = defaults.CorpusDir
	}
	if settings.Embedding.Provider == "" {
		settings.Embedding.Provider = defaults.Embedding.Provider
	}
	if settings.Generation.Provider == "" {
		settings.Generation.Provider = defaults.Generation.Provider
	}
	if settings.Generation.Model == "" && settings.Generation.Provider == domain.AIProviderGemini {
		settings.Generation.Model = defaults.Generation.Model
	}
	if settings.Generation.TimeoutSeconds == 0 {
		settings.Generation.TimeoutSeconds = defaults.Generation.TimeoutSeconds
	}
	if settings.Ask.DefaultK == 0 {
		settings.Ask.DefaultK = defaults.Ask.DefaultK
	}
	if settings.Ask.MaxK == 0 {
		settings.Ask.MaxK = defaults.Ask.MaxK
	}
}

func fromTOML(raw tomlSettings) domain.AppSettings {
	return domain.AppSettings{
		CorpusDir: raw.CorpusDir,
		Embedding: domain.EmbeddingSettings{
			Provider:   domain.AIProvider(raw.Embedding.Provider),
			Model:      raw.Embedding.Model,
			BaseURL:    raw.Embedding.BaseURL,
			APIKey:     raw.Embedding.APIKey,
			Dimensions: raw.Embedding.Dimensions,
			Serialise:  raw.Embedding.Serialise,
		},
		Generation: domain.GenerationSettings{
			Provider:          domain.AIProvider(raw.Generation.Provider),
			Model:             raw.Generation.Model,
			BaseURL:           raw.Generation.BaseURL,
			APIKey:            raw.Generation.APIKey,
			TimeoutSeconds:    raw.Generation.TimeoutSeconds,
			RequestsPerMinute: raw.Generation.RequestsPerMinute,
		},
		Ask: domain.AskSettings{
			DefaultK: raw.Ask.DefaultK,
			MaxK:     raw.Ask.MaxK,
		},
	}
}

func toTOML(settings domain.AppSettings) tomlSettings {
	var raw tomlSettings
	raw.CorpusDir = settings.CorpusDir

	raw.Embedding.Provider = settings.Embedding.Provider.String()
	raw.Embedding.Model = settings.Embedding.Model
	raw.Embedding.BaseURL = settings.Embedding.BaseURL
	raw.Embedding.APIKey = settings.Embedding.APIKey
	raw.Embedding.Dimensions = settings.Embedding.Dimensions
	raw.Embedding.Serialise = settings.Embedding.Serialise

	raw.Generation.Provider = settings.Generation.Provider.String()
	raw.Generation.Model = settings.Generation.Model
	raw.Generation.BaseURL = settings.Generation.BaseURL
	raw.Generation.APIKey = settings.Generation.APIKey
	raw.Generation.TimeoutSeconds = settings.Generation.TimeoutSeconds
	raw.Generation.RequestsPerMinute = settings.Generation.RequestsPerMinute

	raw.Ask.DefaultK = settings.Ask.DefaultK
	raw.Ask.MaxK = settings.Ask.MaxK

	return raw
}
