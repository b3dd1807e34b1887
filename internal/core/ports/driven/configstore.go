package driven

import "github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"

// ConfigStore persists application settings.
type ConfigStore interface {
	// Load reads the persisted settings, returning defaults when no
	// configuration exists yet.
	Load() (domain.AppSettings, error)

	// Save persists the settings.
	Save(settings domain.AppSettings) error

	// Path returns the location of the persisted configuration.
	Path() string
}
