package driving

import "github.com/askdoc-labs/askdoc-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves the effective settings (defaults, overridden by the
	// config file, overridden by environment variables).
	Get() (*domain.Settings, error)

	// Set stores a configuration value by key.
	Set(key, value string) error

	// SetAPIKey stores the OpenRouter credential.
	SetAPIKey(key string) error

	// ConfigPath returns the configuration file path.
	ConfigPath() string
}
