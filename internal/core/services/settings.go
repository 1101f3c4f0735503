package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// settableKeys are the config keys exposed through `settings set`, with
// whether the value is numeric.
var settableKeys = map[string]bool{
	domain.KeyDataDir:        false,
	domain.KeyChunkSize:      true,
	domain.KeyChunkOverlap:   true,
	domain.KeyMaxUploadBytes: true,
	domain.KeyTopK:           true,
	domain.KeyMaxTopK:        true,
	domain.KeyCollection:     false,
	domain.KeyBaseURL:        false,
	domain.KeyEmbeddingModel: false,
	domain.KeyLLMModel:       false,
}

// SettingsService manages application settings on top of the config store.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get retrieves the effective settings: defaults, overridden by the config
// file, overridden by environment variables. Derived paths are filled from
// the resolved data directory.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	settings.DataDir = s.stringValue(domain.KeyDataDir, domain.EnvDataDir, "")
	if settings.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		settings.DataDir = filepath.Join(home, ".askdoc", "data")
	}
	settings.StoragePath = filepath.Join(settings.DataDir, "storage")
	settings.VectorDBPath = filepath.Join(settings.DataDir, "vectors.db")

	settings.ChunkSize = s.intValue(domain.KeyChunkSize, domain.EnvChunkSize, settings.ChunkSize)
	settings.ChunkOverlap = s.intValue(domain.KeyChunkOverlap, domain.EnvChunkOverlap, settings.ChunkOverlap)
	settings.MaxUploadBytes = int64(s.intValue(domain.KeyMaxUploadBytes, domain.EnvMaxUploadBytes, int(settings.MaxUploadBytes)))
	settings.DefaultTopK = s.intValue(domain.KeyTopK, domain.EnvTopK, settings.DefaultTopK)
	settings.MaxTopK = s.intValue(domain.KeyMaxTopK, domain.EnvMaxTopK, settings.MaxTopK)
	settings.Collection = s.stringValue(domain.KeyCollection, domain.EnvCollection, settings.Collection)
	settings.APIKey = s.stringValue(domain.KeyAPIKey, domain.EnvAPIKey, settings.APIKey)
	settings.BaseURL = s.stringValue(domain.KeyBaseURL, domain.EnvBaseURL, settings.BaseURL)
	settings.EmbeddingModel = s.stringValue(domain.KeyEmbeddingModel, domain.EnvEmbeddingModel, settings.EmbeddingModel)
	settings.LLMModel = s.stringValue(domain.KeyLLMModel, domain.EnvLLMModel, settings.LLMModel)

	return &settings, nil
}

// Set stores a configuration value by key. Numeric keys are validated and
// stored as integers so the config file stays typed.
func (s *SettingsService) Set(key, value string) error {
	numeric, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if numeric {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q requires an integer value", domain.ErrInvalidInput, key)
		}
		if n <= 0 {
			return fmt.Errorf("%w: %q must be positive", domain.ErrInvalidInput, key)
		}
		return s.store.Set(key, n)
	}

	return s.store.Set(key, value)
}

// SetAPIKey stores the OpenRouter credential.
func (s *SettingsService) SetAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty API key", domain.ErrInvalidInput)
	}
	return s.store.Set(domain.KeyAPIKey, key)
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.store.Path()
}

func (s *SettingsService) stringValue(key, envVar, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if v := s.store.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) intValue(key, envVar string, fallback int) int {
	if v := os.Getenv(envVar); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if v := s.store.GetInt(key); v != 0 {
		return v
	}
	return fallback
}
