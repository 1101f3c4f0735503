package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/config/file"
	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()
	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return NewSettingsService(store)
}

func TestSettingsGetDefaults(t *testing.T) {
	svc := newSettingsService(t)
	t.Setenv(domain.EnvAPIKey, "")

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultChunkSize, settings.ChunkSize)
	assert.Equal(t, domain.DefaultChunkOverlap, settings.ChunkOverlap)
	assert.Equal(t, domain.DefaultTopK, settings.DefaultTopK)
	assert.Equal(t, domain.DefaultBaseURL, settings.BaseURL)
	assert.Equal(t, domain.DefaultCollection, settings.Collection)
	assert.Equal(t, domain.DefaultLLMModel, settings.LLMModel)
	assert.Empty(t, settings.APIKey)
	assert.NotEmpty(t, settings.DataDir)
	assert.Equal(t, filepath.Join(settings.DataDir, "storage"), settings.StoragePath)
	assert.Equal(t, filepath.Join(settings.DataDir, "vectors.db"), settings.VectorDBPath)
}

func TestSettingsSet(t *testing.T) {
	svc := newSettingsService(t)

	require.NoError(t, svc.Set(domain.KeyChunkSize, "300"))
	require.NoError(t, svc.Set(domain.KeyLLMModel, "openai/gpt-4o"))
	require.NoError(t, svc.Set(domain.KeyDataDir, "/tmp/askdoc-data"))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 300, settings.ChunkSize)
	assert.Equal(t, "openai/gpt-4o", settings.LLMModel)
	assert.Equal(t, "/tmp/askdoc-data", settings.DataDir)
}

func TestSettingsGetEnvOverrides(t *testing.T) {
	svc := newSettingsService(t)

	require.NoError(t, svc.SetAPIKey("sk-from-file"))
	require.NoError(t, svc.Set(domain.KeyChunkSize, "300"))

	t.Setenv(domain.EnvAPIKey, "sk-from-env")
	t.Setenv(domain.EnvChunkSize, "150")
	t.Setenv(domain.EnvLLMModel, "openai/gpt-4o")

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", settings.APIKey)
	assert.Equal(t, 150, settings.ChunkSize)
	assert.Equal(t, "openai/gpt-4o", settings.LLMModel)
}

func TestSettingsSetValidation(t *testing.T) {
	svc := newSettingsService(t)

	assert.ErrorIs(t, svc.Set("nonsense.key", "x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set(domain.KeyChunkSize, "not-a-number"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set(domain.KeyChunkSize, "-5"), domain.ErrInvalidInput)

	// The API key has its own dedicated path.
	assert.ErrorIs(t, svc.Set(domain.KeyAPIKey, "sk-x"), domain.ErrInvalidInput)
}

func TestSettingsSetAPIKey(t *testing.T) {
	svc := newSettingsService(t)

	require.NoError(t, svc.SetAPIKey("sk-test"))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", settings.APIKey)

	assert.ErrorIs(t, svc.SetAPIKey(""), domain.ErrInvalidInput)
}

func TestSettingsConfigPath(t *testing.T) {
	svc := newSettingsService(t)
	assert.NotEmpty(t, svc.ConfigPath())
}
