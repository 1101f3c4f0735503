// Package cli implements the command-line interface for AskDoc.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	configfile "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/config/file"
	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/index/sqlitevec"
	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/openrouter"
	filestore "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/storage/file"
	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/storage/sqlite"
	"github.com/askdoc-labs/askdoc-cli/internal/chunker"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/core/services"
	"github.com/askdoc-labs/askdoc-cli/internal/extractors"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services consumed by the commands. Wired by initServices before any
// command runs; tests substitute their own implementations.
var (
	ingestService   driving.IngestService
	answerService   driving.AnswerService
	documentService driving.DocumentService
	settingsService driving.SettingsService
	vectorIndex     driven.VectorIndex
)

var verboseFlag bool

// closers are resources to release after the command finishes.
var closers []io.Closer

var rootCmd = &cobra.Command{
	Use:   "askdoc",
	Short: "Ask questions about your documents",
	Long: `AskDoc ingests PDF, DOCX, and TXT documents, indexes them by meaning,
and answers natural-language questions grounded in their content.

Documents are chunked, embedded via the OpenRouter API, and stored in a
local vector index. Questions retrieve the most similar chunks and feed
them to a completion model.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose pipeline logging")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute wires the services and runs the root command.
func Execute() error {
	if err := initServices(); err != nil {
		return err
	}
	defer closeAll()

	return rootCmd.Execute()
}

// initServices builds the dependency graph from the resolved settings.
// A failed vector index is not fatal: services degrade per operation.
func initServices() error {
	cfgStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService = services.NewSettingsService(cfgStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("resolving settings: %w", err)
	}

	docStore, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening metadata store: %w", err)
	}
	closers = append(closers, docStore)

	files, err := filestore.NewStore(settings.StoragePath)
	if err != nil {
		return fmt.Errorf("opening file storage: %w", err)
	}

	if idx, err := sqlitevec.NewIndex(settings.VectorDBPath, settings.Collection); err != nil {
		logger.Warn("vector index unavailable: %v", err)
		vectorIndex = nil
	} else {
		vectorIndex = idx
		closers = append(closers, idx)
	}

	embedder := openrouter.NewEmbeddingService(openrouter.EmbeddingConfig{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.EmbeddingModel,
	})
	llm := openrouter.NewLLMService(openrouter.LLMConfig{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.LLMModel,
	})

	ch := chunker.New(
		chunker.WithTargetSize(settings.ChunkSize),
		chunker.WithOverlap(settings.ChunkOverlap),
	)

	ingestService = services.NewIngestService(
		extractors.Defaults(), files, docStore, embedder, vectorIndex, ch, settings.MaxUploadBytes)
	answerService = services.NewAnswerService(
		embedder, llm, vectorIndex, settings.DefaultTopK, settings.MaxTopK)
	documentService = services.NewDocumentService(docStore, files, vectorIndex)

	return nil
}

func closeAll() {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Warn("closing resource: %v", err)
		}
	}
	closers = nil
}
