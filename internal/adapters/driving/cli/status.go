package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index status",
	Long:  `Reports the number of ingested documents and whether the vector index and API credential are available.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if documentService == nil || settingsService == nil {
		return errors.New("services not configured")
	}

	count, err := documentService.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting documents: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("Documents: %d\n", count)

	if vectorIndex != nil {
		cmd.Println("Vector index: available")
	} else {
		cmd.Println("Vector index: unavailable")
	}

	if settings.APIKey != "" {
		cmd.Println("API key: configured")
	} else {
		cmd.Println("API key: not set (run 'askdoc settings set-key')")
	}

	cmd.Printf("Models: %s / %s\n", settings.EmbeddingModel, settings.LLMModel)
	return nil
}
