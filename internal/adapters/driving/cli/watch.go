package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driving/watch"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and ingest new documents",
	Long: `Watches a directory and ingests every supported file (PDF, DOCX, TXT)
created in it. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	watcher, err := watch.New(ingestService, args[0])
	if err != nil {
		return err
	}

	watcher.OnIngest = func(path string, result *driving.IngestResult) {
		cmd.Printf("Ingested %s (%d chunks) as %s\n", path, result.ChunkCount, result.DocumentID)
	}
	watcher.OnError = func(path string, err error) {
		cmd.PrintErrf("Failed to ingest %s: %v\n", path, err)
	}

	cmd.Printf("Watching %s for new documents. Press Ctrl+C to stop.\n", args[0])
	err = watcher.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
