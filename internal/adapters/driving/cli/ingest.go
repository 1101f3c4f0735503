package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var ingestJSON bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]...",
	Short: "Ingest documents into the index",
	Long: `Ingests one or more PDF, DOCX, or TXT files: extracts the text,
splits it into overlapping chunks, embeds the chunks, and stores them in
the local vector index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		filename := filepath.Base(path)
		result, err := ingestService.Ingest(cmd.Context(), filename, content, mimeTypeForFile(path))
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}

		if ingestJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result: %w", err)
			}
			cmd.Println(string(data))
			continue
		}

		cmd.Printf("Ingested %s\n", filename)
		cmd.Printf("  Document ID: %s\n", result.DocumentID)
		cmd.Printf("  Chunks: %d\n", result.ChunkCount)
	}

	return nil
}

// mimeTypeForFile derives a MIME type from the file extension, falling back
// to the bare extension which the detector also understands.
func mimeTypeForFile(path string) string {
	ext := filepath.Ext(path)
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return strings.TrimPrefix(ext, ".")
}
