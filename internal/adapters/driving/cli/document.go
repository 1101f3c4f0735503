package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	documentListOffset int
	documentListLimit  int
	documentListJSON   bool
	documentGetJSON    bool
	documentGetText    bool
)

var documentCmd = &cobra.Command{
	Use:     "document",
	Aliases: []string{"doc", "docs"},
	Short:   "Manage ingested documents",
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested documents",
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [document-id]",
	Short: "Show a document's details and chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [document-id]",
	Short: "Delete a document and its indexed chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

func init() {
	documentListCmd.Flags().IntVar(&documentListOffset, "offset", 0, "number of documents to skip")
	documentListCmd.Flags().IntVarP(&documentListLimit, "limit", "n", 100, "maximum number of documents")
	documentListCmd.Flags().BoolVar(&documentListJSON, "json", false, "output as JSON")
	documentGetCmd.Flags().BoolVar(&documentGetJSON, "json", false, "output as JSON")
	documentGetCmd.Flags().BoolVar(&documentGetText, "text", false, "print the full extracted text")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	summaries, err := documentService.List(cmd.Context(), documentListOffset, documentListLimit)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if documentListJSON {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(summaries) == 0 {
		cmd.Println("No documents ingested.")
		return nil
	}

	for _, doc := range summaries {
		cmd.Printf("%s  %-6s %4d chunks  %s  %s\n",
			doc.ID, doc.FileType, doc.ChunkCount,
			doc.CreatedAt.Format("2006-01-02 15:04"), doc.Filename)
	}
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	detail, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting document: %w", err)
	}

	if documentGetJSON {
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Document: %s\n", detail.ID)
	cmd.Printf("  Filename: %s\n", detail.Filename)
	cmd.Printf("  Type: %s\n", detail.FileType)
	cmd.Printf("  Chunks: %d\n", detail.ChunkCount)
	cmd.Printf("  Ingested: %s\n", detail.CreatedAt.Format("2006-01-02 15:04:05"))

	if documentGetText {
		cmd.Println()
		cmd.Println(detail.ExtractedText)
		return nil
	}

	if len(detail.Chunks) > 0 {
		cmd.Println()
		for _, chunk := range detail.Chunks {
			cmd.Printf("  [%s]\n  %s\n\n", chunk.ID, chunk.Text)
		}
	}
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}
