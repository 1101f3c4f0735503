package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

var (
	askTopK int
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your documents",
	Long: `Answers a natural-language question using the ingested documents.
The most similar chunks are retrieved from the vector index and fed to
the completion model along with the question.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of chunks to retrieve (0 = default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	answer, err := answerService.Answer(cmd.Context(), args[0], askTopK)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputAnswer(cmd, answer)
}

func outputAnswer(cmd *cobra.Command, answer *domain.Answer) error {
	cmd.Println(answer.Text)

	if len(answer.Chunks) > 0 {
		cmd.Println()
		cmd.Printf("Sources (%d chunks from %d documents, model %s):\n",
			len(answer.Chunks), len(answer.DocumentIDs), answer.Model)
		for _, chunk := range answer.Chunks {
			cmd.Printf("  %s (%.4f)\n", chunk.ID, chunk.Score)
		}
	}

	return nil
}
