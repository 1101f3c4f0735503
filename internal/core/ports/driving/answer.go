package driving

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// AnswerService answers natural-language questions over the indexed corpus.
type AnswerService interface {
	// Answer retrieves the topK most similar chunks for the question and
	// generates a grounded answer. topK is clamped to the configured range;
	// when no chunks match, a fixed fallback answer is returned without
	// calling the completion service.
	Answer(ctx context.Context, question string, topK int) (*domain.Answer, error)
}
