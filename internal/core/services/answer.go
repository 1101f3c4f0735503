package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// FallbackAnswer is returned when retrieval finds nothing. No completion
// call is made in that case.
const FallbackAnswer = "No relevant documents found in the database."

// answerSystemPrompt is the fixed system instruction for answer generation.
const answerSystemPrompt = "You are a helpful assistant that answers questions based on provided context documents."

// answerPromptTemplate embeds the context block and the question.
const answerPromptTemplate = `You are a helpful assistant that answers questions based on the provided context documents.

Context Documents:
%s

Question: %s

Instructions:
- Answer the question based ONLY on the provided context
- If the context doesn't contain enough information, say so
- Cite which chunks you used in your answer
- Be concise and accurate

Answer:`

// answerTemperature keeps generation low-randomness so answers stay grounded
// in the retrieved context.
const answerTemperature = 0.3

// AnswerService answers questions by retrieving similar chunks and feeding
// them to the completion service.
type AnswerService struct {
	embedder    driven.EmbeddingService
	llm         driven.LLMService
	index       driven.VectorIndex
	defaultTopK int
	maxTopK     int
}

// NewAnswerService creates a new answer service. The vector index may be nil
// when it failed to initialise; queries then fail fast.
func NewAnswerService(
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	index driven.VectorIndex,
	defaultTopK, maxTopK int,
) *AnswerService {
	if defaultTopK <= 0 {
		defaultTopK = domain.DefaultTopK
	}
	if maxTopK <= 0 {
		maxTopK = domain.DefaultMaxTopK
	}
	return &AnswerService{
		embedder:    embedder,
		llm:         llm,
		index:       index,
		defaultTopK: defaultTopK,
		maxTopK:     maxTopK,
	}
}

// Answer retrieves the topK most similar chunks for the question and
// generates a grounded answer.
func (s *AnswerService) Answer(ctx context.Context, question string, topK int) (*domain.Answer, error) {
	if s.index == nil {
		return nil, domain.ErrVectorIndexUnavailable
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	topK = s.clampTopK(topK)
	logger.Section("Answer")
	logger.Debug("retrieving top %d chunks", topK)

	embedding, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	hits, err := s.index.Query(ctx, embedding, topK)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	if len(hits) == 0 {
		logger.Info("no chunks retrieved, returning fallback answer")
		return &domain.Answer{
			Text:        FallbackAnswer,
			Chunks:      []domain.RetrievedChunk{},
			DocumentIDs: []string{},
			Model:       s.llm.ModelName(),
		}, nil
	}

	chunks := make([]domain.RetrievedChunk, len(hits))
	docIDs := make(map[string]struct{}, len(hits))
	var contextBlock strings.Builder
	for i, hit := range hits {
		chunks[i] = domain.RetrievedChunk{
			ID:    hit.ChunkID,
			Text:  hit.Text,
			Score: roundScore(1 - hit.Distance),
		}
		docIDs[hit.Metadata.DocumentID] = struct{}{}

		if i > 0 {
			contextBlock.WriteString("\n\n")
		}
		fmt.Fprintf(&contextBlock, "[Chunk %d]: %s", i+1, hit.Text)
	}

	prompt := fmt.Sprintf(answerPromptTemplate, contextBlock.String(), question)
	text, err := s.llm.Generate(ctx, answerSystemPrompt, prompt, driven.GenerateOptions{
		Temperature: answerTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	documentIDs := make([]string, 0, len(docIDs))
	for id := range docIDs {
		documentIDs = append(documentIDs, id)
	}

	logger.Info("answered with %d chunks from %d documents", len(chunks), len(documentIDs))
	return &domain.Answer{
		Text:        text,
		Chunks:      chunks,
		DocumentIDs: documentIDs,
		Model:       s.llm.ModelName(),
	}, nil
}

// clampTopK bounds the requested chunk count to [1, maxTopK], substituting
// the default when the caller passed zero or less.
func (s *AnswerService) clampTopK(topK int) int {
	if topK <= 0 {
		topK = s.defaultTopK
	}
	if topK > s.maxTopK {
		topK = s.maxTopK
	}
	if topK < 1 {
		topK = 1
	}
	return topK
}

// roundScore rounds a similarity score to 4 decimal places.
func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
