package openrouter

import (
	"context"
	"fmt"
	"time"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Embedding timeouts. Batch calls carry more payload and get more time.
const (
	DefaultEmbedTimeout      = 30 * time.Second
	DefaultEmbedBatchTimeout = 60 * time.Second
)

// EmbeddingConfig holds configuration for the embedding service.
type EmbeddingConfig struct {
	// APIKey is the OpenRouter API key. Empty is allowed at construction;
	// calls fail with domain.ErrAuthRequired until one is configured.
	APIKey string

	// BaseURL is the API base URL (default: https://openrouter.ai/api/v1).
	BaseURL string

	// Model is the embedding model to use (default: openai/text-embedding-3-small).
	Model string

	// Timeout is the single-text request timeout (default: 30s).
	Timeout time.Duration

	// BatchTimeout is the batch request timeout (default: 60s).
	BatchTimeout time.Duration
}

// EmbeddingService generates embeddings via the OpenRouter API.
type EmbeddingService struct {
	client       *client
	model        string
	timeout      time.Duration
	batchTimeout time.Duration
}

// embeddingRequest is the /embeddings request format.
type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embeddingResponse is the /embeddings response format.
type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// NewEmbeddingService creates a new OpenRouter embedding service.
func NewEmbeddingService(cfg EmbeddingConfig) *EmbeddingService {
	if cfg.Model == "" {
		cfg.Model = domain.DefaultEmbeddingModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultEmbedTimeout
	}
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = DefaultEmbedBatchTimeout
	}

	return &EmbeddingService{
		client:       newClient(cfg.APIKey, cfg.BaseURL, "embedding"),
		model:        cfg.Model,
		timeout:      cfg.Timeout,
		batchTimeout: cfg.BatchTimeout,
	}
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := s.embed(ctx, []string{text}, s.timeout)
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one call.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	return s.embed(ctx, texts, s.batchTimeout)
}

func (s *EmbeddingService) embed(ctx context.Context, texts []string, timeout time.Duration) ([][]float32, error) {
	reqBody := embeddingRequest{
		Model: s.model,
		Input: texts,
	}

	var embedResp embeddingResponse
	if err := s.client.postJSON(ctx, "/embeddings", timeout, reqBody, &embedResp); err != nil {
		return nil, err
	}

	if len(embedResp.Data) != len(texts) {
		return nil, fmt.Errorf("openrouter: expected %d embeddings, got %d", len(texts), len(embedResp.Data))
	}

	// Convert float64 to float32 and order by index.
	embeddings := make([][]float32, len(texts))
	for _, data := range embedResp.Data {
		if data.Index < 0 || data.Index >= len(texts) {
			return nil, fmt.Errorf("openrouter: embedding index %d out of range", data.Index)
		}
		embedding := make([]float32, len(data.Embedding))
		for i, v := range data.Embedding {
			embedding[i] = float32(v)
		}
		embeddings[data.Index] = embedding
	}

	return embeddings, nil
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return s.model
}
