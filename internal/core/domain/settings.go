package domain

// Default configuration values. Chunk sizes are approximate tokens;
// the upload limit is bytes.
const (
	DefaultChunkSize      = 500
	DefaultChunkOverlap   = 50
	DefaultMaxUploadBytes = 10 * 1024 * 1024
	DefaultTopK           = 5
	DefaultMaxTopK        = 10
	DefaultEmbeddingModel = "openai/text-embedding-3-small"
	DefaultLLMModel       = "openai/gpt-4o-mini"
	DefaultBaseURL        = "https://openrouter.ai/api/v1"
	DefaultCollection     = "documents"
)

// Configuration keys in dot notation, as stored in the config file.
const (
	KeyDataDir        = "data_dir"
	KeyChunkSize      = "chunk.size"
	KeyChunkOverlap   = "chunk.overlap"
	KeyMaxUploadBytes = "ingest.max_upload_bytes"
	KeyTopK           = "query.top_k"
	KeyMaxTopK        = "query.max_top_k"
	KeyCollection     = "index.collection"
	KeyAPIKey         = "openrouter.api_key"
	KeyBaseURL        = "openrouter.base_url"
	KeyEmbeddingModel = "openrouter.embedding_model"
	KeyLLMModel       = "openrouter.llm_model"
)

// Environment variables overriding config file values.
const (
	EnvDataDir        = "ASKDOC_DATA_DIR"
	EnvChunkSize      = "ASKDOC_CHUNK_SIZE"
	EnvChunkOverlap   = "ASKDOC_CHUNK_OVERLAP"
	EnvMaxUploadBytes = "ASKDOC_MAX_UPLOAD_BYTES"
	EnvTopK           = "ASKDOC_TOP_K"
	EnvMaxTopK        = "ASKDOC_MAX_TOP_K"
	EnvCollection     = "ASKDOC_COLLECTION"
	EnvAPIKey         = "OPENROUTER_API_KEY"
	EnvBaseURL        = "ASKDOC_BASE_URL"
	EnvEmbeddingModel = "ASKDOC_EMBEDDING_MODEL"
	EnvLLMModel       = "ASKDOC_LLM_MODEL"
)

// Settings is the full application configuration surface.
type Settings struct {
	// DataDir is the base directory for all persisted state.
	DataDir string

	// StoragePath is where original uploads are written.
	StoragePath string

	// VectorDBPath is the vector index database file.
	VectorDBPath string

	// Collection is the vector index collection name.
	Collection string

	// ChunkSize is the approximate token budget per chunk.
	ChunkSize int

	// ChunkOverlap is the number of words carried between adjacent chunks.
	ChunkOverlap int

	// MaxUploadBytes is the upload size limit.
	MaxUploadBytes int64

	// DefaultTopK is the number of chunks retrieved when a query does not
	// specify one.
	DefaultTopK int

	// MaxTopK caps the number of chunks retrieved per query.
	MaxTopK int

	// EmbeddingModel is the remote embedding model identifier.
	EmbeddingModel string

	// LLMModel is the remote completion model identifier.
	LLMModel string

	// BaseURL is the OpenRouter API base URL.
	BaseURL string

	// APIKey is the OpenRouter credential. Empty means unconfigured; remote
	// calls fail with ErrAuthRequired until it is set.
	APIKey string
}

// DefaultSettings returns settings with every field defaulted except the
// paths, which depend on the resolved data directory.
func DefaultSettings() Settings {
	return Settings{
		Collection:     DefaultCollection,
		ChunkSize:      DefaultChunkSize,
		ChunkOverlap:   DefaultChunkOverlap,
		MaxUploadBytes: DefaultMaxUploadBytes,
		DefaultTopK:    DefaultTopK,
		MaxTopK:        DefaultMaxTopK,
		EmbeddingModel: DefaultEmbeddingModel,
		LLMModel:       DefaultLLMModel,
		BaseURL:        DefaultBaseURL,
	}
}
