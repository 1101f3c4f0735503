package domain

// RetrievedChunk is a chunk returned by a query, with its similarity score.
// The score is 1 minus the cosine distance, rounded to 4 decimal places.
type RetrievedChunk struct {
	ID    string  `json:"chunk_id"`
	Text  string  `json:"text"`
	Score float64 `json:"similarity_score"`
}

// Answer is the result of a retrieval-augmented query. It is ephemeral and
// never persisted.
type Answer struct {
	// Text is the model's answer, verbatim.
	Text string `json:"answer"`

	// Chunks are the retrieved chunks in ranked order (most similar first).
	Chunks []RetrievedChunk `json:"chunks_used"`

	// DocumentIDs are the unique source documents of the retrieved chunks.
	// The order is unspecified: the set is derived from a deduplication over
	// an unordered collection.
	DocumentIDs []string `json:"document_ids"`

	// Model identifies the completion model that produced the answer.
	Model string `json:"model"`
}
