package mcp

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed documents"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"number of chunks to retrieve (default 5)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer      string        `json:"answer"`
	ChunksUsed  []ChunkOutput `json:"chunks_used"`
	DocumentIDs []string      `json:"document_ids"`
	Model       string        `json:"model"`
}

// ChunkOutput represents a retrieved chunk in a tool result.
type ChunkOutput struct {
	ChunkID         string  `json:"chunk_id"`
	Text            string  `json:"text"`
	SimilarityScore float64 `json:"similarity_score"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct {
	Offset int `json:"offset,omitempty" jsonschema:"number of documents to skip"`
	Limit  int `json:"limit,omitempty" jsonschema:"maximum documents to return (default 100)"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a document summary in a tool result.
type DocumentOutput struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	ChunkCount int    `json:"chunk_count"`
	CreatedAt  string `json:"created_at"`
}

// IngestFileInput is the input schema for the ingest_file tool.
type IngestFileInput struct {
	Path string `json:"path" jsonschema:"absolute path of the PDF, DOCX, or TXT file to ingest"`
}

// IngestFileOutput is the output schema for the ingest_file tool.
type IngestFileOutput struct {
	DocumentID string `json:"document_id"`
	ChunkCount int    `json:"chunk_count"`
}

// DeleteDocumentInput is the input schema for the delete_document tool.
type DeleteDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"identifier of the document to delete"`
}

// DeleteDocumentOutput is the output schema for the delete_document tool.
type DeleteDocumentOutput struct {
	Deleted bool `json:"deleted"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using the indexed documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the ingested documents",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest_file",
		Description: "Ingest a local PDF, DOCX, or TXT file into the index",
	}, s.handleIngestFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_document",
		Description: "Delete an ingested document and its chunks",
	}, s.handleDeleteDocument)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Answer.Answer(ctx, input.Question, input.TopK)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:      answer.Text,
		ChunksUsed:  make([]ChunkOutput, len(answer.Chunks)),
		DocumentIDs: answer.DocumentIDs,
		Model:       answer.Model,
	}
	for i, chunk := range answer.Chunks {
		output.ChunksUsed[i] = ChunkOutput{
			ChunkID:         chunk.ID,
			Text:            chunk.Text,
			SimilarityScore: chunk.Score,
		}
	}

	return nil, output, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	if s.ports.Document == nil {
		return nil, ListDocumentsOutput{}, errors.New("document service unavailable")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 100
	}

	summaries, err := s.ports.Document.List(ctx, input.Offset, limit)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(summaries)),
		Count:     len(summaries),
	}
	for i, doc := range summaries {
		output.Documents[i] = DocumentOutput{
			DocumentID: doc.ID,
			Filename:   doc.Filename,
			FileType:   doc.FileType.String(),
			ChunkCount: doc.ChunkCount,
			CreatedAt:  doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return nil, output, nil
}

// handleIngestFile handles the ingest_file tool invocation.
func (s *Server) handleIngestFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestFileInput,
) (*mcp.CallToolResult, IngestFileOutput, error) {
	if s.ports.Ingest == nil {
		return nil, IngestFileOutput{}, errors.New("ingest service unavailable")
	}

	content, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, IngestFileOutput{}, fmt.Errorf("reading file: %w", err)
	}

	ext := filepath.Ext(input.Path)
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		mimeType = strings.TrimPrefix(ext, ".")
	}

	result, err := s.ports.Ingest.Ingest(ctx, filepath.Base(input.Path), content, mimeType)
	if err != nil {
		return nil, IngestFileOutput{}, err
	}

	return nil, IngestFileOutput{
		DocumentID: result.DocumentID,
		ChunkCount: result.ChunkCount,
	}, nil
}

// handleDeleteDocument handles the delete_document tool invocation.
func (s *Server) handleDeleteDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteDocumentInput,
) (*mcp.CallToolResult, DeleteDocumentOutput, error) {
	if s.ports.Document == nil {
		return nil, DeleteDocumentOutput{}, errors.New("document service unavailable")
	}

	if err := s.ports.Document.Delete(ctx, input.DocumentID); err != nil {
		return nil, DeleteDocumentOutput{}, err
	}

	return nil, DeleteDocumentOutput{Deleted: true}, nil
}
