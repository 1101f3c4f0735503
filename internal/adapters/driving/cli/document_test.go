package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

func TestDocumentCmd_Use(t *testing.T) {
	assert.Equal(t, "document", documentCmd.Use)
}

func TestDocumentCmd_Aliases(t *testing.T) {
	assert.Contains(t, documentCmd.Aliases, "doc")
	assert.Contains(t, documentCmd.Aliases, "docs")
}

func TestDocumentCmd_HasSubcommands(t *testing.T) {
	commands := documentCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "delete")
}

// Document List Tests

func TestDocumentListCmd_HasLimitFlag(t *testing.T) {
	flag := documentListCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "100", flag.DefValue)
}

func TestDocumentListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	documentService = &mockDocumentService{
		summaries: []domain.DocumentSummary{
			{
				ID:         "doc-1",
				Filename:   "report.pdf",
				FileType:   domain.FileTypePDF,
				ChunkCount: 4,
				CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "doc-1")
	assert.Contains(t, buf.String(), "report.pdf")
	assert.Contains(t, buf.String(), "4 chunks")
}

func TestDocumentListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents ingested.")
}

func TestDocumentListCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	documentService = &mockDocumentService{
		summaries: []domain.DocumentSummary{
			{ID: "doc-1", Filename: "report.pdf", FileType: domain.FileTypePDF},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		documentListJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"document_id\"")
	assert.Contains(t, buf.String(), "\"filename\"")
}

// Document Get Tests

func TestDocumentGetCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"document", "get"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestDocumentGetCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "get", "doc-42"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Document: doc-42")
	assert.Contains(t, buf.String(), "Filename: mock.txt")
	assert.Contains(t, buf.String(), "[doc-42_chunk_0]")
	assert.Contains(t, buf.String(), "mock chunk")
}

func TestDocumentGetCmd_TextFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "get", "--text", "doc-42"})
	defer func() {
		rootCmd.SetArgs(nil)
		documentGetText = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "mock extracted text")
	assert.NotContains(t, buf.String(), "[doc-42_chunk_0]")
}

// Document Delete Tests

func TestDocumentDeleteCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "delete", "doc-42"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted document doc-42")
}

func TestDocumentDeleteCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	documentService = &mockDocumentService{err: domain.ErrNotFound}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"document", "delete", "doc-missing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentCmd_ServiceNotConfigured(t *testing.T) {
	oldService := documentService
	documentService = nil
	defer func() {
		documentService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"document", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document service not configured")
}
