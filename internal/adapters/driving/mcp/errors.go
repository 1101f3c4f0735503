// Package mcp provides an MCP (Model Context Protocol) server adapter for
// AskDoc. It lets AI assistants ask questions over the local document index
// and manage its contents.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
