package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	server, err := NewServer(&Ports{Answer: &mockAnswerService{}})
	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewServerRequiresAnswerService(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingAnswerService)
}
