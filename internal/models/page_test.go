package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkflowID(t *testing.T) {
	for _, id := range WorkflowIDs {
		got, err := ParseWorkflowID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := ParseWorkflowID("newsletter")
	assert.Error(t, err)
}

func TestPageStrings(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Pages {
		s := p.String()
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate page name %q", s)
		seen[s] = true
	}
}
