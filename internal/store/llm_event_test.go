package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMRequestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "test-model",
			Purpose:      fmt.Sprintf("purpose-%d", i),
			InputTokens:  100 + i,
			OutputTokens: 40,
			LatencyMs:    250,
			Success:      i != 3,
		})
		require.NoError(t, err, "append %d", i)
	}

	recent, err := repo.RecentLLMRequests(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Newest first.
	assert.Equal(t, "purpose-4", recent[0].Purpose)
	assert.Equal(t, "purpose-2", recent[2].Purpose)
	for i := 1; i < len(recent); i++ {
		assert.Greater(t, recent[i-1].Sequence, recent[i].Sequence)
	}
	assert.False(t, recent[1].Success)
	assert.False(t, recent[0].Timestamp.IsZero())
}

func TestLLMRequestRecentNoLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "content-batch", Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "remediation", Success: true,
	}))

	recent, err := repo.RecentLLMRequests(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}
