package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuhsin-liao/bopomo/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMRequest(ctx, llm.RequestEvent{
		SessionID:    "run-1",
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz-gen",
		LatencyMs:    120,
		InputTokens:  300,
		OutputTokens: 900,
		Success:      true,
		RequestBody:  "[user]\nCreate a quiz",
		ResponseBody: `{"questions":[]}`,
	}))
	require.NoError(t, s.AppendLLMRequest(ctx, llm.RequestEvent{
		SessionID:    "run-1",
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz-gen",
		Success:      false,
		ErrorMessage: "provider unavailable",
	}))

	events, err := s.RecentLLMEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	require.False(t, events[0].Success)
	require.Equal(t, "provider unavailable", events[0].ErrorMessage)
	require.True(t, events[1].Success)
	require.Equal(t, 900, events[1].OutputTokens)
	require.Equal(t, "run-1", events[1].SessionID)
}

func TestRecentLLMEvents_Limit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendLLMRequest(ctx, llm.RequestEvent{
			SessionID: "run-1", Provider: "mock", Model: "mock",
			Purpose: "quiz-gen", Success: true,
		}))
	}

	events, err := s.RecentLLMEvents(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
}

func TestLLMEventByID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMRequest(ctx, llm.RequestEvent{
		SessionID: "run-2", Provider: "mock", Model: "mock",
		Purpose: "preview", Success: true, ResponseBody: "{}",
	}))

	events, err := s.RecentLLMEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev, err := s.LLMEventByID(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, ev)
	require.Equal(t, "preview", ev.Purpose)

	missing, err := s.LLMEventByID(ctx, 99999)
	require.NoError(t, err)
	require.Nil(t, missing)
}
