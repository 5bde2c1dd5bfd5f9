package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yuhsin-liao/bopomo/internal/llm"
)

// LLMEvent is one logged request row.
type LLMEvent struct {
	ID           int64
	CreatedAt    time.Time
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AppendLLMRequest records one request event. Satisfies llm.RequestLog.
func (s *Store) AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(session_id, provider, model, purpose, latency_ms,
			 input_tokens, output_tokens, success, error_message,
			 request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Provider, ev.Model, ev.Purpose, ev.LatencyMs,
		ev.InputTokens, ev.OutputTokens, ev.Success, ev.ErrorMessage,
		ev.RequestBody, ev.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

// RecentLLMEvents returns the newest events, newest first. A limit of 0
// means 50.
func (s *Store) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, session_id, provider, model, purpose,
		       latency_ms, input_tokens, output_tokens, success,
		       error_message, request_body, response_body
		FROM llm_events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		var ev LLMEvent
		if err := rows.Scan(
			&ev.ID, &ev.CreatedAt, &ev.SessionID, &ev.Provider, &ev.Model,
			&ev.Purpose, &ev.LatencyMs, &ev.InputTokens, &ev.OutputTokens,
			&ev.Success, &ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody,
		); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// LLMEventByID fetches one event, or nil when absent.
func (s *Store) LLMEventByID(ctx context.Context, id int64) (*LLMEvent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, session_id, provider, model, purpose,
		       latency_ms, input_tokens, output_tokens, success,
		       error_message, request_body, response_body
		FROM llm_events
		WHERE id = ?`, id)

	var ev LLMEvent
	err := row.Scan(
		&ev.ID, &ev.CreatedAt, &ev.SessionID, &ev.Provider, &ev.Model,
		&ev.Purpose, &ev.LatencyMs, &ev.InputTokens, &ev.OutputTokens,
		&ev.Success, &ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan llm event: %w", err)
	}
	return &ev, nil
}
