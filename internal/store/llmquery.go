package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMEvent is a full LLM request/response record as stored.
type LLMEvent struct {
	ID           string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	CreatedAt    time.Time
}

// RecentLLMEvents returns the most recent LLM events, newest first.
func (s *Store) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, request_body, response_body, created_at
		FROM llm_request_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// GetLLMEvent returns a single event by ID, or nil if not found.
func (s *Store) GetLLMEvent(ctx context.Context, id string) (*LLMEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, request_body, response_body, created_at
		FROM llm_request_events WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	ev, err := scanLLMEvent(rows)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func scanLLMEvent(rows *sql.Rows) (LLMEvent, error) {
	var ev LLMEvent
	var success int
	var errMsg, reqBody, respBody sql.NullString
	var created string
	if err := rows.Scan(&ev.ID, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &success,
		&errMsg, &reqBody, &respBody, &created); err != nil {
		return ev, fmt.Errorf("scan llm event: %w", err)
	}
	ev.Success = success != 0
	ev.ErrorMessage = errMsg.String
	ev.RequestBody = reqBody.String
	ev.ResponseBody = respBody.String
	ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return ev, nil
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMUsageByPurpose returns aggregated usage grouped by purpose.
func (s *Store) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens),
		       CAST(AVG(latency_ms) AS INTEGER)
		FROM llm_request_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan purpose usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMUsageByModel returns aggregated usage grouped by model, for cost
// estimation against the pricing table.
func (s *Store) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM llm_request_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
