package store

import (
	"context"
	"fmt"
	"time"
)

// TurnRole distinguishes who produced a turn event.
type TurnRole string

const (
	RoleLearner TurnRole = "learner"
	RoleTutor   TurnRole = "tutor"
)

// TurnEvent is one exchange in a tutoring session: either what the learner
// typed or what the tutor replied.
type TurnEvent struct {
	ID        string
	SessionID string
	Role      TurnRole
	SkillID   string
	StepID    string
	Text      string
	Done      bool
	CreatedAt time.Time
}

// AppendTurn records a turn event. The ID is assigned by the store.
func (s *Store) AppendTurn(ctx context.Context, ev TurnEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO turn_events (id, session_id, role, skill_id, step_id, text, done, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.newID(), ev.SessionID, string(ev.Role), ev.SkillID, ev.StepID,
		ev.Text, boolInt(ev.Done), ev.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append turn event: %w", err)
	}
	return nil
}

// SessionTurns returns the turns of one session in insertion order.
func (s *Store) SessionTurns(ctx context.Context, sessionID string) ([]TurnEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, role, skill_id, step_id, text, done, created_at
		FROM turn_events WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query session turns: %w", err)
	}
	defer rows.Close()

	var out []TurnEvent
	for rows.Next() {
		var ev TurnEvent
		var role, created string
		var done int
		if err := rows.Scan(&ev.ID, &ev.SessionID, &role, &ev.SkillID, &ev.StepID, &ev.Text, &done, &created); err != nil {
			return nil, fmt.Errorf("scan turn event: %w", err)
		}
		ev.Role = TurnRole(role)
		ev.Done = done != 0
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
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
}

// EventRepo provides append access to LLM telemetry. The llm package takes
// this narrow interface so tests can substitute an in-memory recorder.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// AppendLLMRequest records an LLM API call event.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO llm_request_events
			(id, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.newID(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolInt(data.Success), data.ErrorMessage, data.RequestBody, data.ResponseBody,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

// Reset deletes all stored events. Used by the reset command.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"turn_events", "llm_request_events"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
