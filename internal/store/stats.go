package store

import (
	"context"
	"os"
	"time"
)

// Stats summarizes stored activity.
type Stats struct {
	DBPath       string
	DBSizeBytes  int64
	Sessions     int
	Turns        int
	Solved       int
	LLMRequests  int
	InputTokens  int
	OutputTokens int
	Skills       []SkillStats
}

// SkillStats holds per-skill exercise counts.
type SkillStats struct {
	SkillID string
	Asked   int
	Solved  int
}

// Stats returns activity statistics over all stored events.
func (s *Store) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT session_id) FROM turn_events`).Scan(&st.Sessions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM turn_events`).Scan(&st.Turns)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM turn_events WHERE done = 1`).Scan(&st.Solved)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(input_tokens),0), COALESCE(SUM(output_tokens),0) FROM llm_request_events`).
		Scan(&st.LLMRequests, &st.InputTokens, &st.OutputTokens)

	rows, err := s.db.QueryContext(ctx, `
		SELECT skill_id,
		       COUNT(DISTINCT session_id) AS asked,
		       SUM(done) AS solved
		FROM turn_events
		WHERE skill_id != '' AND role = 'tutor'
		GROUP BY skill_id ORDER BY asked DESC, skill_id`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var sk SkillStats
		if err := rows.Scan(&sk.SkillID, &sk.Asked, &sk.Solved); err != nil {
			return st, err
		}
		st.Skills = append(st.Skills, sk)
	}
	return st, rows.Err()
}

// SessionSummary is a compact view of one tutoring session.
type SessionSummary struct {
	SessionID string
	StartedAt time.Time
	Turns     int
	Solved    bool
	SkillIDs  string
}

// RecentSessions returns summaries of the most recent sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, MIN(created_at), COUNT(*), MAX(done),
		       COALESCE(GROUP_CONCAT(DISTINCT NULLIF(skill_id, '')), '')
		FROM turn_events
		GROUP BY session_id ORDER BY MIN(id) DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var started string
		var solved int
		if err := rows.Scan(&sum.SessionID, &started, &sum.Turns, &solved, &sum.SkillIDs); err != nil {
			return nil, err
		}
		sum.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		sum.Solved = solved != 0
		out = append(out, sum)
	}
	return out, rows.Err()
}
