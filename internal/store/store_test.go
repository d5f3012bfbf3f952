package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestAppendAndReadTurns(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	turns := []TurnEvent{
		{SessionID: "s1", Role: RoleLearner, Text: "2/3 + 5/7"},
		{SessionID: "s1", Role: RoleTutor, SkillID: "frac-addsub-diff", StepID: "mcm", Text: "Pista 1"},
		{SessionID: "s1", Role: RoleLearner, Text: "21"},
		{SessionID: "s2", Role: RoleLearner, Text: "capital de francia"},
	}
	for _, ev := range turns {
		if err := s.AppendTurn(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.SessionTurns(ctx, "s1")
	if err != nil {
		t.Fatalf("session turns: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(got))
	}
	if got[0].Text != "2/3 + 5/7" || got[2].Text != "21" {
		t.Errorf("turns out of order: %q, %q", got[0].Text, got[2].Text)
	}
	if got[1].SkillID != "frac-addsub-diff" || got[1].StepID != "mcm" {
		t.Errorf("tutor turn fields lost: %+v", got[1])
	}
	if got[0].ID == "" || got[0].ID >= got[1].ID {
		t.Errorf("ULIDs must be assigned and increasing: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	err := s.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-1",
		Purpose:      "coach",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	var count, in, out int
	s.DB().QueryRow(`SELECT COUNT(*), SUM(input_tokens), SUM(output_tokens) FROM llm_request_events`).
		Scan(&count, &in, &out)
	if count != 1 || in != 10 || out != 20 {
		t.Errorf("got count=%d in=%d out=%d", count, in, out)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	s.AppendTurn(ctx, TurnEvent{SessionID: "s1", Role: RoleLearner, Text: "mcm de 4 y 6"})
	s.AppendTurn(ctx, TurnEvent{SessionID: "s1", Role: RoleTutor, SkillID: "mcm-mcd", StepID: "res", Text: "Pista"})
	s.AppendTurn(ctx, TurnEvent{SessionID: "s1", Role: RoleLearner, Text: "12"})
	s.AppendTurn(ctx, TurnEvent{SessionID: "s1", Role: RoleTutor, SkillID: "mcm-mcd", Text: "¡Bien!", Done: true})
	s.AppendTurn(ctx, TurnEvent{SessionID: "s2", Role: RoleLearner, Text: "hola"})
	s.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "coach", InputTokens: 3, OutputTokens: 4, Success: true})

	st, err := s.Stats(ctx, path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", st.Sessions)
	}
	if st.Turns != 5 {
		t.Errorf("Turns = %d, want 5", st.Turns)
	}
	if st.Solved != 1 {
		t.Errorf("Solved = %d, want 1", st.Solved)
	}
	if st.LLMRequests != 1 || st.InputTokens != 3 || st.OutputTokens != 4 {
		t.Errorf("llm stats = %d/%d/%d", st.LLMRequests, st.InputTokens, st.OutputTokens)
	}
	if len(st.Skills) != 1 || st.Skills[0].SkillID != "mcm-mcd" || st.Skills[0].Solved != 1 {
		t.Errorf("skill stats = %+v", st.Skills)
	}
	if st.DBSizeBytes == 0 {
		t.Error("DBSizeBytes should be non-zero")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	s.AppendTurn(ctx, TurnEvent{SessionID: "s1", Role: RoleLearner, Text: "hola"})
	s.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "coach"})

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	st, _ := s.Stats(ctx, path)
	if st.Turns != 0 || st.LLMRequests != 0 {
		t.Errorf("events survived reset: %+v", st)
	}
}
