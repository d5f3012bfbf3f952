package coach

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/tutorin/internal/llm"
	"github.com/abhisek/tutorin/internal/tutor"
)

func validPlanJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Problema de reparto",
		"steps": [
			{"text": "¿Cuántos caramelos hay en total?"},
			{"text": "Reparte el total entre 4. ¿Cuántos tocan a cada uno?"}
		],
		"final_answer": "6"
	}`)
}

func TestGuideParsesPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig())

	plan, err := svc.Guide(t.Context(), "reparte 24 caramelos entre 4 niños", tutor.Grade34)
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if plan.Title != "Problema de reparto" {
		t.Errorf("title = %q", plan.Title)
	}
	if len(plan.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(plan.Steps))
	}
	if plan.Steps[0] != "¿Cuántos caramelos hay en total?" {
		t.Errorf("step 0 = %q", plan.Steps[0])
	}
	if plan.FinalAnswer != "6" {
		t.Errorf("final answer = %q", plan.FinalAnswer)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != PlanSchema {
		t.Error("request must carry the plan schema")
	}
	if req.System == "" {
		t.Error("system prompt missing")
	}
}

func TestGuideRejectsEmptyPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "x", "steps": [], "final_answer": ""}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Guide(t.Context(), "algo raro", ""); err == nil {
		t.Fatal("expected error for empty step list")
	}
}

func TestGuidePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Guide(t.Context(), "2/3 + 5/7", ""); err == nil {
		t.Fatal("expected provider error")
	}
}
