// Package coach is the LLM fallback tutor. When no skill recognizes an
// exercise, the coach asks the configured provider for a short guided plan
// in the same one-hint-per-turn style the deterministic skills use.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/tutorin/internal/llm"
	"github.com/abhisek/tutorin/internal/tutor"
)

// Config bounds coach generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation bounds used by the app.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.3}
}

// Plan is a guided solution produced by the LLM.
type Plan struct {
	Title       string
	Steps       []string
	FinalAnswer string
}

// Service turns unrecognized exercises into coach plans.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a coach over the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type planOutput struct {
	Title string `json:"title"`
	Steps []struct {
		Text string `json:"text"`
	} `json:"steps"`
	FinalAnswer string `json:"final_answer"`
}

// Guide asks the provider for a step plan for an exercise no skill matched.
func (s *Service) Guide(ctx context.Context, exercise string, grade tutor.GradeBand) (*Plan, error) {
	ctx = llm.WithPurpose(ctx, "coach")

	req := llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(exercise, grade)},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coach generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coach response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, fmt.Errorf("coach returned no steps")
	}

	plan := &Plan{Title: out.Title, FinalAnswer: out.FinalAnswer}
	for _, st := range out.Steps {
		plan.Steps = append(plan.Steps, st.Text)
	}
	return plan, nil
}
