package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorin/internal/coach"
	"github.com/abhisek/tutorin/internal/config"
	"github.com/abhisek/tutorin/internal/llm"
	"github.com/abhisek/tutorin/internal/skills"
	"github.com/abhisek/tutorin/internal/store"
	"github.com/abhisek/tutorin/internal/tutor"
)

// services bundles everything a tutoring command needs: the engine over the
// default skill registry, the optional LLM coach, and the event store.
type services struct {
	cfg     *config.Config
	st      *store.Store
	engine  *tutor.Engine
	coach   *coach.Service
	grade   tutor.GradeBand
	subject tutor.Subject
}

func (s *services) Close() {
	if s.st != nil {
		s.st.Close()
	}
}

// buildServices loads configuration, opens the store and constructs the
// engine and (when an API key is available) the LLM coach.
func buildServices(cmd *cobra.Command) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	svc := &services{
		cfg:     cfg,
		st:      st,
		engine:  tutor.NewEngine(skills.DefaultSkills()),
		grade:   tutor.GradeBand(cfg.Grade),
		subject: tutor.Subject(cfg.Subject),
	}

	provider, err := buildProvider(cmd.Context(), cfg, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Unrecognized exercises will not be coached.")
	} else {
		svc.coach = coach.NewService(provider, coach.DefaultConfig())
	}

	return svc, nil
}

// buildProvider resolves the LLM configuration: TUTORIN_* env vars first,
// config-file overrides next, then discovery of bare provider API keys.
func buildProvider(ctx context.Context, cfg *config.Config, st *store.Store) (llm.Provider, error) {
	llmCfg := llm.ConfigFromEnv()

	if os.Getenv("TUTORIN_LLM_PROVIDER") == "" && cfg.LLM.Provider != "" {
		llmCfg.Provider = cfg.LLM.Provider
	}
	if cfg.LLM.Model != "" {
		applyModel(&llmCfg, cfg.LLM.Model)
	}

	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		llmCfg = discovered
		if cfg.LLM.Model != "" {
			applyModel(&llmCfg, cfg.LLM.Model)
		}
	}

	return llm.NewProvider(ctx, llmCfg, st)
}

// applyModel sets the model override on the active provider only.
func applyModel(c *llm.Config, model string) {
	switch c.Provider {
	case "anthropic":
		c.Anthropic.Model = model
	case "openai":
		c.OpenAI.Model = model
	case "gemini":
		c.Gemini.Model = model
	case "openrouter":
		c.OpenRouter.Model = model
	}
}
