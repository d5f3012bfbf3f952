// Package chat implements the tutoring conversation screen: the learner
// types an exercise, the engine (or the LLM coach as fallback) walks them
// through it step by step.
package chat

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutorin/internal/coach"
	"github.com/abhisek/tutorin/internal/screen"
	"github.com/abhisek/tutorin/internal/store"
	"github.com/abhisek/tutorin/internal/tutor"
	"github.com/abhisek/tutorin/internal/ui/components"
	"github.com/abhisek/tutorin/internal/ui/layout"
)

type lineRole int

const (
	roleTutor lineRole = iota
	roleLearner
)

type chatLine struct {
	role lineRole
	text string
}

// coachRun tracks progress through an LLM-generated step plan. Coach steps
// are guidance only, so any answer attempt advances to the next one.
type coachRun struct {
	plan *coach.Plan
	step int
}

// ChatScreen is the main tutoring conversation.
type ChatScreen struct {
	engine    *tutor.Engine
	coach     *coach.Service
	st        *store.Store
	sessionID string
	grade     tutor.GradeBand

	lines   []chatLine
	state   *tutor.SessionState
	run     *coachRun
	input   components.TextInput
	waiting bool
	solved  int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

const greeting = "¡Hola! Escríbeme un ejercicio y lo resolvemos paso a paso."

// New creates a ChatScreen. The coach and store may be nil; the screen then
// runs recognizer-only and unlogged.
func New(engine *tutor.Engine, coachSvc *coach.Service, st *store.Store, sessionID string, grade tutor.GradeBand) *ChatScreen {
	return &ChatScreen{
		engine:    engine,
		coach:     coachSvc,
		st:        st,
		sessionID: sessionID,
		grade:     grade,
		lines:     []chatLine{{role: roleTutor, text: greeting}},
		input:     components.NewTextInput("Escribe aquí...", false, 120),
	}
}

func (s *ChatScreen) Title() string {
	return "Tutoría"
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Enviar"},
		{Key: "Esc", Description: "Volver"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coachPlanMsg:
		return s.handleCoachPlan(msg)

	case turnLoggedMsg:
		// Logging failures are non-fatal; drop them.
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// Solved returns how many exercises reached their final answer this session.
func (s *ChatScreen) Solved() int {
	return s.solved
}

func (s *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	if text == "" || s.waiting {
		return s, nil
	}
	s.input.Model.SetValue("")

	s.lines = append(s.lines, chatLine{role: roleLearner, text: text})

	var skillID, stepID string
	if s.state != nil {
		skillID = s.state.SkillID
	}
	cmds := []tea.Cmd{s.logTurn(store.RoleLearner, text, skillID, stepID, false)}

	switch {
	case s.run != nil:
		cmds = append(cmds, s.advanceCoach(text))
	case s.state != nil:
		cmds = append(cmds, s.advanceEngine(text))
	default:
		cmd := s.route(text)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return s, tea.Batch(cmds...)
}

// route offers a fresh exercise to the engine, falling back to the coach.
func (s *ChatScreen) route(text string) tea.Cmd {
	turn, ok := s.engine.Route(text, tutor.RouteOptions{Grade: s.grade})
	if ok {
		s.state = turn.State
		s.lines = append(s.lines, chatLine{role: roleTutor, text: turn.Text})
		return s.logTurn(store.RoleTutor, turn.Text, turn.SkillID, turn.StepID, false)
	}

	if s.coach == nil {
		const miss = "No reconozco el ejercicio. Escríbelo de otra forma (por ejemplo: 2/3 + 5/7)."
		s.lines = append(s.lines, chatLine{role: roleTutor, text: miss})
		return s.logTurn(store.RoleTutor, miss, "", "", false)
	}

	s.waiting = true
	return s.guideCmd(text)
}

// advanceEngine runs one ask-check-advance turn of the active step plan.
func (s *ChatScreen) advanceEngine(text string) tea.Cmd {
	turn := s.engine.Continue(s.state, text)
	s.lines = append(s.lines, chatLine{role: roleTutor, text: turn.Text})
	cmd := s.logTurn(store.RoleTutor, turn.Text, turn.SkillID, turn.StepID, turn.Done)
	if turn.Done {
		if turn.SkillID != "" {
			s.solved++
		}
		s.state = nil
	}
	return cmd
}

// advanceCoach steps through an LLM plan. Steps are guidance, not checks:
// any attempt moves forward, only "I don't know" re-shows the current step.
func (s *ChatScreen) advanceCoach(text string) tea.Cmd {
	if tutor.IsDontKnow(text) {
		reply := "No pasa nada. Intenta una parte y lo vemos. " + s.run.plan.Steps[s.run.step]
		s.lines = append(s.lines, chatLine{role: roleTutor, text: reply})
		return s.logTurn(store.RoleTutor, reply, "", "", false)
	}

	s.run.step++
	if s.run.step < len(s.run.plan.Steps) {
		reply := s.run.plan.Steps[s.run.step]
		s.lines = append(s.lines, chatLine{role: roleTutor, text: reply})
		return s.logTurn(store.RoleTutor, reply, "", "", false)
	}

	reply := fmt.Sprintf("¡Bien! Resultado final: %s.", s.run.plan.FinalAnswer)
	s.lines = append(s.lines, chatLine{role: roleTutor, text: reply})
	s.solved++
	s.run = nil
	return s.logTurn(store.RoleTutor, reply, "", "", true)
}

func (s *ChatScreen) guideCmd(exercise string) tea.Cmd {
	svc, grade := s.coach, s.grade
	return func() tea.Msg {
		plan, err := svc.Guide(context.Background(), exercise, grade)
		return coachPlanMsg{Exercise: exercise, Plan: plan, Err: err}
	}
}

func (s *ChatScreen) handleCoachPlan(msg coachPlanMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if msg.Err != nil || msg.Plan == nil || len(msg.Plan.Steps) == 0 {
		const miss = "No he sabido preparar ese ejercicio. Escríbelo de otra forma, o prueba con otro."
		s.lines = append(s.lines, chatLine{role: roleTutor, text: miss})
		return s, s.logTurn(store.RoleTutor, miss, "", "", false)
	}

	s.run = &coachRun{plan: msg.Plan}
	reply := msg.Plan.Title + "\n" + msg.Plan.Steps[0]
	s.lines = append(s.lines, chatLine{role: roleTutor, text: reply})
	return s, s.logTurn(store.RoleTutor, reply, "", "", false)
}

func (s *ChatScreen) logTurn(role store.TurnRole, text, skillID, stepID string, done bool) tea.Cmd {
	if s.st == nil {
		return nil
	}
	st, sessionID := s.st, s.sessionID
	return func() tea.Msg {
		err := st.AppendTurn(context.Background(), store.TurnEvent{
			SessionID: sessionID,
			Role:      role,
			SkillID:   skillID,
			StepID:    stepID,
			Text:      text,
			Done:      done,
		})
		return turnLoggedMsg{Err: err}
	}
}

// planProgress reports the current and total step count of the active plan,
// or ok=false when no plan is active.
func (s *ChatScreen) planProgress() (current, total int, ok bool) {
	if s.run != nil {
		return s.run.step + 1, len(s.run.plan.Steps), true
	}
	if s.state == nil {
		return 0, 0, false
	}
	for _, sk := range s.engine.Skills() {
		if sk.ID() == s.state.SkillID {
			return s.state.StepIndex + 1, len(sk.Steps(s.state.Ctx)), true
		}
	}
	return 0, 0, false
}
