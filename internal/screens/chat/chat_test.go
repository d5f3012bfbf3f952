package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutorin/internal/coach"
	"github.com/abhisek/tutorin/internal/skills"
	"github.com/abhisek/tutorin/internal/tutor"
)

var coachPlanFixture = coach.Plan{
	Title:       "Problema de reparto",
	Steps:       []string{"¿Cuántos caramelos hay en total?", "Reparte el total entre 4."},
	FinalAnswer: "6",
}

func newTestChat() *ChatScreen {
	engine := tutor.NewEngine(skills.DefaultSkills())
	return New(engine, nil, nil, "test-session", tutor.Grade56)
}

// send types text into the input and presses enter, draining any async
// commands so route/continue run synchronously.
func send(t *testing.T, s *ChatScreen, text string) {
	t.Helper()
	s.input.Model.SetValue(text)
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if updated != s {
		t.Fatalf("Update returned a different screen")
	}
	drain(s, cmd)
}

func drain(s *ChatScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(s, c)
		}
		return
	}
	_, next := s.Update(msg)
	drain(s, next)
}

func lastTutorLine(t *testing.T, s *ChatScreen) string {
	t.Helper()
	for i := len(s.lines) - 1; i >= 0; i-- {
		if s.lines[i].role == roleTutor {
			return s.lines[i].text
		}
	}
	t.Fatal("no tutor line in transcript")
	return ""
}

func TestGreetingShownFirst(t *testing.T) {
	s := newTestChat()
	if len(s.lines) != 1 || s.lines[0].role != roleTutor {
		t.Fatalf("expected a single tutor greeting, got %d lines", len(s.lines))
	}
}

func TestRoutedExerciseOpensPlan(t *testing.T) {
	s := newTestChat()
	send(t, s, "2/3 + 5/7")

	if s.state == nil {
		t.Fatal("expected active session state after routing")
	}
	got := lastTutorLine(t, s)
	if !strings.Contains(got, "m.c.m.") {
		t.Errorf("opening ask = %q, want the common-denominator step", got)
	}

	cur, total, ok := s.planProgress()
	if !ok || cur != 1 || total != 4 {
		t.Errorf("planProgress() = (%d, %d, %v), want (1, 4, true)", cur, total, ok)
	}
}

func TestFullWalkthroughCountsSolved(t *testing.T) {
	s := newTestChat()
	send(t, s, "2/3 + 5/7")
	for _, answer := range []string{"21", "14/21 y 15/21", "29/21", "29/21"} {
		send(t, s, answer)
	}

	if s.state != nil {
		t.Error("state should be cleared after the final answer")
	}
	if s.Solved() != 1 {
		t.Errorf("Solved() = %d, want 1", s.Solved())
	}
	got := lastTutorLine(t, s)
	if !strings.Contains(got, "29/21") {
		t.Errorf("final turn = %q, want the final answer", got)
	}
}

func TestWrongAnswerDoesNotAdvance(t *testing.T) {
	s := newTestChat()
	send(t, s, "2/3 + 5/7")
	send(t, s, "99")

	cur, _, ok := s.planProgress()
	if !ok || cur != 1 {
		t.Errorf("step after wrong answer = %d, want 1", cur)
	}
	if s.Solved() != 0 {
		t.Errorf("Solved() = %d, want 0", s.Solved())
	}
}

func TestUnrecognizedWithoutCoach(t *testing.T) {
	s := newTestChat()
	send(t, s, "hola, ¿qué tal?")

	if s.state != nil {
		t.Error("no state should be created for unrecognized text")
	}
	got := lastTutorLine(t, s)
	if !strings.Contains(got, "No reconozco") {
		t.Errorf("fallback = %q, want the no-match message", got)
	}
}

func TestCoachPlanWalkthrough(t *testing.T) {
	s := newTestChat()
	plan := &coachPlanFixture
	s.Update(coachPlanMsg{Exercise: "reparte 24 caramelos entre 4", Plan: plan})

	if s.run == nil {
		t.Fatal("expected an active coach run")
	}

	// Any attempt advances a coach step; "no sé" re-shows it.
	send(t, s, "no sé")
	if s.run.step != 0 {
		t.Errorf("step after don't-know = %d, want 0", s.run.step)
	}

	send(t, s, "24")
	if s.run == nil || s.run.step != 1 {
		t.Fatal("expected advance to the second coach step")
	}

	send(t, s, "6")
	if s.run != nil {
		t.Error("coach run should close after the last step")
	}
	if s.Solved() != 1 {
		t.Errorf("Solved() = %d, want 1", s.Solved())
	}
	got := lastTutorLine(t, s)
	if !strings.Contains(got, "Resultado final: 6") {
		t.Errorf("final turn = %q", got)
	}
}
