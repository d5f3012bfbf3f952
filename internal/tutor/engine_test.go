package tutor_test

import (
	"strings"
	"testing"

	"github.com/abhisek/tutorin/internal/skills"
	"github.com/abhisek/tutorin/internal/tutor"
)

func newEngine() *tutor.Engine {
	return tutor.NewEngine(skills.DefaultSkills())
}

func TestRouteFractionAddWalkthrough(t *testing.T) {
	e := newEngine()
	turn, ok := e.Route("2/3 + 5/7", tutor.RouteOptions{})
	if !ok {
		t.Fatal("route failed")
	}
	if turn.Type != tutor.TurnAsk || turn.SkillID != "frac-addsub-diff" {
		t.Fatalf("turn = %+v", turn)
	}
	if !strings.Contains(turn.Text, "m.c.m. de 3 y 7") {
		t.Errorf("first ask = %q", turn.Text)
	}

	answers := []string{"21", "14 y 15", "29/21", "29/21"}
	state := turn.State
	for i, ans := range answers {
		turn = e.Continue(state, ans)
		if i < len(answers)-1 {
			if turn.Type != tutor.TurnAsk {
				t.Fatalf("after answer %d: turn = %+v", i, turn)
			}
			state = turn.State
		}
	}
	if turn.Type != tutor.TurnTell || !turn.Done {
		t.Fatalf("final turn = %+v", turn)
	}
	if turn.Text != "¡Bien! Resultado final: 29/21." {
		t.Errorf("final text = %q", turn.Text)
	}
}

func TestRouteNoMatch(t *testing.T) {
	e := newEngine()
	if turn, ok := e.Route("hola, ¿qué tal?", tutor.RouteOptions{}); ok {
		t.Errorf("expected no match, got %+v", turn)
	}
}

func TestRouteSubjectHint(t *testing.T) {
	e := newEngine()
	// "esdrújula" is a single word; with a maths hint the lengua skill
	// must be skipped and nothing matches.
	if _, ok := e.Route("esdrújula", tutor.RouteOptions{SubjectHint: tutor.SubjectMates}); ok {
		t.Error("maths hint should exclude the accentuation skill")
	}
	turn, ok := e.Route("esdrújula", tutor.RouteOptions{SubjectHint: tutor.SubjectLengua})
	if !ok || turn.SkillID != "acentuacion" {
		t.Fatalf("lengua hint: ok=%v turn=%+v", ok, turn)
	}
}

func TestContinueWrongAnswerReasks(t *testing.T) {
	e := newEngine()
	turn, ok := e.Route("mcm de 4 y 6", tutor.RouteOptions{})
	if !ok {
		t.Fatal("route failed")
	}
	state := turn.State

	wrong := e.Continue(state, "10")
	if wrong.Type != tutor.TurnAsk || wrong.Text != "Es 12." {
		t.Fatalf("wrong answer turn = %+v", wrong)
	}
	if state.StepIndex != 0 {
		t.Errorf("StepIndex advanced on wrong answer: %d", state.StepIndex)
	}

	right := e.Continue(state, "12")
	if right.Type != tutor.TurnTell || !right.Done {
		t.Fatalf("right answer turn = %+v", right)
	}
}

func TestContinueDontKnowKeepsStep(t *testing.T) {
	e := newEngine()
	turn, ok := e.Route("5/6 - 1/3", tutor.RouteOptions{})
	if !ok {
		t.Fatal("route failed")
	}
	state := turn.State
	firstAsk := turn.Text

	for _, reply := range []string{"jajaja no tengo ni idea", "no sé", "ayuda", "\U0001F914"} {
		help := e.Continue(state, reply)
		if help.Type != tutor.TurnAsk {
			t.Fatalf("%q: turn = %+v", reply, help)
		}
		if help.StepID != turn.StepID {
			t.Errorf("%q: step changed to %q", reply, help.StepID)
		}
		if !strings.HasPrefix(help.Text, "No pasa nada. Intenta una parte y lo vemos. ") {
			t.Errorf("%q: text = %q", reply, help.Text)
		}
		if !strings.HasSuffix(help.Text, firstAsk) {
			t.Errorf("%q: elaborated hint should end with the original ask", reply)
		}
		if state.StepIndex != 0 {
			t.Errorf("%q: StepIndex = %d, want 0", reply, state.StepIndex)
		}
	}
}

func TestIsDontKnow(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"no sé", true},
		{"no se", true},
		{"ni idea", true},
		{"ayuda", true},
		{"help", true},
		{"ns", true},
		{"\U0001F615", true},
		{"\U0001F4A4", true},
		{"21", false},
		{"el resultado es 7", false},
		{"pienso que 12", false},
	}
	for _, c := range cases {
		if got := tutor.IsDontKnow(c.in); got != c.want {
			t.Errorf("IsDontKnow(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestContinueStaleSkill(t *testing.T) {
	e := newEngine()
	state := &tutor.SessionState{SkillID: "gone", StepIndex: 0}
	turn := e.Continue(state, "21")
	if turn.Type != tutor.TurnTell || !turn.Done {
		t.Fatalf("turn = %+v", turn)
	}
	if turn.Text != "He perdido el hilo. Repíteme el ejercicio." {
		t.Errorf("text = %q", turn.Text)
	}
}

func TestContinueAfterDoneTellsLostThread(t *testing.T) {
	e := newEngine()
	turn, ok := e.Route("mcm de 4 y 6", tutor.RouteOptions{})
	if !ok {
		t.Fatal("route failed")
	}
	state := turn.State

	done := e.Continue(state, "12")
	if done.Type != tutor.TurnTell || !done.Done {
		t.Fatalf("turn = %+v", done)
	}

	// A client replaying the finished state must get a tell, not a panic.
	again := e.Continue(state, "12")
	if again.Type != tutor.TurnTell || !again.Done {
		t.Fatalf("replayed turn = %+v", again)
	}
	if again.Text != "He perdido el hilo. Repíteme el ejercicio." {
		t.Errorf("text = %q", again.Text)
	}
}

func TestStepIndexMonotonic(t *testing.T) {
	e := newEngine()
	turn, ok := e.Route("2/3 + 5/7", tutor.RouteOptions{})
	if !ok {
		t.Fatal("route failed")
	}
	state := turn.State

	replies := []string{"no sé", "999", "21", "no sé", "1 y 2", "14 y 15"}
	prev := 0
	for _, r := range replies {
		e.Continue(state, r)
		if state.StepIndex < prev {
			t.Fatalf("StepIndex went backwards: %d -> %d", prev, state.StepIndex)
		}
		prev = state.StepIndex
	}
	if state.StepIndex != 2 {
		t.Errorf("StepIndex = %d, want 2", state.StepIndex)
	}
}

func TestIndependentSessionsDoNotInteract(t *testing.T) {
	e := newEngine()
	t1, _ := e.Route("mcm de 4 y 6", tutor.RouteOptions{})
	t2, _ := e.Route("2/3 + 5/7", tutor.RouteOptions{})

	e.Continue(t2.State, "21")
	if t1.State.StepIndex != 0 {
		t.Errorf("session 1 moved: %d", t1.State.StepIndex)
	}
	if t2.State.StepIndex != 1 {
		t.Errorf("session 2 StepIndex = %d, want 1", t2.State.StepIndex)
	}

	done := e.Continue(t1.State, "12")
	if done.Type != tutor.TurnTell || !done.Done {
		t.Fatalf("session 1 final turn = %+v", done)
	}
}

func TestCapitalsScenario(t *testing.T) {
	e := newEngine()
	turn, ok := e.Route("capital de francia", tutor.RouteOptions{})
	if !ok {
		t.Fatal("route failed")
	}
	wrong := e.Continue(turn.State, "londres")
	if wrong.Type != tutor.TurnAsk || wrong.Text != "Es parís." {
		t.Fatalf("turn = %+v", wrong)
	}
	right := e.Continue(turn.State, "paris")
	if right.Type != tutor.TurnTell || right.Text != "¡Bien! Resultado final: parís." {
		t.Fatalf("turn = %+v", right)
	}
}

// stubSkill exercises engine behavior that the real skills never trigger.
type stubSkill struct{ hint string }

func (s stubSkill) ID() string                               { return "stub" }
func (s stubSkill) Title() string                            { return "Stub" }
func (s stubSkill) Subject() tutor.Subject                   { return tutor.SubjectGeneral }
func (s stubSkill) FinalAnswer(*tutor.ProblemContext) string { return "ok" }

func (s stubSkill) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	return &tutor.ProblemContext{Raw: raw}, true
}

func (s stubSkill) Steps(*tutor.ProblemContext) []tutor.Step {
	return []tutor.Step{{
		ID:  "s",
		Ask: func(*tutor.ProblemContext) string { return "?" },
		Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
			if t == "yes" {
				return tutor.CheckResult{Ok: true}
			}
			return tutor.CheckResult{NextHint: s.hint}
		},
	}}
}

func TestDefaultFeedbackAndExtraHint(t *testing.T) {
	e := tutor.NewEngine([]tutor.Skill{stubSkill{hint: "mira el ejemplo"}})
	turn, ok := e.Route("anything", tutor.RouteOptions{})
	if !ok {
		t.Fatal("route failed")
	}
	wrong := e.Continue(turn.State, "nope")
	want := "Casi. Revisa y dime el resultado.\nPista extra: mira el ejemplo"
	if wrong.Text != want {
		t.Errorf("text = %q, want %q", wrong.Text, want)
	}
}
