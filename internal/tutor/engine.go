package tutor

import (
	"fmt"
	"regexp"

	"github.com/abhisek/tutorin/internal/textnorm"
)

// dontKnowRe recognizes "I don't know" replies: the usual Spanish phrases,
// the odd English "help", and the despair emoji a kid might send. It runs on
// the accent-folded form ("no sé" arrives as "no se"); \b is ASCII-only in
// RE2, so the pattern must never end a word on an accented vowel.
var dontKnowRe = regexp.MustCompile(`(\bno\s*se\b|ni idea|ayuda|help|\bns\b)|[\x{1F615}\x{1F914}\x{1F974}\x{1F4A4}]`)

// Engine routes exercises to skills and advances step plans. The skill list
// is injected at construction and tried in order; the first match wins, so
// registration order is part of the routing contract.
type Engine struct {
	skills []Skill
}

// NewEngine creates an Engine over the given skills in routing order.
func NewEngine(skills []Skill) *Engine {
	return &Engine{skills: skills}
}

// Skills returns the registered skills in routing order.
func (e *Engine) Skills() []Skill {
	out := make([]Skill, len(e.skills))
	copy(out, e.skills)
	return out
}

// RouteOptions restricts routing. A zero value applies no restriction.
type RouteOptions struct {
	Grade       GradeBand
	SubjectHint Subject
}

// Route normalizes the exercise text once and offers it to each skill in
// registration order. On the first match it builds the plan and returns the
// opening ask turn with fresh session state. Returns false when no skill
// recognizes the text — the caller should fall back to another tutor (the
// LLM coach, in this app).
func (e *Engine) Route(rawUserText string, opts RouteOptions) (*Turn, bool) {
	normalized := textnorm.Normalize(rawUserText)
	for _, sk := range e.skills {
		if opts.SubjectHint != "" && sk.Subject() != opts.SubjectHint {
			continue
		}
		ctx, ok := sk.MatchAndParse(normalized, opts.Grade)
		if !ok {
			continue
		}
		ctx.Grade = opts.Grade
		ctx.Subject = sk.Subject()
		plan := sk.Steps(ctx)
		state := &SessionState{SkillID: sk.ID(), StepIndex: 0, Ctx: ctx}
		return &Turn{
			Type:    TurnAsk,
			Text:    plan[0].Ask(ctx),
			StepID:  plan[0].ID,
			SkillID: sk.ID(),
			State:   state,
		}, true
	}
	return nil, false
}

// Continue validates the learner's reply against the current step and either
// re-asks with feedback, advances to the next step, or closes the exercise
// with the skill's final answer. "I don't know" replies re-ask the same step
// with an elaborated hint and never consume progress.
func (e *Engine) Continue(state *SessionState, userText string) *Turn {
	sk := e.findSkill(state.SkillID)
	if sk == nil {
		// Stale state, e.g. a reduced skill set after restart.
		return &Turn{Type: TurnTell, Text: "He perdido el hilo. Repíteme el ejercicio.", Done: true}
	}

	plan := sk.Steps(state.Ctx)
	if state.StepIndex < 0 || state.StepIndex >= len(plan) {
		// Replayed state from a finished exercise.
		return &Turn{Type: TurnTell, Text: "He perdido el hilo. Repíteme el ejercicio.", Done: true}
	}
	step := plan[state.StepIndex]

	if IsDontKnow(userText) {
		return &Turn{
			Type:    TurnAsk,
			Text:    "No pasa nada. Intenta una parte y lo vemos. " + step.Ask(state.Ctx),
			StepID:  step.ID,
			SkillID: sk.ID(),
			State:   state,
		}
	}

	res := step.Check(state.Ctx, userText)
	if !res.Ok {
		msg := res.Feedback
		if msg == "" {
			msg = "Casi. Revisa y dime el resultado."
		}
		if res.NextHint != "" {
			msg += "\nPista extra: " + res.NextHint
		}
		return &Turn{Type: TurnAsk, Text: msg, StepID: step.ID, SkillID: sk.ID(), State: state}
	}

	state.StepIndex++
	if state.StepIndex >= len(plan) {
		return &Turn{
			Type:    TurnTell,
			Text:    fmt.Sprintf("¡Bien! Resultado final: %s.", sk.FinalAnswer(state.Ctx)),
			SkillID: sk.ID(),
			Done:    true,
		}
	}

	next := plan[state.StepIndex]
	return &Turn{
		Type:    TurnAsk,
		Text:    next.Ask(state.Ctx),
		StepID:  next.ID,
		SkillID: sk.ID(),
		State:   state,
	}
}

// IsDontKnow reports whether a reply is an "I don't know" signal rather than
// an answer attempt.
func IsDontKnow(s string) bool {
	return dontKnowRe.MatchString(textnorm.Canon(s))
}

func (e *Engine) findSkill(id string) Skill {
	for _, sk := range e.skills {
		if sk.ID() == id {
			return sk
		}
	}
	return nil
}
