package chat

import "github.com/abhisek/tutorin/internal/coach"

// coachPlanMsg is sent when the LLM coach finishes (or fails to) building a
// step plan for an unrecognized exercise.
type coachPlanMsg struct {
	Exercise string
	Plan     *coach.Plan
	Err      error
}

// turnLoggedMsg confirms a turn event write. Failures are surfaced but do not
// interrupt the conversation.
type turnLoggedMsg struct {
	Err error
}
