// Package tutor implements the deterministic tutoring engine: it routes a
// learner's exercise statement to a registered skill, builds that skill's
// step-by-step hint plan, and drives the ask/check/advance loop one turn at
// a time. The engine performs no I/O and holds no per-session state of its
// own; callers thread an explicit SessionState value through each turn.
package tutor

// GradeBand is the learner's school stage. Advisory: skills may use it to
// tune hints but none currently gate on it.
type GradeBand string

const (
	Grade12  GradeBand = "1-2"
	Grade34  GradeBand = "3-4"
	Grade56  GradeBand = "5-6"
	GradeESO GradeBand = "ESO"
)

// Subject is the school subject a skill belongs to. Routing can be
// restricted to one subject via RouteOptions.
type Subject string

const (
	SubjectMates    Subject = "mates"
	SubjectLengua   Subject = "lengua"
	SubjectCiencias Subject = "ciencias"
	SubjectHistoria Subject = "historia"
	SubjectGeo      Subject = "geo"
	SubjectGeneral  Subject = "general"
)

// ProblemContext is the immutable parsed representation of one exercise
// instance, created by a skill's MatchAndParse and threaded back into that
// same skill's Steps and FinalAnswer on every turn. Data holds the
// skill-specific payload; derived values (the step plan) are always
// recomputed from it, never stored.
type ProblemContext struct {
	Raw     string
	Data    any
	Grade   GradeBand
	Subject Subject
}

// CheckResult is the outcome of validating a learner reply against one step.
// When Ok is false, Feedback carries a human-readable correction and
// NextHint an optional extra hint appended to the re-ask.
type CheckResult struct {
	Ok       bool
	Feedback string
	NextHint string
}

// Step is one stage of a skill's plan. Ask and Check are pure functions of
// the context (and the reply); plans are rebuilt from the context each turn,
// so a Step value never outlives a single engine call.
type Step struct {
	ID    string
	Ask   func(ctx *ProblemContext) string
	Check func(ctx *ProblemContext, answer string) CheckResult
}

// Skill is a self-contained recognizer and stepper for one exercise family.
// Implementations are stateless; a single value serves any number of
// concurrent sessions.
type Skill interface {
	// ID returns the stable skill identifier used in session state.
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Subject returns the school subject this skill belongs to.
	Subject() Subject

	// MatchAndParse inspects normalized exercise text and, if it belongs to
	// this family, returns the parsed context. Returns false when the text
	// is not recognized — that is the ordinary outcome, not an error.
	MatchAndParse(raw string, grade GradeBand) (*ProblemContext, bool)

	// Steps builds the ordered hint plan for a context this skill produced.
	Steps(ctx *ProblemContext) []Step

	// FinalAnswer returns the canonical solution string announced when the
	// plan is exhausted. It recomputes from the context independently of
	// the step-wise path.
	FinalAnswer(ctx *ProblemContext) string
}

// TurnType discriminates engine responses.
type TurnType string

const (
	// TurnAsk means the conversation continues: the caller must collect the
	// learner's reply and call Continue with the attached state.
	TurnAsk TurnType = "ask"

	// TurnTell is a terminal or informational message.
	TurnTell TurnType = "tell"
)

// Turn is one engine response.
type Turn struct {
	Type    TurnType
	Text    string
	StepID  string
	SkillID string
	Done    bool
	State   *SessionState
}

// SessionState is the caller-owned state threaded through a session. The
// engine mutates only StepIndex; Ctx is immutable after Route. StepIndex is
// always within [0, len(steps)] — reaching the upper bound produces the
// final tell, never an out-of-range step access.
type SessionState struct {
	SkillID   string
	StepIndex int
	Ctx       *ProblemContext
}
