// Package skillmap lists the exercise types the tutor recognizes, grouped
// by subject, with per-skill practice counts.
package skillmap

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorin/internal/router"
	"github.com/abhisek/tutorin/internal/screen"
	"github.com/abhisek/tutorin/internal/tutor"
	"github.com/abhisek/tutorin/internal/ui/layout"
	"github.com/abhisek/tutorin/internal/ui/theme"
)

type rowKind int

const (
	rowSubjectHeader rowKind = iota
	rowSkill
)

type row struct {
	kind    rowKind
	subject tutor.Subject
	skill   tutor.Skill
}

// Counts holds per-skill practice tallies keyed by skill ID.
type Counts struct {
	Asked  map[string]int
	Solved map[string]int
}

// SkillMapScreen displays the recognized skills organized by subject.
type SkillMapScreen struct {
	rows         []row
	cursor       int
	scrollOffset int
	counts       Counts
}

var _ screen.Screen = (*SkillMapScreen)(nil)
var _ screen.KeyHintProvider = (*SkillMapScreen)(nil)

var subjectOrder = []tutor.Subject{
	tutor.SubjectMates,
	tutor.SubjectLengua,
	tutor.SubjectCiencias,
	tutor.SubjectHistoria,
	tutor.SubjectGeo,
	tutor.SubjectGeneral,
}

var subjectNames = map[tutor.Subject]string{
	tutor.SubjectMates:    "Matemáticas",
	tutor.SubjectLengua:   "Lengua",
	tutor.SubjectCiencias: "Ciencias",
	tutor.SubjectHistoria: "Historia",
	tutor.SubjectGeo:      "Geografía",
	tutor.SubjectGeneral:  "General",
}

// New creates a SkillMapScreen over the given skills in routing order.
func New(skills []tutor.Skill, counts Counts) *SkillMapScreen {
	var rows []row
	for _, subj := range subjectOrder {
		var group []tutor.Skill
		for _, sk := range skills {
			if sk.Subject() == subj {
				group = append(group, sk)
			}
		}
		if len(group) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowSubjectHeader, subject: subj})
		for _, sk := range group {
			rows = append(rows, row{kind: rowSkill, subject: subj, skill: sk})
		}
	}

	s := &SkillMapScreen{rows: rows, counts: counts}
	for i, r := range s.rows {
		if r.kind == rowSkill {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *SkillMapScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillMapScreen) Title() string {
	return "Habilidades"
}

func (s *SkillMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *SkillMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SkillMapScreen) moveCursor(delta int) {
	i := s.cursor + delta
	for i >= 0 && i < len(s.rows) {
		if s.rows[i].kind == rowSkill {
			s.cursor = i
			return
		}
		i += delta
	}
}

func (s *SkillMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var out string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowSubjectHeader:
			out += s.renderSubjectHeader(r.subject, width) + "\n"
		case rowSkill:
			out += s.renderSkillRow(r, i == s.cursor, width) + "\n"
		}
		visible++
	}
	return out
}

func (s *SkillMapScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *SkillMapScreen) renderSubjectHeader(subj tutor.Subject, width int) string {
	name := subjectNames[subj]
	if name == "" {
		name = string(subj)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + name)
}

func (s *SkillMapScreen) renderSkillRow(r row, selected bool, width int) string {
	sk := r.skill
	tally := ""
	if n := s.counts.Asked[sk.ID()]; n > 0 {
		tally = fmt.Sprintf("  (%d/%d)", s.counts.Solved[sk.ID()], n)
	}

	line := fmt.Sprintf("    %s%s", sk.Title(), tally)
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		line = "  ▸ " + sk.Title() + tally
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line)
}
