// Package history displays past tutoring sessions from the event store.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorin/internal/router"
	"github.com/abhisek/tutorin/internal/screen"
	"github.com/abhisek/tutorin/internal/store"
	"github.com/abhisek/tutorin/internal/ui/layout"
	"github.com/abhisek/tutorin/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Err      error
}

type transcriptLoadedMsg struct {
	Index int
	Turns []store.TurnEvent
	Err   error
}

// HistoryScreen displays past sessions with expandable transcripts.
type HistoryScreen struct {
	st          *store.Store
	sessions    []store.SessionSummary
	transcripts map[int][]store.TurnEvent
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen backed by the given store.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{
		st:          st,
		expanded:    make(map[int]bool),
		transcripts: make(map[int][]store.TurnEvent),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	st := s.st
	return func() tea.Msg {
		sessions, err := st.RecentSessions(context.Background(), 50)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Transcripción"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case transcriptLoadedMsg:
		if msg.Err == nil {
			s.transcripts[msg.Index] = msg.Turns
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.toggleTranscript()
		}
	}
	return s, nil
}

// toggleTranscript expands or collapses the selected session, lazily loading
// its turns the first time.
func (s *HistoryScreen) toggleTranscript() tea.Cmd {
	if len(s.sessions) == 0 {
		return nil
	}
	idx := s.selected
	s.expanded[idx] = !s.expanded[idx]
	if !s.expanded[idx] {
		return nil
	}
	if _, ok := s.transcripts[idx]; ok {
		return nil
	}

	st, sessionID := s.st, s.sessions[idx].SessionID
	return func() tea.Msg {
		turns, err := st.SessionTurns(context.Background(), sessionID)
		return transcriptLoadedMsg{Index: idx, Turns: turns, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Cargando historial...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Todavía no hay sesiones. ¡Escríbeme un ejercicio!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.StartedAt.Local().Format("02 Jan 2006 15:04")

		status := "sin terminar"
		statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if sess.Solved {
			status = "resuelto"
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		skills := sess.SkillIDs
		if skills == "" {
			skills = "—"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d turnos  %s  %s",
			prefix, dateStr, sess.Turns, skills, statusStyle.Render(status))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, turn := range s.transcripts[i] {
				who := "Tutor"
				whoStyle := lipgloss.NewStyle().Foreground(theme.Primary)
				if turn.Role == store.RoleLearner {
					who = "Tú"
					whoStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
				}
				text := turn.Text
				if len(text) > width-20 && width > 23 {
					text = text[:width-23] + "..."
				}
				b.WriteString(fmt.Sprintf("      %s: %s\n", whoStyle.Render(who),
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)))
			}
		}
	}

	return b.String()
}
