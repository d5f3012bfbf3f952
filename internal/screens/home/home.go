// Package home implements the main menu screen.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutorin/internal/coach"
	"github.com/abhisek/tutorin/internal/router"
	"github.com/abhisek/tutorin/internal/screen"
	"github.com/abhisek/tutorin/internal/screens/chat"
	"github.com/abhisek/tutorin/internal/screens/history"
	"github.com/abhisek/tutorin/internal/screens/skillmap"
	"github.com/abhisek/tutorin/internal/store"
	"github.com/abhisek/tutorin/internal/tutor"
	"github.com/abhisek/tutorin/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	sessions   int
	solved     int
	coachless  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the tutoring engine, the optional LLM
// coach and the event store.
func New(engine *tutor.Engine, coachSvc *coach.Service, st *store.Store, sessionID string, grade tutor.GradeBand) *HomeScreen {
	var sessions, solved int
	counts := skillmap.Counts{Asked: map[string]int{}, Solved: map[string]int{}}
	if st != nil {
		if stats, err := st.Stats(context.Background(), ""); err == nil {
			sessions = stats.Sessions
			solved = stats.Solved
			for _, sk := range stats.Skills {
				counts.Asked[sk.SkillID] = sk.Asked
				counts.Solved[sk.SkillID] = sk.Solved
			}
		}
	}

	menuLabels := []string{"TUTORÍA", "HABILIDADES", "HISTORIAL", "SALIR"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chat.New(engine, coachSvc, st, sessionID, grade),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: skillmap.New(engine.Skills(), counts)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if st == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		sessions:   sessions,
		solved:     solved,
		coachless:  coachSvc == nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := MascotIdle
		if h.coachless {
			variant = MascotAlert
		} else if h.solved > 0 {
			variant = MascotCelebrating
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections, renderStatsBar(h.sessions, h.solved, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if h.coachless {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
