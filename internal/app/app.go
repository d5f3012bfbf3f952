// Package app wires the Bubble Tea program: router, screens and the shared
// tutoring services.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorin/internal/coach"
	"github.com/abhisek/tutorin/internal/router"
	"github.com/abhisek/tutorin/internal/screen"
	"github.com/abhisek/tutorin/internal/screens/chat"
	"github.com/abhisek/tutorin/internal/screens/home"
	"github.com/abhisek/tutorin/internal/screens/welcome"
	"github.com/abhisek/tutorin/internal/store"
	"github.com/abhisek/tutorin/internal/tutor"
	"github.com/abhisek/tutorin/internal/ui/layout"
)

// Options carries the injected services. Coach and Store may be nil; the app
// then runs recognizer-only and unlogged.
type Options struct {
	Engine    *tutor.Engine
	Coach     *coach.Service
	Store     *store.Store
	SessionID string
	Grade     tutor.GradeBand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	width      int
	height     int
	baseSolved int
}

func newAppModel(opts Options) AppModel {
	var baseSolved int
	if opts.Store != nil {
		if stats, err := opts.Store.Stats(context.Background(), ""); err == nil {
			baseSolved = stats.Solved
		}
	}

	homeFactory := func() screen.Screen {
		return home.New(opts.Engine, opts.Coach, opts.Store, opts.SessionID, opts.Grade)
	}
	return AppModel{
		router:     router.New(welcome.New(homeFactory)),
		baseSolved: baseSolved,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	solved := m.baseSolved
	if c, ok := active.(*chat.ChatScreen); ok {
		solved += c.Solved()
	}

	header := layout.RenderHeader(title, solved, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
