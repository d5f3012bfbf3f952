package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorin/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ████████╗██╗   ██╗████████╗ ██████╗ ██████╗ ██╗███╗   ██╗
 ╚══██╔══╝██║   ██║╚══██╔══╝██╔═══██╗██╔══██╗██║████╗  ██║
    ██║   ██║   ██║   ██║   ██║   ██║██████╔╝██║██╔██╗ ██║
    ██║   ██║   ██║   ██║   ██║   ██║██╔══██╗██║██║╚██╗██║
    ██║   ╚██████╔╝   ██║   ╚██████╔╝██║  ██║██║██║ ╚████║
    ╚═╝    ╚═════╝    ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝`

const arcadeTitleCompact = "T · U · T · O · R · Í · N"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 62 {
		w = 62
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders session tallies in a bordered box matching content width.
func renderStatsBar(sessions, solved, cw int, compact bool) string {
	sessionStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	solvedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			sessionStyle.Render(fmt.Sprintf("◆%d", sessions)),
			solvedStyle.Render(fmt.Sprintf("★%d", solved)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			sessionStyle.Render(fmt.Sprintf("◆ %d SESIONES", sessions)),
			solvedStyle.Render(fmt.Sprintf("★ %d RESUELTOS", solved)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a note when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Sin clave de API: solo ejercicios reconocidos (tutorin --help)")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).   // account for border chars
		Height(height-2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
