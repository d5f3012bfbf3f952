package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorin/internal/ui/components"
	"github.com/abhisek/tutorin/internal/ui/theme"
)

var (
	tutorLabel   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	learnerLabel = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	waitStyle    = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
)

func (s *ChatScreen) View(width, height int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var rows []string
	for _, line := range s.lines {
		label := tutorLabel.Render("Tutor")
		if line.role == roleLearner {
			label = learnerLabel.Render("Tú")
		}
		text := bodyStyle.Width(inner - 7).Render(line.text)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label+"  ", text))
	}
	if s.waiting {
		rows = append(rows, waitStyle.Render("… pensando"))
	}

	transcript := strings.Join(rows, "\n")

	var footer []string
	if cur, total, ok := s.planProgress(); ok {
		bar := components.NewProgressBar(
			fmt.Sprintf("Paso %d/%d", cur, total),
			float64(cur-1)/float64(total), false, inner/2)
		footer = append(footer, bar.View())
	}
	footer = append(footer, s.input.View())

	// Keep the newest lines visible: trim from the top when the transcript
	// outgrows the space above the footer.
	footerBlock := strings.Join(footer, "\n")
	avail := height - lipgloss.Height(footerBlock) - 2
	if avail < 1 {
		avail = 1
	}
	tLines := strings.Split(transcript, "\n")
	if len(tLines) > avail {
		tLines = tLines[len(tLines)-avail:]
	}
	transcript = strings.Join(tLines, "\n")

	content := transcript + "\n\n" + footerBlock
	return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(content)
}
