package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/tutorin/internal/app"
)

// runApp launches the full-screen TUI.
func runApp(cmd *cobra.Command) error {
	svc, err := buildServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	return app.Run(app.Options{
		Engine:    svc.engine,
		Coach:     svc.coach,
		Store:     svc.st,
		SessionID: uuid.New().String(),
		Grade:     svc.grade,
	})
}
