package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorin/internal/skills"
	"github.com/abhisek/tutorin/internal/tutor"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the recognized exercise types",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills in routing order (optionally filtered by subject)",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		engine := tutor.NewEngine(skills.DefaultSkills())

		all := engine.Skills()
		var listed []tutor.Skill
		for _, sk := range all {
			if subject != "" && sk.Subject() != tutor.Subject(subject) {
				continue
			}
			listed = append(listed, sk)
		}
		if len(listed) == 0 {
			return fmt.Errorf("no skills found for subject %q", subject)
		}

		// Header.
		fmt.Printf("%3s  %-16s  %-10s  %s\n", "#", "ID", "Subject", "Title")
		fmt.Println(strings.Repeat("─", 80))

		for i, sk := range listed {
			title := sk.Title()
			if len(title) > 46 {
				title = title[:43] + "..."
			}
			fmt.Printf("%3d  %-16s  %-10s  %s\n", i+1, sk.ID(), sk.Subject(), title)
		}

		fmt.Printf("\n%d skills (routing order: first match wins)\n", len(listed))
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("subject", "", "Filter by subject (mates, lengua, ciencias, historia, geo)")

	skillCmd.AddCommand(skillListCmd)
}
