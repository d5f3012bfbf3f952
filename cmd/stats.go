package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorin/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tutoring statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		st, err := s.Stats(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		fmt.Printf("Database:      %s (%.1f KiB)\n", st.DBPath, float64(st.DBSizeBytes)/1024)
		fmt.Printf("Sessions:      %d\n", st.Sessions)
		fmt.Printf("Turns:         %d\n", st.Turns)
		fmt.Printf("Solved:        %d\n", st.Solved)
		fmt.Printf("LLM requests:  %d (%d in / %d out tokens)\n",
			st.LLMRequests, st.InputTokens, st.OutputTokens)

		if len(st.Skills) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-16s  %6s  %6s\n", "Skill", "Asked", "Solved")
		fmt.Println(strings.Repeat("─", 32))
		for _, sk := range st.Skills {
			fmt.Printf("%-16s  %6d  %6d\n", sk.SkillID, sk.Asked, sk.Solved)
		}
		return nil
	},
}
