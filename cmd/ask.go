package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/tutorin/internal/store"
	"github.com/abhisek/tutorin/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask <ejercicio>",
	Short: "Tutor one exercise on the plain terminal (no TUI)",
	Long: `Walk a single exercise step by step, reading answers from stdin.

Example:
  tutorin ask "2/3 + 5/7"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	exercise := strings.Join(args, " ")

	svc, err := buildServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx := cmd.Context()
	sessionID := uuid.New().String()
	scanner := bufio.NewScanner(os.Stdin)

	logTurn := func(role store.TurnRole, text, skillID, stepID string, done bool) {
		_ = svc.st.AppendTurn(ctx, store.TurnEvent{
			SessionID: sessionID,
			Role:      role,
			SkillID:   skillID,
			StepID:    stepID,
			Text:      text,
			Done:      done,
		})
	}

	logTurn(store.RoleLearner, exercise, "", "", false)

	turn, ok := svc.engine.Route(exercise, tutor.RouteOptions{
		Grade:       svc.grade,
		SubjectHint: svc.subject,
	})
	if !ok {
		return runCoachFallback(ctx, svc, exercise, scanner, logTurn)
	}

	fmt.Println(turn.Text)
	logTurn(store.RoleTutor, turn.Text, turn.SkillID, turn.StepID, false)

	state := turn.State
	for scanner.Scan() {
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		logTurn(store.RoleLearner, answer, state.SkillID, "", false)

		turn = svc.engine.Continue(state, answer)
		fmt.Println(turn.Text)
		logTurn(store.RoleTutor, turn.Text, turn.SkillID, turn.StepID, turn.Done)
		if turn.Done {
			return nil
		}
	}
	return scanner.Err()
}

// runCoachFallback guides an unrecognized exercise with the LLM coach. Coach
// steps are guidance, not checks: any attempt advances.
func runCoachFallback(ctx context.Context, svc *services, exercise string, scanner *bufio.Scanner, logTurn func(store.TurnRole, string, string, string, bool)) error {
	if svc.coach == nil {
		fmt.Println("No reconozco el ejercicio. Escríbelo de otra forma (por ejemplo: 2/3 + 5/7).")
		return nil
	}

	plan, err := svc.coach.Guide(ctx, exercise, svc.grade)
	if err != nil {
		return fmt.Errorf("coach: %w", err)
	}

	fmt.Println(plan.Title)
	step := 0
	fmt.Println(plan.Steps[step])
	logTurn(store.RoleTutor, plan.Steps[step], "", "", false)

	for scanner.Scan() {
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		logTurn(store.RoleLearner, answer, "", "", false)

		if tutor.IsDontKnow(answer) {
			reply := "No pasa nada. Intenta una parte y lo vemos. " + plan.Steps[step]
			fmt.Println(reply)
			logTurn(store.RoleTutor, reply, "", "", false)
			continue
		}

		step++
		if step < len(plan.Steps) {
			fmt.Println(plan.Steps[step])
			logTurn(store.RoleTutor, plan.Steps[step], "", "", false)
			continue
		}

		reply := fmt.Sprintf("¡Bien! Resultado final: %s.", plan.FinalAnswer)
		fmt.Println(reply)
		logTurn(store.RoleTutor, reply, "", "", true)
		return nil
	}
	return scanner.Err()
}
