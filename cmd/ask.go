package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/paideia/internal/app"
	"github.com/abhisek/paideia/internal/profile"
	"github.com/abhisek/paideia/internal/session"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Start an interactive tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		learnerID, _ := cmd.Flags().GetString("learner")
		conceptID, _ := cmd.Flags().GetString("concept")
		subject, _ := cmd.Flags().GetString("subject")
		role, _ := cmd.Flags().GetString("role")

		engine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		turn, err := engine.Sessions.StartSession(ctx, learnerID, profile.Role(role), session.Hint{
			ConceptID:  conceptID,
			Subject:    subject,
			DeviceType: "terminal",
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		fmt.Println(styleHeading.Render("Session started") +
			styleDim.Render(fmt.Sprintf("  concept=%s subject=%s methodology=%s", turn.ConceptID, turn.Subject, turn.Methodology)))
		fmt.Println(styleDim.Render("Type your answer, or \"exit\" to stop."))
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			printTurn(turn)

			fmt.Print("> ")
			if !scanner.Scan() {
				return engine.Sessions.Cancel(ctx, turn.SessionID)
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == "exit" || answer == "quit" {
				if err := engine.Sessions.Cancel(ctx, turn.SessionID); err != nil {
					return err
				}
				fmt.Println(styleDim.Render("Session cancelled. Progress saved."))
				return nil
			}

			next, err := engine.Sessions.SubmitResponse(ctx, turn.SessionID, turn.InteractionID, answer)
			if err != nil {
				if errors.Is(err, session.ErrSessionEnded) {
					break
				}
				return fmt.Errorf("submit response: %w", err)
			}

			switch next.Phase {
			case session.PhaseAdvancing:
				fmt.Println(styleGood.Render("Nice. Moving on."))
			case session.PhaseRemediating:
				fmt.Println(styleWarn.Render("Let's look at it from another angle."))
			case session.PhaseSessionEnd:
				printSessionEnd(next)
			}
			fmt.Println()

			if next.Phase == session.PhaseSessionEnd {
				break
			}
			turn = next
		}

		printSessionSummary(ctx, engine, turn.SessionID)

		// A finished session is a good moment to refresh recommendations.
		if _, err := engine.Recommend.GenerateFor(ctx, learnerID); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not refresh recommendations:", err)
		} else {
			fmt.Println(styleDim.Render("Run \"paideia recommend --learner " + learnerID + "\" to see what to study next."))
		}
		return nil
	},
}

func printTurn(turn *session.Turn) {
	if turn.Support != "" {
		fmt.Println(styleSupport.Render(turn.Support))
	}
	fmt.Println(styleQuestion.Render(turn.Question))
	if turn.Repeated {
		fmt.Println(styleDim.Render("(we have covered this one before)"))
	}
	if turn.Degraded {
		fmt.Println(styleDim.Render("(progress saving is delayed; your answers still count)"))
	}
}

// printSessionSummary reports how the session went, from the logged
// interactions.
func printSessionSummary(ctx context.Context, engine *app.Engine, sessionID string) {
	rows, err := engine.Interactions().BySession(ctx, sessionID)
	if err != nil || len(rows) == 0 {
		return
	}

	scored := 0
	var sum float64
	for _, r := range rows {
		if r.SuccessIndicator != nil && !r.Unscored {
			scored++
			sum += *r.SuccessIndicator
		}
	}

	line := fmt.Sprintf("%d questions this session", len(rows))
	if scored > 0 {
		line += fmt.Sprintf(", average score %.0f%%", sum/float64(scored)*100)
	}
	fmt.Println(styleDim.Render(line))
}

func printSessionEnd(turn *session.Turn) {
	switch turn.EndReason {
	case session.EndReasonRemediationCap:
		fmt.Println(styleBad.Render("That concept is putting up a fight. Taking a break here."))
	default:
		fmt.Println(styleGood.Render("Session complete."))
	}
}

func init() {
	askCmd.Flags().String("learner", "", "Learner identifier (required)")
	askCmd.Flags().String("concept", "", "Concept to practice")
	askCmd.Flags().String("subject", "", "Subject to practice when no concept is given")
	askCmd.Flags().String("role", "student", "Learner role: student, instructor, admin, content_creator, mentor")
	askCmd.MarkFlagRequired("learner")
}
