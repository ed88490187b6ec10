package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show study recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		learnerID, _ := cmd.Flags().GetString("learner")
		status, _ := cmd.Flags().GetString("status")
		generate, _ := cmd.Flags().GetBool("generate")

		engine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		if generate {
			if _, err := engine.Recommend.GenerateFor(ctx, learnerID); err != nil {
				return fmt.Errorf("generate recommendations: %w", err)
			}
		}

		recs, err := engine.Recommend.List(ctx, learnerID, status)
		if err != nil {
			return fmt.Errorf("list recommendations: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println(styleDim.Render("No recommendations. Try --generate after a few sessions."))
			return nil
		}

		for _, r := range recs {
			urgency := styleDim
			switch r.Urgency {
			case "high":
				urgency = styleBad
			case "medium":
				urgency = styleWarn
			}

			fmt.Println(styleHeading.Render(r.Title))
			fmt.Printf("  %s  %s  %s\n",
				styleDim.Render(r.Type),
				urgency.Render("urgency:"+r.Urgency),
				styleDim.Render(fmt.Sprintf("priority %d/10, ~%d min", r.Priority, r.EstimatedMinutes)))
			fmt.Println("  " + r.Description)
			fmt.Println("  " + styleDim.Render("why: "+r.Reasoning))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("learner", "", "Learner identifier (required)")
	recommendCmd.Flags().String("status", "pending", "Filter by status: pending, accepted, dismissed, expired (empty for all)")
	recommendCmd.Flags().Bool("generate", false, "Run generation before listing")
	recommendCmd.MarkFlagRequired("learner")
}
