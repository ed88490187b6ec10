package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/paideia/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery per concept",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")

		engine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		records, err := engine.Ledger.Records(cmd.Context(), learnerID)
		if err != nil {
			return fmt.Errorf("load mastery: %w", err)
		}
		if len(records) == 0 {
			fmt.Println(styleDim.Render("No practice recorded yet."))
			return nil
		}

		fmt.Println(styleHeading.Render("Mastery for " + learnerID))
		fmt.Printf("%-24s %-7s %-13s %-9s %s\n", "CONCEPT", "SCORE", "TIER", "ANSWERS", "LAST PRACTICED")
		for _, r := range records {
			tier := catalog.TierForScore(r.Score)
			line := fmt.Sprintf("%-24s %-7.2f %-13s %-9d %s",
				r.ConceptID, r.Score, tier, r.InteractionCount,
				r.LastUpdatedAt.Local().Format("2006-01-02 15:04"))
			switch tier {
			case catalog.TierAdvanced:
				fmt.Println(styleGood.Render(line))
			case catalog.TierBasic:
				fmt.Println(styleWarn.Render(line))
			default:
				fmt.Println(line)
			}
		}

		since := time.Now().Add(-7 * 24 * time.Hour)
		recent, err := engine.Interactions().RecentByLearner(cmd.Context(), learnerID, since)
		if err == nil && len(recent) > 0 {
			fmt.Println()
			fmt.Println(styleDim.Render(fmt.Sprintf("%d exchanges in the last 7 days", len(recent))))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("learner", "", "Learner identifier (required)")
	statsCmd.MarkFlagRequired("learner")
}
