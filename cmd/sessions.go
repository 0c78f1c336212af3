package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickcode/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent quiz session events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QuerySessionEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No sessions played yet.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-36s  %6s  %7s  %s\n",
			"Timestamp", "Action", "Session", "Served", "Correct", "Duration")
		fmt.Println(strings.Repeat("─", 100))
		for _, e := range events {
			fmt.Printf("%-19s  %-8s  %-36s  %6d  %7d  %ds\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Action,
				e.SessionID,
				e.QuestionsServed,
				e.CorrectAnswers,
				e.DurationSecs,
			)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().Int("limit", 20, "Maximum number of events to show")
}
