package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ps, closer, err := openProgressStore(ctx, cfg, st)
		if err != nil {
			return fmt.Errorf("open progress backend: %w", err)
		}
		if closer != nil {
			defer closer()
		}

		rec, err := ps.Load(ctx)
		if err != nil {
			return err
		}

		last := "never"
		if rec.LastCompletedDate != nil {
			last = rec.LastCompletedDate.String()
		}

		fmt.Println("Progress")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-20s %d\n", "Level", rec.Level)
		fmt.Printf("%-20s %d (%d%% to next level)\n", "XP", rec.XP, int(rec.LevelProgress()*100))
		fmt.Printf("%-20s %d\n", "Streak", rec.Streak)
		fmt.Printf("%-20s %s\n", "Last completed", last)
		fmt.Printf("%-20s %d\n", "Challenges solved", len(rec.CompletedChallengeIDs))

		topics, err := st.EventRepo().TopicStats(ctx)
		if err != nil {
			return fmt.Errorf("query topic stats: %w", err)
		}
		if len(topics) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("By Topic")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-16s %8s %8s %8s\n", "Topic", "Tries", "Correct", "Acc")
		for _, t := range topics {
			fmt.Printf("%-16s %8d %8d %7.0f%%\n", truncate(t.Topic, 16), t.Attempts, t.Correct, t.Accuracy()*100)
		}
		return nil
	},
}
