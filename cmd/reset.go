package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// deleter is implemented by the durable progress backends.
type deleter interface {
	Delete(ctx context.Context) error
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("This clears xp, level, streak and solved challenges. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

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

		d, ok := ps.(deleter)
		if !ok {
			fmt.Println("Nothing to reset for the", cfg.Progress.Backend, "backend.")
			return nil
		}
		if err := d.Delete(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
