package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/phrazzld/mindset-api/internal/api"
	"github.com/spf13/cobra"
)

func newGoalCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Create goals and track their progress",
	}

	var (
		title       string
		description string
		target      string
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		Long: `Create a goal with zero progress. The target date defaults to today.

Examples:
  journalctl goal add --title "Learn Rust" --description "Finish the book" --target 2024-12-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			index, goal, err := c.AddGoal(cmd.Context(), api.CreateGoalRequest{
				Title:       title,
				Description: description,
				TargetDate:  target,
			})
			if err != nil {
				return fmt.Errorf("failed to add goal: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), api.CreateGoalResponse{Index: index, Goal: *goal})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Goal [%d] %q created (target %s)\n", index, goal.Title, goal.TargetDate)
			return err
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "Goal title (required)")
	addCmd.Flags().StringVar(&description, "description", "", "Goal description")
	addCmd.Flags().StringVar(&target, "target", "", "Target date as YYYY-MM-DD (default today)")
	_ = addCmd.MarkFlagRequired("title")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goals with their index and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			goals, err := c.ListGoals(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), goals)
			}
			if len(goals) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No goals yet.")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tTITLE\tTARGET\tPROGRESS")
			for i, g := range goals {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\n", i, truncate(g.Title, 40), g.TargetDate, g.Progress)
			}
			return w.Flush()
		},
	}

	progressCmd := &cobra.Command{
		Use:   "progress <index> <percent>",
		Short: "Set a goal's progress (0-100)",
		Long: `Set the progress of the goal at the given index, as shown by 'goal list'.

Examples:
  journalctl goal progress 0 40`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid goal index %q", args[0])
			}
			progress, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid progress %q", args[1])
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			goal, err := c.UpdateGoalProgress(cmd.Context(), index, progress)
			if err != nil {
				return fmt.Errorf("failed to update goal progress: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), goal)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Goal [%d] %q is %d%% complete\n", index, goal.Title, goal.Progress)
			return err
		},
	}

	cmd.AddCommand(addCmd, listCmd, progressCmd)
	return cmd
}
