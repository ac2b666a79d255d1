package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/phrazzld/mindset-api/internal/api"
	"github.com/spf13/cobra"
)

func newReflectCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Record and list daily reflections",
	}

	var (
		date       string
		score      int
		challenges string
		learnings  string
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a reflection",
		Long: `Record a daily reflection.

The date defaults to today and the mindset score (1-10) to 5.

Examples:
  journalctl reflect add --score 8 --challenges "Debugging" --learnings "Patience"
  journalctl reflect add --date 2024-01-01 --score 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			req := api.CreateReflectionRequest{
				Date:       date,
				Challenges: challenges,
				Learnings:  learnings,
			}
			if cmd.Flags().Changed("score") {
				req.MindsetScore = &score
			}

			r, err := c.AddReflection(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to add reflection: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reflection saved for %s (mindset %d/10)\n", r.Date, r.MindsetScore)
			return err
		},
	}
	addCmd.Flags().StringVar(&date, "date", "", "Reflection date as YYYY-MM-DD (default today)")
	addCmd.Flags().IntVar(&score, "score", 5, "Mindset score from 1 to 10")
	addCmd.Flags().StringVar(&challenges, "challenges", "", "Challenges faced today")
	addCmd.Flags().StringVar(&learnings, "learnings", "", "What you learned today")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reflections in the order they were recorded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			reflections, err := c.ListReflections(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list reflections: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), reflections)
			}
			if len(reflections) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No reflections yet.")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSCORE\tCHALLENGES\tLEARNINGS")
			for _, r := range reflections {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
					r.Date, r.MindsetScore, truncate(r.Challenges, 30), truncate(r.Learnings, 30))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}
