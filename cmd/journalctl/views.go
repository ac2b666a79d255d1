package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phrazzld/mindset-api/internal/dashboard"
	"github.com/spf13/cobra"
)

func newSeriesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "Print the mindset score series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			series, err := c.MindsetSeries(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch series: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), series)
			}
			if len(series) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), dashboard.EmptySeriesMessage)
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSCORE")
			for _, p := range series {
				fmt.Fprintf(w, "%s\t%d\n", p.Date, p.Score)
			}
			return w.Flush()
		},
	}
}

func newDashboardCmd(opts *cliOptions) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
		width    int
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the mindset chart and goal progress",
		Long: `Show the mindset chart and goal progress.

With --watch the dashboard stays open and refreshes every --interval.
Press r to refresh immediately and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}

			if watch {
				if interval < dashboard.MinInterval {
					return fmt.Errorf("--interval must be at least %s", dashboard.MinInterval)
				}
				p := tea.NewProgram(dashboard.NewModel(c.Dashboard, interval), tea.WithAltScreen())
				_, err := p.Run()
				return err
			}

			d, err := c.Dashboard(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch dashboard: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dashboard.Render(d, width))
			return err
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the dashboard open and refresh it")
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "Refresh interval for --watch (at least 1s)")
	cmd.Flags().IntVar(&width, "width", 60, "Chart width in columns")
	return cmd
}

func newResourcesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Show growth-mindset concepts, reading and tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			lib, err := c.Resources(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch resources: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), lib)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Key Concepts")
			for _, concept := range lib.Concepts {
				fmt.Fprintf(out, "\n  %s\n", concept.Title)
				for _, point := range concept.Points {
					fmt.Fprintf(out, "    - %s\n", point)
				}
			}
			fmt.Fprintln(out, "\nRecommended Reading")
			for _, book := range lib.Reading {
				fmt.Fprintf(out, "  - %s by %s\n", book.Title, book.Author)
			}
			fmt.Fprintln(out, "\nDaily Tips")
			for _, tip := range lib.Tips {
				fmt.Fprintf(out, "  - %s\n", tip)
			}
			return nil
		},
	}
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole journal as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			snapshot, err := c.Export(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to export journal: %w", err)
			}

			if output == "" || output == "-" {
				return writeJSON(cmd.OutOrStdout(), snapshot)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := writeJSON(f, snapshot); err != nil {
				_ = f.Close()
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d reflections and %d goals to %s\n",
				len(snapshot.Reflections), len(snapshot.Goals), output)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func newHealthCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			h, err := c.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), h)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Server status: %s (%d open sessions)\n", h.Status, h.Sessions)
			return err
		},
	}
}
