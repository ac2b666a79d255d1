package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start or end a journal session",
	}

	var quiet bool
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new session and print its ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			id, err := c.StartSession(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to start session: %w", err)
			}

			out := cmd.OutOrStdout()
			if quiet {
				_, err = fmt.Fprintln(out, id)
				return err
			}
			_, err = fmt.Fprintf(out, "Session started: %s\n\nTo use it in this shell:\n  export %s=%s\n", id, sessionEnv, id)
			return err
		},
	}
	newCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the session ID")

	endCmd := &cobra.Command{
		Use:   "end",
		Short: "End the current session and discard its journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			id := c.SessionID()
			if err := c.EndSession(cmd.Context()); err != nil {
				return fmt.Errorf("failed to end session: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Session %s ended\n", id)
			return err
		},
	}

	cmd.AddCommand(newCmd, endCmd)
	return cmd
}
