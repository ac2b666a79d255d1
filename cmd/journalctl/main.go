// Package main implements journalctl, a command-line client for the Mindset API server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/client"
	"github.com/spf13/cobra"
)

// sessionEnv names the environment variable holding the default session ID.
const sessionEnv = "MINDSET_SESSION"

var version = "dev"

// cliOptions holds the persistent flags shared by every command.
type cliOptions struct {
	serverURL  string
	session    string
	outputJSON bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "journalctl",
		Short: "Command-line client for the Mindset growth journal",
		Long: `journalctl records daily reflections and tracks goals against a Mindset API server.

Journals live in server memory and belong to a session. Start one with
'journalctl session new' and export the printed ID as ` + sessionEnv + `.

Examples:
  # Start a session
  export ` + sessionEnv + `=$(journalctl session new -q)

  # Record today's reflection
  journalctl reflect add --score 8 --challenges "Debugging" --learnings "Patience"

  # Add a goal and update it
  journalctl goal add --title "Learn Rust" --target 2024-12-31
  journalctl goal progress 0 40

  # Watch the dashboard
  journalctl dashboard --watch`,
		Version:       version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.serverURL, "server", "http://localhost:8080", "Mindset API server URL")
	root.PersistentFlags().StringVar(&opts.session, "session", os.Getenv(sessionEnv), "session ID (defaults to $"+sessionEnv+")")
	root.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "Output results as JSON")

	root.AddCommand(
		newSessionCmd(opts),
		newReflectCmd(opts),
		newGoalCmd(opts),
		newSeriesCmd(opts),
		newDashboardCmd(opts),
		newResourcesCmd(opts),
		newExportCmd(opts),
		newHealthCmd(opts),
	)
	return root
}

// newClient builds an API client from the persistent flags.
func (o *cliOptions) newClient() (*client.Client, error) {
	var clientOpts []client.Option
	if s := strings.TrimSpace(o.session); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid session ID %q: %w", s, err)
		}
		clientOpts = append(clientOpts, client.WithSession(id))
	}
	return client.New(o.serverURL, clientOpts...), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
