// Package cmd provides the command-line interface for the bridges-as tool.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/globekeeper/bridges-as/internal/bridge"
)

var rootCmd = &cobra.Command{
	Use:   "bridges-as",
	Short: "bridges-as announces GitHub and Jira objects to a bridge",
	Long: `bridges-as fetches repositories and issues from GitHub, and projects,
issues and versions from Jira, converts them into namespaced notification
message bodies and delivers them to the configured bridge endpoint.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all commands
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the serialized message body instead of sending it")

	// Add the GitHub command
	rootCmd.AddCommand(githubCmd)

	// Add the Jira command
	rootCmd.AddCommand(jiraCmd)
}

// newSender builds the delivery client. Tests swap it for a fake so
// commands can be exercised without a live endpoint.
var newSender = func() (bridge.Sender, error) {
	return bridge.NewClient()
}

// deliver sends a built message body to the bridge, or prints it when
// --dry-run is set.
func deliver(cmd *cobra.Command, body any) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if dryRun {
		payload, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize message body: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	}

	sender, err := newSender()
	if err != nil {
		return fmt.Errorf("failed to initialize bridge client: %w", err)
	}

	return sender.Send(cmd.Context(), body)
}
