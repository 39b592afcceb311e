package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/globekeeper/bridges-as/internal/jira"
	"github.com/globekeeper/bridges-as/internal/logging"
	"github.com/globekeeper/bridges-as/pkg/mapper"
)

var jiraCmd = &cobra.Command{
	Use:   "jira",
	Short: "Announce Jira objects to the bridge",
	Long: `Announce Jira issues to the bridge and inspect project versions.

The issue subcommand fetches an issue together with its embedded project
reference, flattens both into their message-body form and delivers the
result to the bridge endpoint.`,
}

var jiraIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Announce a Jira issue",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}
		if key == "" {
			return fmt.Errorf("key flag is required")
		}

		jiraClient, err := jira.NewClient()
		if err != nil {
			return fmt.Errorf("failed to initialize jira client: %w", err)
		}

		issue, err := jiraClient.GetIssue(key)
		if err != nil {
			return err
		}

		logging.Info("announcing jira issue",
			"issue", issue.Key,
			"project", issue.Fields.Project.Key)

		// The issue and its project arrive in one API response, so the two
		// sub-objects are known to belong together.
		body := mapper.NewJiraIssueMessageBody(
			mapper.SimplifyJiraIssue(issue),
			mapper.SimplifyJiraProject(issue.Fields.Project),
			jiraClient.BrowseURL(issue.Key),
		)
		return deliver(cmd, body)
	},
}

var jiraVersionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the versions of a Jira project",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := cmd.Flags().GetString("project")
		if err != nil {
			return err
		}
		if project == "" {
			return fmt.Errorf("project flag is required")
		}

		jiraClient, err := jira.NewClient()
		if err != nil {
			return fmt.Errorf("failed to initialize jira client: %w", err)
		}

		versions, err := jiraClient.GetProjectVersions(project)
		if err != nil {
			return err
		}

		if len(versions) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No versions found for project '%s'\n", project)
			return nil
		}

		for _, version := range versions {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", version.ID, version.Name, version.Description)
		}

		return nil
	},
}

func init() {
	jiraIssueCmd.Flags().StringP("key", "k", "", "Jira issue key (e.g., 'ENG-123')")
	jiraVersionsCmd.Flags().StringP("project", "p", "", "Jira project key (e.g., 'ENG')")

	jiraCmd.AddCommand(jiraIssueCmd)
	jiraCmd.AddCommand(jiraVersionsCmd)
}
