package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/globekeeper/bridges-as/internal/github"
	"github.com/globekeeper/bridges-as/internal/logging"
	"github.com/globekeeper/bridges-as/pkg/mapper"
)

var githubCmd = &cobra.Command{
	Use:   "github",
	Short: "Announce GitHub objects to the bridge",
	Long: `Announce GitHub repositories and issues to the bridge.

Each subcommand fetches the object from the GitHub API, builds the
corresponding message body and delivers it to the bridge endpoint.`,
}

var githubRepoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Announce a GitHub repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		repository, err := cmd.Flags().GetString("repository")
		if err != nil {
			return err
		}
		if repository == "" {
			return fmt.Errorf("repository flag is required")
		}

		githubClient, err := github.NewClient()
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}

		repo, err := githubClient.GetRepository(cmd.Context(), repository)
		if err != nil {
			return err
		}

		logging.Info("announcing github repository",
			"repository", repo.FullName,
			"id", repo.ID)

		// The repository's own page is the human-facing link.
		body := mapper.NewGitHubRepoMessageBody(repo, repo.HTMLURL)
		return deliver(cmd, body)
	},
}

var githubIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Announce a GitHub issue",
	Long: `Announce a GitHub issue to the bridge.

The issue and its repository are fetched in the same API conversation, so
the repository sub-object of the message body is guaranteed to describe the
repository the issue belongs to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repository, err := cmd.Flags().GetString("repository")
		if err != nil {
			return err
		}
		if repository == "" {
			return fmt.Errorf("repository flag is required")
		}

		number, err := cmd.Flags().GetInt("number")
		if err != nil {
			return err
		}
		if number <= 0 {
			return fmt.Errorf("a positive issue number is required")
		}

		githubClient, err := github.NewClient()
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}

		issue, err := githubClient.GetIssue(cmd.Context(), repository, number)
		if err != nil {
			return err
		}

		repo, err := githubClient.GetRepository(cmd.Context(), repository)
		if err != nil {
			return err
		}

		logging.Info("announcing github issue",
			"repository", repo.FullName,
			"issue_number", issue.Number)

		body := mapper.NewGitHubIssueMessageBody(issue, repo, issue.HTMLURL)
		return deliver(cmd, body)
	},
}

func init() {
	// Only the GitHub subcommands take a repository; the Jira commands are
	// keyed by issue and project keys.
	githubCmd.PersistentFlags().StringP("repository", "r", "", "GitHub repository name (e.g., 'username/repo')")
	githubIssueCmd.Flags().IntP("number", "n", 0, "GitHub issue number")

	githubCmd.AddCommand(githubRepoCmd)
	githubCmd.AddCommand(githubIssueCmd)
}
