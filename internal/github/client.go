// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/globekeeper/bridges-as/internal/config"
	"github.com/globekeeper/bridges-as/internal/logging"
	"github.com/globekeeper/bridges-as/pkg/models"
)

// Client encapsulates the GitHub API client.
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client using configuration from environment variables.
// It initializes the client with the appropriate base URL, authenticates with the GitHub API,
// and tests the connection. It returns the configured client or an error if initialization fails.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateGitHubConfig(cfg); err != nil {
		return nil, err
	}

	token := cfg.GitHub.Token

	domain := cfg.GitHub.Domain
	apiURL := apiBaseURL(domain)

	logging.Debug("github configuration",
		"domain", domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(token))

	// Create the oauth2 client
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	// Create GitHub client with custom base URL
	client := github.NewClient(tc)

	// If not using default GitHub.com, set custom API endpoint
	if domain != "github.com" {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}

		client.BaseURL = parsedURL

		// For GitHub Enterprise, set the upload URL to the same endpoint
		client.UploadURL = parsedURL
	}

	// Test the token
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil {
			logging.Error("failed to test github token",
				"error", err,
				"status_code", resp.StatusCode)
		}
		return nil, fmt.Errorf("error testing github token: %w", err)
	}

	logging.Info("github authentication successful",
		"username", user.GetLogin())

	return &Client{client: client}, nil
}

// apiBaseURL returns the REST API endpoint for a GitHub domain. GitHub
// Enterprise serves the API under /api/v3/ on the instance host.
func apiBaseURL(domain string) string {
	if domain == "github.com" {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}

// splitRepository parses a repository reference in "owner/repo" form.
func splitRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository format: %s, expected format: owner/repo", repository)
	}
	return parts[0], parts[1], nil
}

// GetRepository retrieves a repository and narrows it to the record the
// bridge needs. The repository should be in the format "owner/repo".
func (c *Client) GetRepository(ctx context.Context, repository string) (models.Repository, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return models.Repository{}, err
	}

	apiRepo, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		logging.Error("failed to fetch github repository",
			"repository", repository,
			"error", err)
		return models.Repository{}, fmt.Errorf("failed to fetch GitHub repository: %w", err)
	}

	return models.Repository{
		// GitHub ids fit the fixed 32-bit width the bridge contract uses.
		ID:          uint32(apiRepo.GetID()),
		FullName:    apiRepo.GetFullName(),
		HTMLURL:     apiRepo.GetHTMLURL(),
		Description: apiRepo.Description,
	}, nil
}

// GetIssue retrieves a single issue and narrows it to the record the bridge
// needs. The repository should be in the format "owner/repo".
func (c *Client) GetIssue(ctx context.Context, repository string, number int) (models.Issue, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return models.Issue{}, err
	}

	apiIssue, _, err := c.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		logging.Error("failed to fetch github issue",
			"repository", repository,
			"issue_number", number,
			"error", err)
		return models.Issue{}, fmt.Errorf("failed to fetch GitHub issue: %w", err)
	}

	// Pull requests are also served by the Issues API; the bridge only
	// announces issues.
	if apiIssue.PullRequestLinks != nil {
		return models.Issue{}, fmt.Errorf("%s#%d is a pull request, not an issue", repository, number)
	}

	return models.Issue{
		ID:      uint32(apiIssue.GetID()),
		HTMLURL: apiIssue.GetHTMLURL(),
		Number:  uint32(apiIssue.GetNumber()),
		Title:   apiIssue.GetTitle(),
	}, nil
}
