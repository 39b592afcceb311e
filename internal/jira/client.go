// Package jira provides functionality for interacting with the Jira API.
package jira

import (
	"fmt"
	"strconv"
	"strings"

	jira "github.com/andygrunwald/go-jira"

	"github.com/globekeeper/bridges-as/internal/config"
	"github.com/globekeeper/bridges-as/internal/logging"
	"github.com/globekeeper/bridges-as/pkg/models"
)

// Client handles interactions with the Jira API.
type Client struct {
	client  *jira.Client
	baseURL string
}

// NewClient creates a new Jira client from environment configuration.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateJiraConfig(cfg); err != nil {
		return nil, err
	}

	// Create Jira authentication transport
	tp := jira.BasicAuthTransport{
		Username: cfg.Jira.Username,
		Password: cfg.Jira.Token,
	}

	client, err := jira.NewClient(tp.Client(), cfg.Jira.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	logging.Debug("jira configuration",
		"url", cfg.Jira.URL,
		"username", cfg.Jira.Username,
		"token", logging.MaskSensitive(cfg.Jira.Token))

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.Jira.URL, "/"),
	}, nil
}

// BrowseURL returns the human-facing link for an issue or project key,
// distinct from the API self links carried inside the records.
func (c *Client) BrowseURL(key string) string {
	return fmt.Sprintf("%s/browse/%s", c.baseURL, key)
}

// GetProject retrieves a Jira project by key.
func (c *Client) GetProject(projectKey string) (models.JiraProject, error) {
	if c.client == nil {
		return models.JiraProject{}, fmt.Errorf("jira client not initialized")
	}

	project, _, err := c.client.Project.Get(projectKey)
	if err != nil {
		logging.Error("failed to fetch jira project",
			"project", projectKey,
			"error", err)
		return models.JiraProject{}, fmt.Errorf("failed to fetch Jira project: %w", err)
	}

	return models.JiraProject{
		Self: project.Self,
		ID:   project.ID,
		Key:  project.Key,
	}, nil
}

// GetIssue retrieves a Jira issue by key, including its embedded project
// reference.
func (c *Client) GetIssue(issueKey string) (models.JiraIssue, error) {
	if c.client == nil {
		return models.JiraIssue{}, fmt.Errorf("jira client not initialized")
	}

	issue, _, err := c.client.Issue.Get(issueKey, nil)
	if err != nil {
		logging.Error("failed to fetch jira issue",
			"issue", issueKey,
			"error", err)
		return models.JiraIssue{}, fmt.Errorf("failed to fetch Jira issue: %w", err)
	}

	record := models.JiraIssue{
		Self: issue.Self,
		ID:   issue.ID,
		Key:  issue.Key,
	}
	if issue.Fields != nil {
		record.Fields.Project = models.JiraProject{
			Self: issue.Fields.Project.Self,
			ID:   issue.Fields.Project.ID,
			Key:  issue.Fields.Project.Key,
		}
	}

	return record, nil
}

// GetProjectVersions retrieves the versions of a Jira project. go-jira
// exposes the owning project id as an int; it is restored to the opaque
// string form Jira uses on the wire.
func (c *Client) GetProjectVersions(projectKey string) ([]models.JiraVersion, error) {
	if c.client == nil {
		return nil, fmt.Errorf("jira client not initialized")
	}

	project, _, err := c.client.Project.Get(projectKey)
	if err != nil {
		logging.Error("failed to fetch jira project versions",
			"project", projectKey,
			"error", err)
		return nil, fmt.Errorf("failed to fetch Jira project: %w", err)
	}

	versions := make([]models.JiraVersion, 0, len(project.Versions))
	for _, v := range project.Versions {
		versions = append(versions, models.JiraVersion{
			Self:        v.Self,
			ID:          v.ID,
			Description: v.Description,
			Name:        v.Name,
			ProjectID:   strconv.Itoa(v.ProjectID),
		})
	}

	return versions, nil
}
