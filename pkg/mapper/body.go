package mapper

import (
	"github.com/globekeeper/bridges-as/pkg/models"
)

// newGitHubRepoItem builds the repository sub-object shared by both GitHub
// message bodies: the full name becomes the display name and the HTML URL
// becomes the sub-object URL.
func newGitHubRepoItem(repo models.Repository) models.GitHubRepoItem {
	return models.GitHubRepoItem{
		ID:   repo.ID,
		Name: repo.FullName,
		URL:  repo.HTMLURL,
	}
}

// NewGitHubRepoMessageBody builds the message body announcing a GitHub
// repository. externalURL is the human-navigable link to the repository.
func NewGitHubRepoMessageBody(repo models.Repository, externalURL string) models.GitHubRepoMessageBody {
	return models.GitHubRepoMessageBody{
		Repo:        newGitHubRepoItem(repo),
		ExternalURL: externalURL,
	}
}

// NewGitHubIssueMessageBody builds the message body announcing a GitHub
// issue together with its repository. The issue and repo sub-objects are
// populated independently; the caller is responsible for passing an issue
// and a repository sourced from the same API conversation, as no
// cross-check is performed here.
func NewGitHubIssueMessageBody(issue models.Issue, repo models.Repository, externalURL string) models.GitHubIssueMessageBody {
	return models.GitHubIssueMessageBody{
		Issue: models.GitHubIssueItem{
			ID:     issue.ID,
			Number: issue.Number,
			Title:  issue.Title,
			URL:    issue.HTMLURL,
		},
		Repo:        newGitHubRepoItem(repo),
		ExternalURL: externalURL,
	}
}

// NewJiraIssueMessageBody builds the message body announcing a Jira issue
// together with its project. Both arguments already carry their api_url;
// nothing is recomputed. As with the GitHub issue body, the caller
// guarantees the issue actually belongs to the project.
func NewJiraIssueMessageBody(issue, project models.JiraIssueSimpleItem, externalURL string) models.JiraIssueMessageBody {
	return models.JiraIssueMessageBody{
		Issue:       issue,
		Project:     project,
		ExternalURL: externalURL,
	}
}

// SimplifyJiraIssue flattens a Jira issue into the message-body form. The
// API self-link is carried over as api_url; the self key itself never
// appears in serialized message bodies.
func SimplifyJiraIssue(issue models.JiraIssue) models.JiraIssueSimpleItem {
	return models.JiraIssueSimpleItem{
		ID:     issue.ID,
		Key:    issue.Key,
		APIURL: issue.Self,
	}
}

// SimplifyJiraProject flattens a Jira project into the message-body form,
// with the same self-link to api_url rule as SimplifyJiraIssue.
func SimplifyJiraProject(project models.JiraProject) models.JiraIssueSimpleItem {
	return models.JiraIssueSimpleItem{
		ID:     project.ID,
		Key:    project.Key,
		APIURL: project.Self,
	}
}
