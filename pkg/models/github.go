// Package models defines the provider records and bridge message bodies
// shared across the application.
package models

// Namespace keys used both as JSON object keys and as the discriminator of
// which provider/entity a message body describes. These values are part of
// the wire contract with the bridge and must never change.
const (
	NamespaceGitHubRepo  = "gk.bridgeas.github.repo"
	NamespaceGitHubIssue = "gk.bridgeas.github.issue"
	NamespaceJiraIssue   = "gk.bridgeas.jira.issue"
	NamespaceJiraProject = "gk.bridgeas.jira.project"
)

// Repository is the minimal GitHub repository record consumed by the bridge.
type Repository struct {
	// ID is GitHub's numeric repository identifier.
	ID uint32 `json:"id"`

	// FullName is the "owner/name" form of the repository name.
	FullName string `json:"full_name"`

	// HTMLURL is the human-facing URL of the repository.
	HTMLURL string `json:"html_url"`

	// Description is nil when the repository has no description. An absent
	// wire field stays absent across a decode/encode round trip.
	Description *string `json:"description,omitempty"`
}

// Issue is the minimal GitHub issue record consumed by the bridge.
type Issue struct {
	// ID is GitHub's numeric issue identifier, distinct from Number.
	ID uint32 `json:"id"`

	// HTMLURL is the human-facing URL of the issue.
	HTMLURL string `json:"html_url"`

	// Number is the issue number within its repository (e.g. 42).
	Number uint32 `json:"number"`

	// Title is the issue's title.
	Title string `json:"title"`
}

// GitHubRepoItem is the repository sub-object embedded in message bodies.
type GitHubRepoItem struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GitHubIssueItem is the issue sub-object embedded in message bodies.
type GitHubIssueItem struct {
	ID     uint32 `json:"id"`
	Number uint32 `json:"number"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// GitHubRepoMessageBody notifies the bridge about a GitHub repository.
type GitHubRepoMessageBody struct {
	Repo GitHubRepoItem `json:"gk.bridgeas.github.repo"`

	// ExternalURL is the human-navigable link to the repository.
	ExternalURL string `json:"external_url"`
}

// GitHubIssueMessageBody notifies the bridge about a GitHub issue together
// with the repository it belongs to.
type GitHubIssueMessageBody struct {
	Issue GitHubIssueItem `json:"gk.bridgeas.github.issue"`
	Repo  GitHubRepoItem  `json:"gk.bridgeas.github.repo"`

	// ExternalURL is the human-navigable link to the issue.
	ExternalURL string `json:"external_url"`
}
