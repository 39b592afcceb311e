package models

// Jira identifiers are opaque strings throughout: Jira's API renders ids as
// strings even when they look numeric, and they are never compared with
// GitHub's numeric ids.

// JiraProject is a Jira project as returned by the REST API.
type JiraProject struct {
	// Self is the API self-link of the project. It never appears in message
	// bodies; the simplified forms carry it as api_url instead.
	Self string `json:"self"`

	// ID is the project's opaque string identifier.
	ID string `json:"id"`

	// Key is the project key (e.g. "ENG").
	Key string `json:"key"`
}

// JiraIssue is a Jira issue with its embedded project reference.
type JiraIssue struct {
	Self   string          `json:"self"`
	ID     string          `json:"id"`
	Key    string          `json:"key"`
	Fields JiraIssueFields `json:"fields"`
}

// JiraIssueFields holds the subset of Jira issue fields the bridge reads.
type JiraIssueFields struct {
	Project JiraProject `json:"project"`
}

// JiraIssueLight is the reduced issue form used where the project context is
// already known.
type JiraIssueLight struct {
	Self string `json:"self"`
	Key  string `json:"key"`
}

// JiraIssueSimpleItem is the flattened form used inside message bodies, for
// issues and projects alike. APIURL carries what the provider record held in
// its self-link.
type JiraIssueSimpleItem struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	APIURL string `json:"api_url"`
}

// JiraIssueMessageBody notifies the bridge about a Jira issue together with
// the project it belongs to.
type JiraIssueMessageBody struct {
	Issue   JiraIssueSimpleItem `json:"gk.bridgeas.jira.issue"`
	Project JiraIssueSimpleItem `json:"gk.bridgeas.jira.project"`

	// ExternalURL is the human-navigable link to the issue, distinct from
	// the api_url values above.
	ExternalURL string `json:"external_url"`
}

// JiraVersion is a Jira project version as returned by the REST API.
type JiraVersion struct {
	Self        string `json:"self"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Name        string `json:"name"`
	ProjectID   string `json:"projectId"`
}
