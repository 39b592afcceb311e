package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globekeeper/bridges-as/pkg/models"
)

func TestNewGitHubRepoMessageBody(t *testing.T) {
	repo := models.Repository{
		ID:       42,
		FullName: "acme/widgets",
		HTMLURL:  "https://github.com/acme/widgets",
	}

	body := NewGitHubRepoMessageBody(repo, "https://github.com/acme/widgets")

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Equal(t,
		`{"gk.bridgeas.github.repo":{"id":42,"name":"acme/widgets","url":"https://github.com/acme/widgets"},"external_url":"https://github.com/acme/widgets"}`,
		string(encoded))
}

// TestMessageBodyDeterminism verifies that identical inputs serialize to
// byte-identical output.
func TestMessageBodyDeterminism(t *testing.T) {
	repo := models.Repository{ID: 42, FullName: "acme/widgets", HTMLURL: "https://github.com/acme/widgets"}

	first, err := json.Marshal(NewGitHubRepoMessageBody(repo, repo.HTMLURL))
	require.NoError(t, err)
	second, err := json.Marshal(NewGitHubRepoMessageBody(repo, repo.HTMLURL))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewGitHubIssueMessageBody(t *testing.T) {
	issue := models.Issue{
		ID:      7,
		HTMLURL: "https://github.com/acme/widgets/issues/3",
		Number:  3,
		Title:   "Crash on start",
	}
	repo := models.Repository{
		ID:       42,
		FullName: "acme/widgets",
		HTMLURL:  "https://github.com/acme/widgets",
	}

	body := NewGitHubIssueMessageBody(issue, repo, issue.HTMLURL)

	assert.Equal(t, uint32(7), body.Issue.ID)
	assert.Equal(t, uint32(3), body.Issue.Number)
	assert.Equal(t, "Crash on start", body.Issue.Title)
	assert.Equal(t, "https://github.com/acme/widgets/issues/3", body.Issue.URL)
	assert.Equal(t, uint32(42), body.Repo.ID)
	assert.Equal(t, "acme/widgets", body.Repo.Name)
	assert.Equal(t, "https://github.com/acme/widgets", body.Repo.URL)
	assert.Equal(t, issue.HTMLURL, body.ExternalURL)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &keys))
	assert.Contains(t, keys, models.NamespaceGitHubIssue)
	assert.Contains(t, keys, models.NamespaceGitHubRepo)
	assert.Contains(t, keys, "external_url")
}

func TestSimplifyJira(t *testing.T) {
	issue := models.JiraIssue{
		Self: "https://jira.example.com/rest/api/2/issue/10002",
		ID:   "10002",
		Key:  "ENG-7",
		Fields: models.JiraIssueFields{
			Project: models.JiraProject{
				Self: "https://jira.example.com/rest/api/2/project/10",
				ID:   "10",
				Key:  "ENG",
			},
		},
	}

	simpleIssue := SimplifyJiraIssue(issue)
	assert.Equal(t, "10002", simpleIssue.ID)
	assert.Equal(t, "ENG-7", simpleIssue.Key)
	assert.Equal(t, issue.Self, simpleIssue.APIURL)

	simpleProject := SimplifyJiraProject(issue.Fields.Project)
	assert.Equal(t, "10", simpleProject.ID)
	assert.Equal(t, "ENG", simpleProject.Key)
	assert.Equal(t, issue.Fields.Project.Self, simpleProject.APIURL)
}

// TestJiraMessageBodyOmitsSelf verifies the self-link never appears under
// its wire name inside a serialized message body; it only survives as
// api_url inside the simplified forms.
func TestJiraMessageBodyOmitsSelf(t *testing.T) {
	issue := models.JiraIssueSimpleItem{
		ID:     "10002",
		Key:    "ENG-7",
		APIURL: "https://jira.example.com/rest/api/2/issue/10002",
	}
	project := models.JiraIssueSimpleItem{
		ID:     "10",
		Key:    "ENG",
		APIURL: "https://jira.example.com/rest/api/2/project/10",
	}

	body := NewJiraIssueMessageBody(issue, project, "https://jira.example.com/browse/ENG-7")

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), `"self"`)
	assert.Contains(t, string(encoded), `"api_url":"https://jira.example.com/rest/api/2/issue/10002"`)
	assert.Equal(t, "https://jira.example.com/browse/ENG-7", body.ExternalURL)
}

// TestIDTypesPreserved pins the id representations: GitHub ids are JSON
// numbers, Jira ids are JSON strings, even when numeric-looking.
func TestIDTypesPreserved(t *testing.T) {
	repoBody := NewGitHubRepoMessageBody(models.Repository{ID: 42, FullName: "acme/widgets", HTMLURL: "u"}, "u")
	encoded, err := json.Marshal(repoBody)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"id":42`)

	jiraBody := NewJiraIssueMessageBody(
		models.JiraIssueSimpleItem{ID: "10002", Key: "ENG-7", APIURL: "a"},
		models.JiraIssueSimpleItem{ID: "10", Key: "ENG", APIURL: "a"},
		"u",
	)
	encoded, err = json.Marshal(jiraBody)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"id":"10002"`)
	assert.Contains(t, string(encoded), `"id":"10"`)
	assert.NotContains(t, string(encoded), `"id":10`)
}

// TestNoPairingValidation documents the builder contract: sub-objects are
// copied independently and the caller owns the guarantee that they belong
// together.
func TestNoPairingValidation(t *testing.T) {
	issue := models.Issue{ID: 7, HTMLURL: "https://github.com/other/repo/issues/1", Number: 1, Title: "Unrelated"}
	repo := models.Repository{ID: 42, FullName: "acme/widgets", HTMLURL: "https://github.com/acme/widgets"}

	body := NewGitHubIssueMessageBody(issue, repo, issue.HTMLURL)
	assert.Equal(t, "acme/widgets", body.Repo.Name)
	assert.Equal(t, "Unrelated", body.Issue.Title)
}
