// Package mapper converts provider-native GitHub and Jira records into the
// namespaced message bodies delivered to the bridge, and decodes raw
// provider JSON into typed records.
//
// Every function in this package is a pure function of its inputs and is
// safe for concurrent use.
package mapper

import (
	"encoding/json"

	"github.com/globekeeper/bridges-as/pkg/models"
)

// requireKeys parses raw into its top-level fields and verifies that every
// required wire key is present. Unknown keys are ignored; provider APIs send
// far more than the records model.
func requireKeys(recordType string, raw []byte, required ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &DecodeError{RecordType: recordType, Err: err}
	}
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return nil, &MissingFieldError{RecordType: recordType, Field: key}
		}
	}
	return fields, nil
}

// decodeRecord checks the required wire keys, then unmarshals raw into a
// fresh record. A type mismatch on any field surfaces as a DecodeError.
func decodeRecord[T any](recordType string, raw []byte, required ...string) (T, error) {
	var record T
	if _, err := requireKeys(recordType, raw, required...); err != nil {
		return record, err
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return record, &DecodeError{RecordType: recordType, Err: err}
	}
	return record, nil
}

// DecodeRepository parses a GitHub repository payload. The description field
// is the one optional field: absent or null on the wire decodes to a nil
// Description, and a nil Description is omitted again on encode.
func DecodeRepository(raw []byte) (models.Repository, error) {
	return decodeRecord[models.Repository]("github repository", raw,
		"id", "full_name", "html_url")
}

// DecodeGitHubIssue parses a GitHub issue payload.
func DecodeGitHubIssue(raw []byte) (models.Issue, error) {
	return decodeRecord[models.Issue]("github issue", raw,
		"id", "html_url", "number", "title")
}

// DecodeJiraProject parses a Jira project payload.
func DecodeJiraProject(raw []byte) (models.JiraProject, error) {
	return decodeRecord[models.JiraProject]("jira project", raw,
		"self", "id", "key")
}

// DecodeJiraIssue parses a Jira issue payload, requiring the embedded
// project reference under fields.project to be complete as well.
func DecodeJiraIssue(raw []byte) (models.JiraIssue, error) {
	var issue models.JiraIssue
	fields, err := requireKeys("jira issue", raw, "self", "id", "key", "fields")
	if err != nil {
		return issue, err
	}
	inner, err := requireKeys("jira issue fields", fields["fields"], "project")
	if err != nil {
		return issue, err
	}
	if _, err := requireKeys("jira issue project", inner["project"], "self", "id", "key"); err != nil {
		return issue, err
	}
	if err := json.Unmarshal(raw, &issue); err != nil {
		return issue, &DecodeError{RecordType: "jira issue", Err: err}
	}
	return issue, nil
}

// DecodeJiraIssueLight parses the reduced issue form used where the project
// context is already known.
func DecodeJiraIssueLight(raw []byte) (models.JiraIssueLight, error) {
	return decodeRecord[models.JiraIssueLight]("jira issue (light)", raw,
		"self", "key")
}

// DecodeJiraVersion parses a Jira project version payload.
func DecodeJiraVersion(raw []byte) (models.JiraVersion, error) {
	return decodeRecord[models.JiraVersion]("jira version", raw,
		"self", "id", "description", "name", "projectId")
}
