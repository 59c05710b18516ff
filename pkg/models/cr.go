// Package models defines the shared domain types: change requests,
// pipeline state, resume overrides, and the frozen config snapshot.
package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Run status values. Mirrors the ent enum on CRRun.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// IsTerminalStatus reports whether a run in this status can never run again.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed || status == StatusCancelled
}

// Pause reasons recorded on CRRun.pause_reason.
const (
	PauseWaitingCI         = "waiting_ci"
	PauseWaitingApproval   = "waiting_approval"
	PauseVerificationLimit = "verification_loop_limit"
	PauseReviewLimit       = "review_loop_limit"
	PauseCILimit           = "ci_loop_limit"
	PauseRebaseConflict    = "rebase_conflict"
	PauseStageTimeout      = "stage_timeout"
	PauseCostLimit         = "cost_limit"
	PauseNodeError         = "node_error"
)

var sourcePattern = regexp.MustCompile(`^(api|jira|github|ado|slack)$`)

// RawChangeRequest is the trigger payload as received by the Controller API.
type RawChangeRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Source             string   `json:"source"`
	ExternalID         string   `json:"external_id,omitempty"`
	RepoURL            string   `json:"repo_url,omitempty"`
	RepoURLs           []string `json:"repo_urls,omitempty"`
	RepoDefaultBranch  string   `json:"repo_default_branch,omitempty"`
	TestCommand        string   `json:"test_command,omitempty"`
	Language           string   `json:"language,omitempty"`
	Model              string   `json:"model,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
}

// Validate checks the trigger payload and fills defaults.
func (r *RawChangeRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" || len(r.Title) > 500 {
		return fmt.Errorf("title must be 1-500 characters")
	}
	if r.Source == "" {
		r.Source = "api"
	}
	if !sourcePattern.MatchString(r.Source) {
		return fmt.Errorf("source must be one of api, jira, github, ado, slack")
	}
	if r.RepoDefaultBranch == "" {
		r.RepoDefaultBranch = "main"
	}
	if r.TestCommand == "" {
		r.TestCommand = "pytest"
	}
	if r.Language == "" {
		r.Language = "python"
	}
	if r.RepoURL != "" {
		found := false
		for _, u := range r.RepoURLs {
			if u == r.RepoURL {
				found = true
				break
			}
		}
		if !found {
			r.RepoURLs = append([]string{r.RepoURL}, r.RepoURLs...)
		}
	}
	return nil
}

// StructuredCR is the intake agent's parse of the raw request.
type StructuredCR struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	AffectedDomains    []string `json:"affected_domains"`
	Priority           string   `json:"priority"`
	Constraints        []string `json:"constraints"`
	RiskFlags          []string `json:"risk_flags"`
}

// FallbackStructuredCR builds the default StructuredCR used when the
// intake agent's output cannot be parsed. The run continues; the flag
// tells reviewers the structure is machine-defaulted.
func FallbackStructuredCR(raw *RawChangeRequest) *StructuredCR {
	return &StructuredCR{
		Title:              raw.Title,
		Description:        raw.Description,
		AcceptanceCriteria: raw.AcceptanceCriteria,
		Priority:           "medium",
		RiskFlags:          []string{"intake_parse_failed"},
	}
}
