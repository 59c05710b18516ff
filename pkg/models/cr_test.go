package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawChangeRequestValidateDefaults(t *testing.T) {
	raw := &RawChangeRequest{Title: "  Add audit logging  "}
	require.NoError(t, raw.Validate())

	assert.Equal(t, "Add audit logging", raw.Title)
	assert.Equal(t, "api", raw.Source)
	assert.Equal(t, "main", raw.RepoDefaultBranch)
	assert.Equal(t, "pytest", raw.TestCommand)
	assert.Equal(t, "python", raw.Language)
}

func TestRawChangeRequestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  RawChangeRequest
	}{
		{"empty title", RawChangeRequest{Title: "   "}},
		{"overlong title", RawChangeRequest{Title: strings.Repeat("x", 501)}},
		{"unknown source", RawChangeRequest{Title: "ok", Source: "carrier-pigeon"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.raw.Validate())
		})
	}
}

func TestRawChangeRequestValidateFoldsRepoURL(t *testing.T) {
	raw := &RawChangeRequest{
		Title:    "multi-repo change",
		RepoURL:  "https://git.example.com/payments.git",
		RepoURLs: []string{"https://git.example.com/ledger.git"},
	}
	require.NoError(t, raw.Validate())
	assert.Equal(t, []string{
		"https://git.example.com/payments.git",
		"https://git.example.com/ledger.git",
	}, raw.RepoURLs)

	// Already present: no duplicate.
	require.NoError(t, raw.Validate())
	assert.Len(t, raw.RepoURLs, 2)
}

func TestFallbackStructuredCR(t *testing.T) {
	raw := &RawChangeRequest{
		Title:              "fix checkout",
		Description:        "cart totals drift",
		AcceptanceCriteria: []string{"totals match line items"},
	}
	cr := FallbackStructuredCR(raw)
	assert.Equal(t, raw.Title, cr.Title)
	assert.Equal(t, raw.AcceptanceCriteria, cr.AcceptanceCriteria)
	assert.Equal(t, "medium", cr.Priority)
	assert.Contains(t, cr.RiskFlags, "intake_parse_failed")
}

func TestIsTerminalStatus(t *testing.T) {
	for _, s := range []string{StatusCompleted, StatusFailed, StatusCancelled} {
		assert.True(t, IsTerminalStatus(s), s)
	}
	for _, s := range []string{StatusPending, StatusRunning, StatusPaused} {
		assert.False(t, IsTerminalStatus(s), s)
	}
}
