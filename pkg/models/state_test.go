package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostOfUsesSnapshotTable(t *testing.T) {
	snap := &ConfigSnapshot{
		Pricing: map[string]ModelPrice{
			"gemini-2.5-pro": {InputPerMillion: 1.25, OutputPerMillion: 10},
		},
	}

	assert.InDelta(t, 1.25+10, snap.CostOf("gemini-2.5-pro", 1_000_000, 1_000_000), 1e-9)
	assert.InDelta(t, 0.000125+0.0004, snap.CostOf("gemini-2.5-pro", 100, 40), 1e-9)
	assert.Zero(t, snap.CostOf("unpriced-model", 100, 100))

	_, ok := snap.PriceFor("unpriced-model")
	assert.False(t, ok)
}

func TestCostLedgerAccumulatesPerModel(t *testing.T) {
	var ledger CostLedger
	ledger.Add("gemini-2.5-pro", 100, 40, 0.01)
	ledger.Add("gemini-2.5-pro", 200, 60, 0.02)
	ledger.Add("claude-sonnet-4-5", 50, 10, 0.005)

	assert.Equal(t, int64(350), ledger.InputTokens)
	assert.Equal(t, int64(110), ledger.OutputTokens)
	assert.InDelta(t, 0.035, ledger.TotalUSD, 1e-9)

	gem := ledger.ByModel["gemini-2.5-pro"]
	require.NotNil(t, gem)
	assert.Equal(t, int64(300), gem.InputTokens)
	assert.InDelta(t, 0.03, gem.CostUSD, 1e-9)
}

func TestCloneDoesNotAliasLiveState(t *testing.T) {
	state := &PipelineState{
		CRID: "cr-clone001",
		Raw:  &RawChangeRequest{Title: "original"},
		Specs: map[string]*BehaviourSpec{
			"payments": {RepoName: "payments", SpecFiles: []string{"features/a.feature"}},
		},
		Findings: []Finding{{Severity: SeverityMajor, Message: "m"}},
		Config:   &ConfigSnapshot{MaxReviewLoops: 3},
	}

	clone, err := state.Clone()
	require.NoError(t, err)

	clone.Raw.Title = "mutated"
	clone.Specs["payments"].SpecFiles[0] = "features/other.feature"
	clone.Findings[0].Message = "changed"
	clone.Config.MaxReviewLoops = 99

	assert.Equal(t, "original", state.Raw.Title)
	assert.Equal(t, "features/a.feature", state.Specs["payments"].SpecFiles[0])
	assert.Equal(t, "m", state.Findings[0].Message)
	assert.Equal(t, 3, state.Config.MaxReviewLoops)
}

func TestFindingBlocking(t *testing.T) {
	assert.True(t, Finding{Severity: SeverityCritical}.Blocking())
	assert.True(t, Finding{Severity: SeverityMajor}.Blocking())
	assert.False(t, Finding{Severity: SeverityMinor}.Blocking())
	assert.False(t, Finding{Severity: SeverityInfo}.Blocking())
}
