package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResumeOverridesClosedSet(t *testing.T) {
	o, err := DecodeResumeOverrides(map[string]interface{}{
		"behaviour_verified": true,
		"ci_passed":          false,
	})
	require.NoError(t, err)
	require.NotNil(t, o.BehaviourVerified)
	assert.True(t, *o.BehaviourVerified)
	require.NotNil(t, o.CIPassed)
	assert.False(t, *o.CIPassed)
	assert.Nil(t, o.Approved)

	_, err = DecodeResumeOverrides(map[string]interface{}{"ci_pased": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ci_pased")

	_, err = DecodeResumeOverrides(map[string]interface{}{"approved": "yes"})
	assert.Error(t, err, "non-boolean values are rejected")
}

func TestResumeOverridesIsZero(t *testing.T) {
	var nilOverrides *ResumeOverrides
	assert.True(t, nilOverrides.IsZero())
	assert.True(t, (&ResumeOverrides{}).IsZero())

	v := true
	assert.False(t, (&ResumeOverrides{Approved: &v}).IsZero())
}

func TestApplyReviewPassedClearsBlockingFindingsOnly(t *testing.T) {
	state := &PipelineState{
		Findings: []Finding{
			{Severity: SeverityCritical, Message: "sql injection"},
			{Severity: SeverityMinor, Message: "naming nit"},
			{Severity: SeverityMajor, Message: "missing auth check"},
		},
	}
	v := true
	(&ResumeOverrides{ReviewPassed: &v}).Apply(state)

	require.Len(t, state.Findings, 1)
	assert.Equal(t, SeverityMinor, state.Findings[0].Severity)
	assert.Empty(t, state.BlockingFindings())
}

func TestApplyCIPassed(t *testing.T) {
	state := &PipelineState{AwaitingCI: true, CILoops: 1}
	pass := true
	(&ResumeOverrides{CIPassed: &pass}).Apply(state)
	assert.False(t, state.AwaitingCI)
	assert.True(t, state.AllVerified)
	assert.Equal(t, 1, state.CILoops)

	state = &PipelineState{AwaitingCI: true, CILoops: 1}
	fail := false
	(&ResumeOverrides{CIPassed: &fail}).Apply(state)
	assert.False(t, state.AwaitingCI)
	assert.False(t, state.AllVerified)
	assert.Equal(t, 2, state.CILoops, "a failed CI verdict consumes a CI loop")
}

func TestApplyRebaseCleanSetsTriState(t *testing.T) {
	state := &PipelineState{}
	require.Nil(t, state.RebaseClean)

	clean := true
	(&ResumeOverrides{RebaseClean: &clean}).Apply(state)
	require.NotNil(t, state.RebaseClean)
	assert.True(t, *state.RebaseClean)
}
