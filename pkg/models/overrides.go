package models

import (
	"encoding/json"
	"fmt"
)

// ResumeOverrides are structured state patches attached to a resume
// request. They influence routing exactly once and never persist
// beyond the resume cycle.
type ResumeOverrides struct {
	BehaviourVerified *bool `json:"behaviour_verified,omitempty"`
	ReviewPassed      *bool `json:"review_passed,omitempty"`
	RebaseClean       *bool `json:"rebase_clean,omitempty"`
	Approved          *bool `json:"approved,omitempty"`
	CIPassed          *bool `json:"ci_passed,omitempty"`
}

// IsZero reports whether no override is set.
func (o *ResumeOverrides) IsZero() bool {
	return o == nil ||
		(o.BehaviourVerified == nil && o.ReviewPassed == nil &&
			o.RebaseClean == nil && o.Approved == nil && o.CIPassed == nil)
}

// DecodeResumeOverrides parses an override payload, rejecting unknown
// keys. Overrides are a closed set; a typo must fail loudly rather
// than silently resume at the wrong node.
func DecodeResumeOverrides(payload map[string]interface{}) (*ResumeOverrides, error) {
	known := map[string]bool{
		"behaviour_verified": true,
		"review_passed":      true,
		"rebase_clean":       true,
		"approved":           true,
		"ci_passed":          true,
	}
	for k := range payload {
		if !known[k] {
			return nil, fmt.Errorf("unknown resume override %q", k)
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out ResumeOverrides
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid resume overrides: %w", err)
	}
	return &out, nil
}

// Apply rewrites the state fields the overrides name.
func (o *ResumeOverrides) Apply(state *PipelineState) {
	if o == nil {
		return
	}
	if o.BehaviourVerified != nil {
		state.Verified = *o.BehaviourVerified
	}
	if o.ReviewPassed != nil && *o.ReviewPassed {
		// Clearing blocking findings marks review as passed.
		var kept []Finding
		for _, f := range state.Findings {
			if !f.Blocking() {
				kept = append(kept, f)
			}
		}
		state.Findings = kept
	}
	if o.RebaseClean != nil {
		v := *o.RebaseClean
		state.RebaseClean = &v
	}
	if o.Approved != nil {
		state.Approved = *o.Approved
	}
	if o.CIPassed != nil {
		state.AwaitingCI = false
		state.AllVerified = *o.CIPassed
		if !*o.CIPassed {
			state.CILoops++
		}
	}
}
