package api

import (
	"time"

	"github.com/CollideNV/hadron/ent"
)

// RunResponse is the wire representation of one run.
type RunResponse struct {
	CRID              string     `json:"cr_id"`
	ExternalID        string     `json:"external_id,omitempty"`
	Source            string     `json:"source"`
	Title             string     `json:"title"`
	Status            string     `json:"status"`
	CurrentStage      string     `json:"current_stage,omitempty"`
	PauseReason       string     `json:"pause_reason,omitempty"`
	ErrorMessage      string     `json:"error_message,omitempty"`
	CostUSD           float64    `json:"cost_usd"`
	InputTokens       int64      `json:"input_tokens"`
	OutputTokens      int64      `json:"output_tokens"`
	PodID             string     `json:"pod_id,omitempty"`
	ResumeRequestedAt *time.Time `json:"resume_requested_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// RunDetailResponse extends RunResponse with the frozen configuration
// and checkpoint progress.
type RunDetailResponse struct {
	RunResponse
	ConfigSnapshot  map[string]interface{} `json:"config_snapshot"`
	CheckpointCount int                    `json:"checkpoint_count"`
}

// TriggerResponse is returned by POST /api/pipeline/trigger.
type TriggerResponse struct {
	CRID   string `json:"cr_id"`
	Status string `json:"status"`
}

func toRunResponse(run *ent.CRRun) RunResponse {
	resp := RunResponse{
		CRID:         run.ID,
		Source:       run.Source,
		Title:        run.Title,
		Status:       string(run.Status),
		CostUSD:      run.CostUsd,
		InputTokens:  run.InputTokens,
		OutputTokens: run.OutputTokens,
		CreatedAt:    run.CreatedAt,
		UpdatedAt:    run.UpdatedAt,
	}
	if run.ExternalID != nil {
		resp.ExternalID = *run.ExternalID
	}
	if run.CurrentStage != nil {
		resp.CurrentStage = *run.CurrentStage
	}
	if run.PauseReason != nil {
		resp.PauseReason = *run.PauseReason
	}
	if run.ErrorMessage != nil {
		resp.ErrorMessage = *run.ErrorMessage
	}
	if run.PodID != nil {
		resp.PodID = *run.PodID
	}
	if run.ResumeRequestedAt != nil {
		resp.ResumeRequestedAt = run.ResumeRequestedAt
	}
	return resp
}
