package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CollideNV/hadron/pkg/agent/prompt"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/models"
)

// triggerHandler handles POST /api/pipeline/trigger.
// The config snapshot is frozen here: later config changes never
// affect an already-triggered run.
func (s *Server) triggerHandler(c *gin.Context) {
	var raw models.RawChangeRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	snapshot := s.pipelineCfg.Snapshot(&raw)
	run, err := s.runs.CreateRun(c.Request.Context(), &raw, snapshot)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	s.recordAudit(c, run.ID, "trigger", map[string]interface{}{
		"source":      raw.Source,
		"external_id": raw.ExternalID,
	})

	c.JSON(http.StatusCreated, TriggerResponse{CRID: run.ID, Status: string(run.Status)})
}

// listRunsHandler handles GET /api/pipeline/runs.
func (s *Server) listRunsHandler(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 500"})
			return
		}
		limit = n
	}

	runs, err := s.runs.ListRuns(c.Request.Context(), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	out := make([]RunResponse, len(runs))
	for i, run := range runs {
		out[i] = toRunResponse(run)
	}
	c.JSON(http.StatusOK, gin.H{"runs": out})
}

// getRunHandler handles GET /api/pipeline/runs/:cr_id.
func (s *Server) getRunHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	run, err := s.runs.GetRun(c.Request.Context(), crID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	count, err := s.checkpoints.CountCheckpoints(c.Request.Context(), crID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, RunDetailResponse{
		RunResponse:     toRunResponse(run),
		ConfigSnapshot:  run.ConfigSnapshot,
		CheckpointCount: count,
	})
}

// resumeRequest is the body of POST /api/pipeline/runs/:cr_id/resume.
// Overrides are optional; an empty body resumes from the latest
// checkpoint without state patches.
type resumeRequest struct {
	Overrides map[string]interface{} `json:"overrides,omitempty"`
}

// resumeHandler handles POST /api/pipeline/runs/:cr_id/resume.
func (s *Server) resumeHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if len(req.Overrides) > 0 {
		// Validate against the closed override set before storing.
		if _, err := models.DecodeResumeOverrides(req.Overrides); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Stored before the resume request so the claiming worker is
		// guaranteed to see them. The TTL bounds how long unclaimed
		// overrides stay valid.
		err := s.registry.Set(c.Request.Context(), crID, interventions.KindResumeOverrides, "",
			req.Overrides, interventions.ResumeOverridesTTL)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
	}

	if err := s.runs.RequestResume(c.Request.Context(), crID); err != nil {
		if len(req.Overrides) > 0 {
			// Roll back the stored overrides; the run is not resumable.
			_, _ = s.registry.GetAndDelete(c.Request.Context(), crID, interventions.KindResumeOverrides, "")
		}
		abortWithServiceError(c, err)
		return
	}

	s.recordAudit(c, crID, "resume", map[string]interface{}{"overrides": req.Overrides})
	c.JSON(http.StatusAccepted, gin.H{"cr_id": crID, "status": models.StatusPaused, "resume_requested": true})
}

// interveneRequest is the body of POST /api/pipeline/runs/:cr_id/intervene.
type interveneRequest struct {
	Text string `json:"text" binding:"required"`
}

// interveneHandler stores free-text guidance that the executor merges
// into the next agent prompts.
func (s *Server) interveneHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	var req interveneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if _, err := s.runs.GetRun(c.Request.Context(), crID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	err := s.registry.Set(c.Request.Context(), crID, interventions.KindInstructions, "",
		map[string]interface{}{"text": req.Text}, 0)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	s.recordAudit(c, crID, "intervene", nil)
	c.JSON(http.StatusAccepted, gin.H{"cr_id": crID, "accepted": true})
}

// nudgeRequest is the body of POST /api/pipeline/runs/:cr_id/nudge.
type nudgeRequest struct {
	Role    string `json:"role" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// nudgeHandler stores guidance for one agent role, injected between
// that agent's tool rounds.
func (s *Server) nudgeHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	var req nudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role and message are required"})
		return
	}
	if prompt.SystemPrompt(req.Role) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown agent role: " + req.Role})
		return
	}

	if _, err := s.runs.GetRun(c.Request.Context(), crID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	err := s.registry.Set(c.Request.Context(), crID, interventions.KindNudge, req.Role,
		map[string]interface{}{"message": req.Message}, 0)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	s.recordAudit(c, crID, "nudge", map[string]interface{}{"role": req.Role})
	c.JSON(http.StatusAccepted, gin.H{"cr_id": crID, "role": req.Role, "accepted": true})
}

// cancelHandler handles POST /api/pipeline/runs/:cr_id/cancel.
// Only paused runs can be cancelled; a running CR must reach a pause
// point first.
func (s *Server) cancelHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	if err := s.runs.Cancel(c.Request.Context(), crID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	if s.publisher != nil {
		if err := s.publisher.NotifyRunStatus(c.Request.Context(), crID, models.StatusCancelled); err != nil {
			s.logger.Warn("run status notify failed", "cr_id", crID, "error", err)
		}
	}

	s.recordAudit(c, crID, "cancel", nil)
	c.JSON(http.StatusOK, gin.H{"cr_id": crID, "status": models.StatusCancelled})
}

// listConversationsHandler handles GET /api/pipeline/runs/:cr_id/conversations.
func (s *Server) listConversationsHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	if _, err := s.runs.GetRun(c.Request.Context(), crID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	keys, err := s.conversations.ListKeys(c.Request.Context(), crID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cr_id": crID, "keys": keys})
}

// getConversationHandler handles GET /api/pipeline/runs/:cr_id/conversations/:key.
func (s *Server) getConversationHandler(c *gin.Context) {
	crID := c.Param("cr_id")
	key := c.Param("key")

	messages, err := s.conversations.Get(c.Request.Context(), crID, key)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cr_id": crID, "key": key, "messages": messages})
}

// auditTrailHandler handles GET /api/pipeline/runs/:cr_id/audit.
func (s *Server) auditTrailHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	if _, err := s.runs.GetRun(c.Request.Context(), crID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	entries, err := s.audit.List(c.Request.Context(), crID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	out := make([]gin.H, len(entries))
	for i, e := range entries {
		out[i] = gin.H{
			"actor":      e.Actor,
			"action":     e.Action,
			"detail":     e.Detail,
			"created_at": e.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"cr_id": crID, "entries": out})
}

// workerLogHandler handles GET /api/pipeline/runs/:cr_id/logs.
func (s *Server) workerLogHandler(c *gin.Context) {
	crID := c.Param("cr_id")

	run, err := s.runs.GetRun(c.Request.Context(), crID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	log := ""
	if run.WorkerLog != nil {
		log = *run.WorkerLog
	}
	c.String(http.StatusOK, log)
}

// recordAudit writes an audit entry; failures never block the action.
func (s *Server) recordAudit(c *gin.Context, crID, action string, detail map[string]interface{}) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(c.Request.Context(), crID, c.GetHeader("X-Actor"), action, detail); err != nil {
		s.logger.Warn("audit record failed", "cr_id", crID, "action", action, "error", err)
	}
}
