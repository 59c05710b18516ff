// Package api exposes the Controller HTTP surface: pipeline trigger,
// run inspection, operator interventions, and the live event stream.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CollideNV/hadron/pkg/config"
	"github.com/CollideNV/hadron/pkg/database"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/queue"
	"github.com/CollideNV/hadron/pkg/services"
)

// Server bundles the HTTP handlers and their collaborators.
type Server struct {
	pipelineCfg   *config.PipelineConfig
	db            *database.Client
	runs          *services.RunService
	checkpoints   *services.CheckpointService
	conversations *services.ConversationService
	audit         *services.AuditService
	registry      *interventions.Registry
	publisher     *events.Publisher
	streamer      *events.Streamer
	broker        *events.Broker
	pool          *queue.WorkerPool
	logger        *slog.Logger
}

// Deps carries the collaborators the server needs. Broker, streamer,
// and pool are optional; the corresponding endpoints degrade to 503.
type Deps struct {
	PipelineConfig *config.PipelineConfig
	DB             *database.Client
	Runs           *services.RunService
	Checkpoints    *services.CheckpointService
	Conversations  *services.ConversationService
	Audit          *services.AuditService
	Registry       *interventions.Registry
	Publisher      *events.Publisher
	Streamer       *events.Streamer
	Broker         *events.Broker
	Pool           *queue.WorkerPool
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	return &Server{
		pipelineCfg:   deps.PipelineConfig,
		db:            deps.DB,
		runs:          deps.Runs,
		checkpoints:   deps.Checkpoints,
		conversations: deps.Conversations,
		audit:         deps.Audit,
		registry:      deps.Registry,
		publisher:     deps.Publisher,
		streamer:      deps.Streamer,
		broker:        deps.Broker,
		pool:          deps.Pool,
		logger:        slog.Default().With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.healthzHandler)
	r.GET("/readyz", s.readyzHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		pipeline := apiGroup.Group("/pipeline")
		{
			pipeline.POST("/trigger", s.triggerHandler)
			pipeline.GET("/runs", s.listRunsHandler)
			pipeline.GET("/runs/:cr_id", s.getRunHandler)
			pipeline.POST("/runs/:cr_id/resume", s.resumeHandler)
			pipeline.POST("/runs/:cr_id/intervene", s.interveneHandler)
			pipeline.POST("/runs/:cr_id/nudge", s.nudgeHandler)
			pipeline.POST("/runs/:cr_id/cancel", s.cancelHandler)
			pipeline.GET("/runs/:cr_id/conversations", s.listConversationsHandler)
			pipeline.GET("/runs/:cr_id/conversations/:key", s.getConversationHandler)
			pipeline.GET("/runs/:cr_id/audit", s.auditTrailHandler)
			pipeline.GET("/runs/:cr_id/logs", s.workerLogHandler)
		}
		apiGroup.GET("/events/stream", s.eventStreamHandler)
		apiGroup.GET("/ws", s.wsHandler)
	}

	return r
}

// requestLogger is a minimal structured access log.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		// Streaming endpoints log their own lifecycle.
		if c.Writer.Status() == http.StatusOK && c.FullPath() == "/api/events/stream" {
			return
		}
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}
