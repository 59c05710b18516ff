// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/CollideNV/hadron/pkg/config"
	"github.com/CollideNV/hadron/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes event streams of terminal runs past their buffer window
//   - Removes stored agent conversations past their retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	events        *services.EventService
	conversations *services.ConversationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	events *services.EventService,
	conversations *services.ConversationService,
) *Service {
	return &Service{
		config:        cfg,
		events:        events,
		conversations: conversations,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_buffer", s.config.EventBuffer,
		"conversation_retention", s.config.ConversationRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(_ context.Context) {
	s.cleanupExpiredStreams()
	s.cleanupOldConversations()
}

func (s *Service) cleanupExpiredStreams() {
	count, err := s.events.CleanupExpiredStreams(context.Background(), s.config.EventBuffer)
	if err != nil {
		slog.Error("Retention: event stream cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired event streams", "count", count)
	}
}

func (s *Service) cleanupOldConversations() {
	count, err := s.conversations.CleanupOld(context.Background(), s.config.ConversationRetention)
	if err != nil {
		slog.Error("Retention: conversation cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old conversations", "count", count)
	}
}
