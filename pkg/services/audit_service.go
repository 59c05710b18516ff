package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/auditlog"
)

// AuditService records every external action taken against a run.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// Record writes one audit entry. Best-effort from the caller's point
// of view; failures are returned but never block the action itself.
func (s *AuditService) Record(httpCtx context.Context, crID, actor, action string, detail map[string]interface{}) error {
	if actor == "" {
		actor = "api"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AuditLog.Create().
		SetCrID(crID).
		SetActor(actor).
		SetAction(action)
	if detail != nil {
		builder.SetDetail(detail)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// List returns a run's audit trail, oldest first.
func (s *AuditService) List(ctx context.Context, crID string) ([]*ent.AuditLog, error) {
	rows, err := s.client.AuditLog.Query().
		Where(auditlog.CrIDEQ(crID)).
		Order(ent.Asc(auditlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return rows, nil
}
