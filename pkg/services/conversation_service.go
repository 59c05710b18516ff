package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/conversation"
)

// ConversationService stores and retrieves agent transcripts so
// operators can audit what each agent was told and produced.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// ConversationKey builds the storage key for one agent invocation.
// Format: "{role}:{repo}:{unix_ts}".
func ConversationKey(role, repo string, ts time.Time) string {
	return fmt.Sprintf("%s:%s:%d", role, repo, ts.Unix())
}

// Store persists one agent conversation.
func (s *ConversationService) Store(httpCtx context.Context, crID, key, role, repo string, messages []map[string]interface{}) error {
	if key == "" {
		return NewValidationError("key", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Conversation.Create().
		SetCrID(crID).
		SetKey(key).
		SetRole(role).
		SetRepo(repo).
		SetMessages(messages).
		OnConflictColumns(conversation.FieldCrID, conversation.FieldKey).
		UpdateMessages().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store conversation: %w", err)
	}
	return nil
}

// ListKeys returns the stored conversation keys of a run, oldest first.
func (s *ConversationService) ListKeys(ctx context.Context, crID string) ([]string, error) {
	rows, err := s.client.Conversation.Query().
		Where(conversation.CrIDEQ(crID)).
		Order(ent.Asc(conversation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = row.Key
	}
	return keys, nil
}

// Get returns one conversation's messages or ErrNotFound.
func (s *ConversationService) Get(ctx context.Context, crID, key string) ([]map[string]interface{}, error) {
	row, err := s.client.Conversation.Query().
		Where(conversation.CrIDEQ(crID), conversation.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return row.Messages, nil
}

// CleanupOld removes conversations older than the retention window.
func (s *ConversationService) CleanupOld(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Conversation.Delete().
		Where(conversation.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup conversations: %w", err)
	}
	return count, nil
}
