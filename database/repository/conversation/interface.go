package conversationRepo

import (
	"context"

	"barberflow/models"
)

// ConversationRepository defines persistence for conversation contexts.
// GetByID returns (nil, nil) when no conversation matches.
type ConversationRepository interface {
	Create(ctx context.Context, conv *models.Conversation) error
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	Update(ctx context.Context, conv *models.Conversation) error
}
