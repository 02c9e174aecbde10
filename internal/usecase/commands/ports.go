package commands

import (
	"context"

	"carevacay/internal/domain/conversation"
	"carevacay/internal/usecase/shared"

	"github.com/google/uuid"
)

// ConversationStore owns the conversation/message collections. Every
// mutation of one conversation happens under the store's single writer
// lock so unread bookkeeping and append ordering hold under concurrent
// senders.
type ConversationStore interface {
	FindByKey(ctx context.Context, key conversation.ScopeKey) (*conversation.Conversation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error)
	// Create fails with a CONFLICT kind when a conversation with the same
	// scope key already exists.
	Create(ctx context.Context, c *conversation.Conversation) error
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*conversation.Conversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*conversation.Message, error)
	// Append atomically records msg against the conversation and returns the
	// updated thread.
	Append(ctx context.Context, conversationID uuid.UUID, msg *conversation.Message) (*conversation.Conversation, error)
	// MarkRead zeroes the viewer's unread counter and returns the updated
	// thread.
	MarkRead(ctx context.Context, conversationID, viewerID uuid.UUID) (*conversation.Conversation, error)
}

// UserDirectory resolves participant identities to snapshots.
type UserDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
}
