//go:build unit

package builder

import (
	"time"

	"carevacay/internal/domain/conversation"

	"github.com/google/uuid"
)

type ConversationBuilder struct {
	ID          uuid.UUID
	Initiator   conversation.Participant
	Counterpart conversation.Participant
	BookingID   *uuid.UUID
	LastMessage *conversation.Message
	UnreadCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewConversationBuilder() *ConversationBuilder {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &ConversationBuilder{
		ID: uuid.New(),
		Initiator: conversation.Participant{
			ID:        uuid.New(),
			FirstName: "Sarah",
			LastName:  "Johnson",
			Email:     "sarah@example.com",
			Role:      "guest",
		},
		Counterpart: conversation.Participant{
			ID:        uuid.New(),
			FirstName: "Mike",
			LastName:  "Chen",
			Email:     "mike@example.com",
			Role:      "host",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ConversationBuilder) With(mutate func(*ConversationBuilder)) *ConversationBuilder {
	mutate(b)
	return b
}

func (b *ConversationBuilder) Build() *conversation.Conversation {
	return conversation.ReconstructConversation(
		b.ID,
		b.Initiator, b.Counterpart,
		b.BookingID,
		b.LastMessage,
		b.UnreadCount,
		b.CreatedAt, b.UpdatedAt,
	)
}

// BuildMessage produces a message from the initiator to the counterpart,
// suitable for seeding LastMessage.
func (b *ConversationBuilder) BuildMessage(content string, sentAt time.Time) *conversation.Message {
	return conversation.ReconstructMessage(
		uuid.New(),
		b.Initiator.ID, b.Counterpart.ID,
		content,
		conversation.MessageTypeText,
		b.BookingID,
		sentAt,
	)
}
