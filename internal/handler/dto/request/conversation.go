package request

import (
	"carevacay/internal/domain/conversation"

	"github.com/google/uuid"
)

type FindOrCreateConversationRequest struct {
	InitiatorID   uuid.UUID  `json:"initiator_id" binding:"required"`
	CounterpartID uuid.UUID  `json:"counterpart_id" binding:"required"`
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
}

type AppendMessageRequest struct {
	SenderID uuid.UUID `json:"sender_id" binding:"required"`
	Content  string    `json:"content" binding:"required"`
	Type     string    `json:"type,omitempty"`
}

func (r AppendMessageRequest) MessageType() conversation.MessageType {
	if r.Type == "" {
		return conversation.MessageTypeText
	}
	return conversation.MessageType(r.Type)
}

type MarkReadRequest struct {
	ViewerID uuid.UUID `json:"viewer_id" binding:"required"`
}
