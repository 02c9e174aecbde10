package response

import (
	"time"

	"carevacay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ParticipantResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

type MessageResponse struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"senderId"`
	RecipientID uuid.UUID  `json:"recipientId"`
	Content     string     `json:"content"`
	Type        string     `json:"type"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	SentAt      time.Time  `json:"sentAt"`
}

type ConversationResponse struct {
	ID           uuid.UUID             `json:"id"`
	Participants []ParticipantResponse `json:"participants"`
	BookingID    *uuid.UUID            `json:"bookingId,omitempty"`
	LastMessage  *MessageResponse      `json:"lastMessage,omitempty"`
	UnreadCount  int                   `json:"unreadCount"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type FindOrCreateConversationResponse struct {
	Conversation *ConversationResponse `json:"conversation"`
	Created      bool                  `json:"created"`
}

func FromMessageView(rm *queries.MessageView) *MessageResponse {
	if rm == nil {
		return nil
	}
	return &MessageResponse{
		ID:          rm.ID,
		SenderID:    rm.SenderID,
		RecipientID: rm.RecipientID,
		Content:     rm.Content,
		Type:        rm.Type,
		BookingID:   rm.BookingID,
		SentAt:      rm.SentAt,
	}
}

func FromConversationView(rm *queries.ConversationView) *ConversationResponse {
	participants := make([]ParticipantResponse, len(rm.Participants))
	for i, p := range rm.Participants {
		participants[i] = ParticipantResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Role:      p.Role,
		}
	}
	return &ConversationResponse{
		ID:           rm.ID,
		Participants: participants,
		BookingID:    rm.BookingID,
		LastMessage:  FromMessageView(rm.LastMessage),
		UnreadCount:  rm.UnreadCount,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}
