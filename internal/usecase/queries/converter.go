package queries

import (
	"carevacay/internal/domain/conversation"
	"carevacay/internal/domain/property"

	"github.com/jinzhu/copier"
)

func FromProperty(p *property.Property) *PropertyView {
	view := &PropertyView{}
	// Field names line up one to one; copier keeps this mapping from
	// drifting as the record grows.
	_ = copier.Copy(view, p)
	view.StayType = p.StayType.String()
	return view
}

func FromProperties(ps []*property.Property) []*PropertyView {
	views := make([]*PropertyView, len(ps))
	for i, p := range ps {
		views[i] = FromProperty(p)
	}
	return views
}

func FromMessage(m *conversation.Message) *MessageView {
	if m == nil {
		return nil
	}
	return &MessageView{
		ID:          m.ID(),
		SenderID:    m.SenderID(),
		RecipientID: m.RecipientID(),
		Content:     m.Content(),
		Type:        m.Type().String(),
		BookingID:   m.BookingID(),
		SentAt:      m.SentAt(),
	}
}

func FromConversation(c *conversation.Conversation) *ConversationView {
	participants := make([]ParticipantView, 0, 2)
	for _, p := range c.Participants() {
		participants = append(participants, ParticipantView{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Role:      p.Role,
		})
	}
	return &ConversationView{
		ID:           c.ID(),
		Participants: participants,
		BookingID:    c.BookingID(),
		LastMessage:  FromMessage(c.LastMessage()),
		UnreadCount:  c.UnreadCount(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}
