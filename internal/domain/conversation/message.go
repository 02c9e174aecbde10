package conversation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Message is immutable once created and append-only within a conversation.
type Message struct {
	id          uuid.UUID
	senderID    uuid.UUID
	recipientID uuid.UUID
	content     string
	msgType     MessageType
	bookingID   *uuid.UUID
	sentAt      time.Time
}

func NewMessage(senderID, recipientID uuid.UUID, content string, msgType MessageType, bookingID *uuid.UUID, sentAt time.Time) (*Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyContent
	}
	if len(trimmed) > MaxContentLength {
		trimmed = truncateToRuneBoundary(trimmed, MaxContentLength)
	}
	if msgType == "" {
		msgType = MessageTypeText
	}
	if !msgType.IsValid() {
		return nil, ErrInvalidMessageType
	}

	return &Message{
		id:          uuid.New(),
		senderID:    senderID,
		recipientID: recipientID,
		content:     trimmed,
		msgType:     msgType,
		bookingID:   bookingID,
		sentAt:      sentAt,
	}, nil
}

// truncateToRuneBoundary cuts s to at most max bytes without splitting a
// multibyte rune, so truncated content stays valid UTF-8.
func truncateToRuneBoundary(s string, max int) string {
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func ReconstructMessage(id, senderID, recipientID uuid.UUID, content string, msgType MessageType, bookingID *uuid.UUID, sentAt time.Time) *Message {
	return &Message{
		id:          id,
		senderID:    senderID,
		recipientID: recipientID,
		content:     content,
		msgType:     msgType,
		bookingID:   bookingID,
		sentAt:      sentAt,
	}
}

func (m *Message) ID() uuid.UUID          { return m.id }
func (m *Message) SenderID() uuid.UUID    { return m.senderID }
func (m *Message) RecipientID() uuid.UUID { return m.recipientID }
func (m *Message) Content() string        { return m.content }
func (m *Message) Type() MessageType      { return m.msgType }
func (m *Message) BookingID() *uuid.UUID  { return m.bookingID }
func (m *Message) SentAt() time.Time      { return m.sentAt }
