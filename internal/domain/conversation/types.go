package conversation

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent       = errors.New("message content cannot be empty")
	ErrInvalidMessageType = errors.New("unknown message type")
	ErrNotParticipant     = errors.New("user is not a participant of the conversation")
	ErrSameParticipant    = errors.New("a conversation needs two distinct participants")
)

const MaxContentLength = 4000

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeFile  MessageType = "file"
)

func (t MessageType) String() string {
	return string(t)
}

func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeFile:
		return true
	default:
		return false
	}
}

// Participant is a denormalized user snapshot embedded at conversation
// creation time. Search matches against these fields.
type Participant struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      string
}

func (p Participant) matchesQuery(q string) bool {
	return strings.Contains(strings.ToLower(p.FirstName), q) ||
		strings.Contains(strings.ToLower(p.LastName), q) ||
		strings.Contains(strings.ToLower(p.Email), q)
}

// ScopeKey is the idempotent identity of a conversation: the unordered
// participant pair plus the optional booking reference. A nil booking is
// its own scoping key, so the same pair may hold one unscoped thread and
// one thread per distinct booking.
type ScopeKey string

func NewScopeKey(a, b uuid.UUID, bookingID *uuid.UUID) ScopeKey {
	lo, hi := a.String(), b.String()
	if hi < lo {
		lo, hi = hi, lo
	}
	booking := ""
	if bookingID != nil {
		booking = bookingID.String()
	}
	return ScopeKey(lo + "|" + hi + "|" + booking)
}
