package conversation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Conversation is a 1:1 thread between two participants, optionally scoped
// to a booking. Its state is implicit in the data: a thread with no
// lastMessage is new, one with messages is active. There is no terminal
// state; archival belongs to the caller.
//
// The unread counter is a single scalar, matching the strict 1:1 model:
// appending increments it for the non-sending side, and a read zeroes it
// for the requesting viewer. This does not generalize to group threads.
type Conversation struct {
	id           uuid.UUID
	participants [2]Participant
	bookingID    *uuid.UUID
	lastMessage  *Message
	unreadCount  int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewConversation(a, b Participant, bookingID *uuid.UUID, now time.Time) (*Conversation, error) {
	if a.ID == b.ID {
		return nil, ErrSameParticipant
	}
	return &Conversation{
		id:           uuid.New(),
		participants: [2]Participant{a, b},
		bookingID:    bookingID,
		unreadCount:  0,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructConversation(
	id uuid.UUID,
	a, b Participant,
	bookingID *uuid.UUID,
	lastMessage *Message,
	unreadCount int,
	createdAt, updatedAt time.Time,
) *Conversation {
	return &Conversation{
		id:           id,
		participants: [2]Participant{a, b},
		bookingID:    bookingID,
		lastMessage:  lastMessage,
		unreadCount:  unreadCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Conversation) ID() uuid.UUID               { return c.id }
func (c *Conversation) Participants() []Participant { return c.participants[:] }
func (c *Conversation) BookingID() *uuid.UUID       { return c.bookingID }
func (c *Conversation) LastMessage() *Message       { return c.lastMessage }
func (c *Conversation) UnreadCount() int            { return c.unreadCount }
func (c *Conversation) CreatedAt() time.Time        { return c.createdAt }
func (c *Conversation) UpdatedAt() time.Time        { return c.updatedAt }

// Snapshot returns a copy that is safe to read after the owning store's
// lock is released. Messages and participant snapshots are immutable, so a
// shallow copy suffices.
func (c *Conversation) Snapshot() *Conversation {
	dup := *c
	return &dup
}

func (c *Conversation) Key() ScopeKey {
	return NewScopeKey(c.participants[0].ID, c.participants[1].ID, c.bookingID)
}

func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.participants[0].ID == userID || c.participants[1].ID == userID
}

// Counterpart returns the other side of the thread.
func (c *Conversation) Counterpart(userID uuid.UUID) (Participant, bool) {
	switch userID {
	case c.participants[0].ID:
		return c.participants[1], true
	case c.participants[1].ID:
		return c.participants[0], true
	default:
		return Participant{}, false
	}
}

// Append records msg as the latest message, bumps the unread counter for
// the recipient side, and touches updatedAt. The sender must be a
// participant.
func (c *Conversation) Append(msg *Message) error {
	if !c.HasParticipant(msg.SenderID()) {
		return ErrNotParticipant
	}
	c.lastMessage = msg
	c.unreadCount++
	c.updatedAt = msg.SentAt()
	return nil
}

// MarkRead zeroes the unread counter for the requesting viewer.
func (c *Conversation) MarkRead(viewerID uuid.UUID) error {
	if !c.HasParticipant(viewerID) {
		return ErrNotParticipant
	}
	c.unreadCount = 0
	return nil
}

// MatchesQuery reports whether the query matches any participant's name or
// email, or the last message content, case-insensitively. An empty query
// matches everything.
func (c *Conversation) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, p := range c.participants {
		if p.matchesQuery(q) {
			return true
		}
	}
	return c.lastMessage != nil && strings.Contains(strings.ToLower(c.lastMessage.Content()), q)
}
