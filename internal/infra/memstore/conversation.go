package memstore

import (
	"context"
	"log/slog"
	"sync"

	"carevacay/internal/domain/conversation"
	"carevacay/internal/infra"

	"github.com/google/uuid"
)

// ConversationStore keeps threads and their messages under one writer lock,
// which gives the single-writer discipline the unread bookkeeping and
// append ordering need under concurrent senders. Every read returns a
// snapshot taken inside the lock; callers never see the live aggregate a
// concurrent Append may be mutating.
type ConversationStore struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*conversation.Conversation
	byKey    map[conversation.ScopeKey]uuid.UUID
	messages map[uuid.UUID][]*conversation.Message
	logger   *slog.Logger
}

func NewConversationStore(logger *slog.Logger) *ConversationStore {
	return &ConversationStore{
		byID:     make(map[uuid.UUID]*conversation.Conversation),
		byKey:    make(map[conversation.ScopeKey]uuid.UUID),
		messages: make(map[uuid.UUID][]*conversation.Message),
		logger:   logger,
	}
}

func (s *ConversationStore) FindByKey(_ context.Context, key conversation.ScopeKey) (*conversation.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byKey[key]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "conversation not found", nil)
	}
	return s.byID[id].Snapshot(), nil
}

func (s *ConversationStore) FindByID(_ context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "conversation not found", nil)
	}
	return c.Snapshot(), nil
}

func (s *ConversationStore) Create(_ context.Context, c *conversation.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.Key()
	if _, exists := s.byKey[key]; exists {
		return infra.WrapRepoErr(s.logger, infra.KindConflict, "conversation already exists for scope key", nil)
	}
	// Keep our own copy so the caller's reference never aliases the stored
	// aggregate.
	s.byID[c.ID()] = c.Snapshot()
	s.byKey[key] = c.ID()
	return nil
}

func (s *ConversationStore) ListByParticipant(_ context.Context, userID uuid.UUID) ([]*conversation.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var threads []*conversation.Conversation
	for _, c := range s.byID {
		if c.HasParticipant(userID) {
			threads = append(threads, c.Snapshot())
		}
	}
	return threads, nil
}

func (s *ConversationStore) ListMessages(_ context.Context, conversationID uuid.UUID) ([]*conversation.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byID[conversationID]; !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "conversation not found", nil)
	}
	msgs := s.messages[conversationID]
	out := make([]*conversation.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Append applies the message to the thread and stores it in one critical
// section, so message order and the unread counter cannot drift apart.
func (s *ConversationStore) Append(_ context.Context, conversationID uuid.UUID, msg *conversation.Message) (*conversation.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[conversationID]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "conversation not found", nil)
	}
	if err := c.Append(msg); err != nil {
		return nil, err
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)
	return c.Snapshot(), nil
}

func (s *ConversationStore) MarkRead(_ context.Context, conversationID, viewerID uuid.UUID) (*conversation.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[conversationID]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "conversation not found", nil)
	}
	if err := c.MarkRead(viewerID); err != nil {
		return nil, err
	}
	return c.Snapshot(), nil
}
