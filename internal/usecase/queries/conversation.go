package queries

import (
	"context"
	"sort"

	"carevacay/internal/domain/conversation"
	"carevacay/internal/infra"
	"carevacay/internal/pkg/errs"

	"github.com/google/uuid"
)

type ConversationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*conversation.Conversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*conversation.Message, error)
}

type ConversationQueries interface {
	// ListForParticipant returns the user's threads, filtered by query and
	// ordered most-recently-updated first.
	ListForParticipant(ctx context.Context, userID uuid.UUID, query string) ([]*ConversationView, error)
	ListMessages(ctx context.Context, conversationID, viewerID uuid.UUID) ([]*MessageView, error)
}

type conversationQueriesImpl struct {
	store ConversationReadStore
}

func NewConversationQueries(store ConversationReadStore) ConversationQueries {
	return &conversationQueriesImpl{store: store}
}

func (q *conversationQueriesImpl) ListForParticipant(ctx context.Context, userID uuid.UUID, query string) ([]*ConversationView, error) {
	threads, err := q.store.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	matched := make([]*conversation.Conversation, 0, len(threads))
	for _, c := range threads {
		if c.MatchesQuery(query) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt().After(matched[j].UpdatedAt())
	})

	views := make([]*ConversationView, len(matched))
	for i, c := range matched {
		views[i] = FromConversation(c)
	}
	return views, nil
}

func (q *conversationQueriesImpl) ListMessages(ctx context.Context, conversationID, viewerID uuid.UUID) ([]*MessageView, error) {
	c, err := q.store.FindByID(ctx, conversationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConversationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !c.HasParticipant(viewerID) {
		return nil, errs.ErrNotParticipant
	}

	msgs, err := q.store.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	views := make([]*MessageView, len(msgs))
	for i, m := range msgs {
		views[i] = FromMessage(m)
	}
	return views, nil
}
