package commands

import (
	"context"
	"errors"

	"carevacay/internal/domain/conversation"
	"carevacay/internal/infra"
	"carevacay/internal/pkg/clock"
	"carevacay/internal/pkg/errs"
	"carevacay/internal/usecase/queries"

	"github.com/google/uuid"
)

type FindOrCreateConversationResult struct {
	Conversation *queries.ConversationView
	Created      bool
}

type ConversationCommands interface {
	// FindOrCreate is idempotent on (unordered participant pair, bookingID):
	// calling it twice with the same arguments yields the same conversation.
	FindOrCreate(ctx context.Context, initiatorID, counterpartID uuid.UUID, bookingID *uuid.UUID) (*FindOrCreateConversationResult, error)
	AppendMessage(ctx context.Context, conversationID, senderID uuid.UUID, content string, msgType conversation.MessageType) (*queries.MessageView, error)
	MarkRead(ctx context.Context, conversationID, viewerID uuid.UUID) (*queries.ConversationView, error)
}

type conversationCommandsImpl struct {
	store     ConversationStore
	directory UserDirectory
	clock     clock.Clock
}

func NewConversationCommands(store ConversationStore, directory UserDirectory, clk clock.Clock) ConversationCommands {
	return &conversationCommandsImpl{
		store:     store,
		directory: directory,
		clock:     clk,
	}
}

func (c *conversationCommandsImpl) FindOrCreate(
	ctx context.Context,
	initiatorID, counterpartID uuid.UUID,
	bookingID *uuid.UUID,
) (*FindOrCreateConversationResult, error) {
	key := conversation.NewScopeKey(initiatorID, counterpartID, bookingID)

	existing, err := c.store.FindByKey(ctx, key)
	if err == nil {
		return &FindOrCreateConversationResult{Conversation: queries.FromConversation(existing)}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	initiator, err := c.resolveParticipant(ctx, initiatorID)
	if err != nil {
		return nil, err
	}
	counterpart, err := c.resolveParticipant(ctx, counterpartID)
	if err != nil {
		return nil, err
	}

	thread, err := conversation.NewConversation(initiator, counterpart, bookingID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.store.Create(ctx, thread); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost a race against a concurrent first contact; the winner's
			// thread is the canonical one.
			winner, findErr := c.store.FindByKey(ctx, key)
			if findErr != nil {
				return nil, errs.Mark(findErr, errs.ErrStoreOperationFailed)
			}
			return &FindOrCreateConversationResult{Conversation: queries.FromConversation(winner)}, nil
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return &FindOrCreateConversationResult{
		Conversation: queries.FromConversation(thread),
		Created:      true,
	}, nil
}

func (c *conversationCommandsImpl) AppendMessage(
	ctx context.Context,
	conversationID, senderID uuid.UUID,
	content string,
	msgType conversation.MessageType,
) (*queries.MessageView, error) {
	thread, err := c.store.FindByID(ctx, conversationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConversationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	recipient, ok := thread.Counterpart(senderID)
	if !ok {
		return nil, errs.ErrNotParticipant
	}

	msg, err := conversation.NewMessage(senderID, recipient.ID, content, msgType, thread.BookingID(), c.clock.Now())
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyContent) {
			return nil, errs.ErrEmptyContent
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.store.Append(ctx, conversationID, msg); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return queries.FromMessage(msg), nil
}

func (c *conversationCommandsImpl) MarkRead(ctx context.Context, conversationID, viewerID uuid.UUID) (*queries.ConversationView, error) {
	thread, err := c.store.MarkRead(ctx, conversationID, viewerID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrConversationNotFound
		case errors.Is(err, conversation.ErrNotParticipant):
			return nil, errs.ErrNotParticipant
		default:
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	return queries.FromConversation(thread), nil
}

func (c *conversationCommandsImpl) resolveParticipant(ctx context.Context, id uuid.UUID) (conversation.Participant, error) {
	snapshot, err := c.directory.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return conversation.Participant{}, errs.ErrParticipantNotFound
		}
		return conversation.Participant{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return conversation.Participant{
		ID:        snapshot.ID,
		FirstName: snapshot.FirstName,
		LastName:  snapshot.LastName,
		Email:     snapshot.Email,
		Role:      snapshot.Role,
	}, nil
}
