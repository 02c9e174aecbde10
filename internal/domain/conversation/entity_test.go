//go:build unit

package conversation_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"carevacay/internal/domain/conversation"
	"carevacay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversation(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a := conversation.Participant{ID: uuid.New(), FirstName: "Sarah", LastName: "Johnson", Email: "sarah@example.com", Role: "guest"}
	b := conversation.Participant{ID: uuid.New(), FirstName: "Mike", LastName: "Chen", Email: "mike@example.com", Role: "host"}

	t.Run("creates an empty thread", func(t *testing.T) {
		thread, err := conversation.NewConversation(a, b, nil, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, thread.ID())
		assert.Nil(t, thread.LastMessage())
		assert.Zero(t, thread.UnreadCount())
		assert.Equal(t, now, thread.CreatedAt())
		assert.Equal(t, now, thread.UpdatedAt())
	})

	t.Run("rejects a self conversation", func(t *testing.T) {
		_, err := conversation.NewConversation(a, a, nil, now)
		assert.ErrorIs(t, err, conversation.ErrSameParticipant)
	})

	t.Run("scope key ignores participant order", func(t *testing.T) {
		first, err := conversation.NewConversation(a, b, nil, now)
		require.NoError(t, err)
		second, err := conversation.NewConversation(b, a, nil, now)
		require.NoError(t, err)

		assert.Equal(t, first.Key(), second.Key())
	})

	t.Run("booking scope separates threads", func(t *testing.T) {
		bookingID := uuid.New()
		general, err := conversation.NewConversation(a, b, nil, now)
		require.NoError(t, err)
		scoped, err := conversation.NewConversation(a, b, &bookingID, now)
		require.NoError(t, err)

		assert.NotEqual(t, general.Key(), scoped.Key())
	})
}

func TestConversationAppend(t *testing.T) {
	sentAt := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("append updates last message and unread count", func(t *testing.T) {
		b := builder.NewConversationBuilder()
		thread := b.Build()
		msg := b.BuildMessage("hi there", sentAt)

		require.NoError(t, thread.Append(msg))

		assert.Equal(t, msg, thread.LastMessage())
		assert.Equal(t, 1, thread.UnreadCount())
		assert.Equal(t, sentAt, thread.UpdatedAt())
	})

	t.Run("append from an outsider fails", func(t *testing.T) {
		b := builder.NewConversationBuilder()
		thread := b.Build()
		outsider, err := conversation.NewMessage(uuid.New(), b.Counterpart.ID, "hello", conversation.MessageTypeText, nil, sentAt)
		require.NoError(t, err)

		assert.ErrorIs(t, thread.Append(outsider), conversation.ErrNotParticipant)
	})

	t.Run("mark read zeroes the counter", func(t *testing.T) {
		b := builder.NewConversationBuilder()
		thread := b.Build()
		require.NoError(t, thread.Append(b.BuildMessage("one", sentAt)))
		require.NoError(t, thread.Append(b.BuildMessage("two", sentAt.Add(time.Minute))))
		require.Equal(t, 2, thread.UnreadCount())

		require.NoError(t, thread.MarkRead(b.Counterpart.ID))
		assert.Zero(t, thread.UnreadCount())
	})

	t.Run("mark read by an outsider fails", func(t *testing.T) {
		thread := builder.NewConversationBuilder().Build()
		assert.ErrorIs(t, thread.MarkRead(uuid.New()), conversation.ErrNotParticipant)
	})
}

func TestConversationMatchesQuery(t *testing.T) {
	b := builder.NewConversationBuilder()
	b.LastMessage = b.BuildMessage("Is the ceiling hoist serviced?", time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))
	thread := b.Build()

	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query matches", query: "", want: true},
		{name: "first name", query: "sarah", want: true},
		{name: "last name different case", query: "CHEN", want: true},
		{name: "email", query: "mike@example.com", want: true},
		{name: "last message content", query: "ceiling hoist", want: true},
		{name: "no match", query: "wheelchair", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, thread.MatchesQuery(tc.query))
		})
	}
}

func TestNewMessage(t *testing.T) {
	sender := uuid.New()
	recipient := uuid.New()
	sentAt := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("defaults to text type", func(t *testing.T) {
		msg, err := conversation.NewMessage(sender, recipient, "hello", "", nil, sentAt)
		require.NoError(t, err)
		assert.Equal(t, conversation.MessageTypeText, msg.Type())
	})

	t.Run("whitespace only content fails", func(t *testing.T) {
		_, err := conversation.NewMessage(sender, recipient, "   \n\t ", conversation.MessageTypeText, nil, sentAt)
		assert.ErrorIs(t, err, conversation.ErrEmptyContent)
	})

	t.Run("unknown type fails", func(t *testing.T) {
		_, err := conversation.NewMessage(sender, recipient, "hello", "video", nil, sentAt)
		assert.ErrorIs(t, err, conversation.ErrInvalidMessageType)
	})

	t.Run("overlong content is truncated", func(t *testing.T) {
		long := strings.Repeat("a", conversation.MaxContentLength+100)
		msg, err := conversation.NewMessage(sender, recipient, long, conversation.MessageTypeText, nil, sentAt)
		require.NoError(t, err)
		assert.Len(t, msg.Content(), conversation.MaxContentLength)
	})

	t.Run("truncation never splits a multibyte rune", func(t *testing.T) {
		// "é" is two bytes and starts at the last byte of the limit, so a
		// naive byte cut would leave a dangling lead byte.
		long := strings.Repeat("a", conversation.MaxContentLength-1) + "é"
		msg, err := conversation.NewMessage(sender, recipient, long, conversation.MessageTypeText, nil, sentAt)
		require.NoError(t, err)

		assert.True(t, utf8.ValidString(msg.Content()))
		assert.LessOrEqual(t, len(msg.Content()), conversation.MaxContentLength)
		assert.Equal(t, strings.Repeat("a", conversation.MaxContentLength-1), msg.Content())
	})
}
