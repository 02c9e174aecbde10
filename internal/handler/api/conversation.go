package api

import (
	"errors"
	"net/http"

	reqdto "carevacay/internal/handler/dto/request"
	resdto "carevacay/internal/handler/dto/response"
	"carevacay/internal/pkg/errs"
	"carevacay/internal/usecase/commands"
	"carevacay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConversationHandler struct {
	conversationCommands commands.ConversationCommands
	conversationQueries  queries.ConversationQueries
}

func NewConversationHandler(conversationCommands commands.ConversationCommands, conversationQueries queries.ConversationQueries) *ConversationHandler {
	return &ConversationHandler{
		conversationCommands: conversationCommands,
		conversationQueries:  conversationQueries,
	}
}

// @Summary Find or create conversation
// @Description Idempotent lookup by participant pair and optional booking
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body reqdto.FindOrCreateConversationRequest true "Participant pair"
// @Success 200 {object} resdto.FindOrCreateConversationResponse
// @Success 201 {object} resdto.FindOrCreateConversationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/find-or-create [post]
func (h *ConversationHandler) FindOrCreate(c *gin.Context) {
	var req reqdto.FindOrCreateConversationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.conversationCommands.FindOrCreate(c.Request.Context(), req.InitiatorID, req.CounterpartID, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Participant not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "A conversation needs two distinct participants",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, &resdto.FindOrCreateConversationResponse{
		Conversation: resdto.FromConversationView(result.Conversation),
		Created:      result.Created,
	})
}

// @Summary List conversations
// @Description List a participant's threads, most recently updated first
// @Tags conversations
// @Produce json
// @Param participant_id query string true "Participant ID"
// @Param query query string false "Free-text filter over names, emails and last message"
// @Success 200 {array} resdto.ConversationResponse
// @Failure 400 {object} map[string]string
// @Router /conversations [get]
func (h *ConversationHandler) List(c *gin.Context) {
	participantID, err := uuid.Parse(c.Query("participant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid participant ID format",
		})
		return
	}

	views, err := h.conversationQueries.ListForParticipant(c.Request.Context(), participantID, c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	conversations := make([]*resdto.ConversationResponse, len(views))
	for i, v := range views {
		conversations[i] = resdto.FromConversationView(v)
	}
	c.JSON(http.StatusOK, conversations)
}

// @Summary List messages
// @Description List a conversation's messages in append order
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Param viewer_id query string true "Requesting participant ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/{id}/messages [get]
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	conversationID, viewerID, ok := h.conversationAndViewer(c, c.Query("viewer_id"))
	if !ok {
		return
	}

	views, err := h.conversationQueries.ListMessages(c.Request.Context(), conversationID, viewerID)
	if err != nil {
		h.renderConversationError(c, err)
		return
	}

	messages := make([]*resdto.MessageResponse, len(views))
	for i, v := range views {
		messages[i] = resdto.FromMessageView(v)
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Append message
// @Description Append a message to a conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body reqdto.AppendMessageRequest true "Message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) AppendMessage(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conversation ID format",
		})
		return
	}

	var req reqdto.AppendMessageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.conversationCommands.AppendMessage(c.Request.Context(), conversationID, req.SenderID, req.Content, req.MessageType())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Message content cannot be empty",
			})
		default:
			h.renderConversationError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessageView(view))
}

// @Summary Mark conversation read
// @Description Zero the viewer's unread counter
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body reqdto.MarkReadRequest true "Viewer"
// @Success 200 {object} resdto.ConversationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/{id}/read [post]
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conversation ID format",
		})
		return
	}

	var req reqdto.MarkReadRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.conversationCommands.MarkRead(c.Request.Context(), conversationID, req.ViewerID)
	if err != nil {
		h.renderConversationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConversationView(view))
}

func (h *ConversationHandler) conversationAndViewer(c *gin.Context, rawViewer string) (uuid.UUID, uuid.UUID, bool) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conversation ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}
	viewerID, err := uuid.Parse(rawViewer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid viewer ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return conversationID, viewerID, true
}

func (h *ConversationHandler) renderConversationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Conversation not found",
		})
	case errors.Is(err, errs.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not a participant of this conversation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
