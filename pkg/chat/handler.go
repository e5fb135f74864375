package chat

import (
	"context"
	"net/http"

	"github.com/anhtri22303/uni-club-sub009/internal/handler"
	"github.com/gin-gonic/gin"
)

func NewHandler(chatService chatLogService) Handler {
	return Handler{chatService}
}

type Handler struct {
	chatService chatLogService
}

type chatLogService interface {
	GetMessages(ctx context.Context, clubID string, limit int) ([]Message, error)
	SendMessage(ctx context.Context, input SendMessageInput) (Message, error)
	PollMessages(ctx context.Context, clubID string, after int64) ([]Message, int64, error)
	TogglePin(ctx context.Context, clubID string, messageID string, userID string) (Message, error)
	ToggleReaction(ctx context.Context, clubID string, messageID string, userID string, emoji string) (Message, error)
}

type GetMessagesRequest struct {
	ClubID string `form:"clubId" binding:"required"`
	Limit  int    `form:"limit"`
}

// GetMessages returns a club's message history
func (h Handler) GetMessages(c *gin.Context) {
	// swagger:route GET /chat/messages getChatMessages
	//
	// List messages
	//
	// List a club's messages, newest first, capped at the requested limit (default 50).
	//
	// responses:
	//   200: Messages
	//   400: Error
	//   503: Error
	var request GetMessagesRequest
	if err := handler.QueryBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	messages, err := h.chatService.GetMessages(c.Request.Context(), request.ClubID, request.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type SendMessageRequest struct {
	ClubID     string `json:"clubId" binding:"required"`
	Message    string `json:"message" binding:"required,notblank"`
	UserID     string `json:"userId" binding:"required"`
	UserName   string `json:"userName" binding:"required"`
	UserAvatar string `json:"userAvatar"`
}

// SendMessage appends a message to a club's log
func (h Handler) SendMessage(c *gin.Context) {
	// swagger:route POST /chat/messages sendChatMessage
	//
	// Send message
	//
	// Append a message to the club's log. The text is trimmed server side; id and timestamp are
	// assigned on the server.
	//
	// responses:
	//   200: MessageResponse
	//   400: Error
	//   415: Error
	//   503: Error
	var request SendMessageRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), SendMessageInput{
		ClubID:     request.ClubID,
		UserID:     request.UserID,
		UserName:   request.UserName,
		UserAvatar: request.UserAvatar,
		Message:    request.Message,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

type PollRequest struct {
	ClubID string `form:"clubId" binding:"required"`
	After  int64  `form:"after"`
}

// Poll returns messages newer than the given cursor
func (h Handler) Poll(c *gin.Context) {
	// swagger:route GET /chat/poll pollChatMessages
	//
	// Poll messages
	//
	// Return the messages newer than the after cursor plus the latest timestamp to poll from next.
	//
	// responses:
	//   200: PollResponse
	//   400: Error
	//   503: Error
	var request PollRequest
	if err := handler.QueryBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	messages, latest, err := h.chatService.PollMessages(c.Request.Context(), request.ClubID, request.After)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "latestTimestamp": latest})
}

type TogglePinRequest struct {
	ClubID    string `json:"clubId" binding:"required"`
	MessageID string `json:"messageId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
}

// TogglePin flips a message's pin marker
func (h Handler) TogglePin(c *gin.Context) {
	// swagger:route POST /chat/pin togglePin
	//
	// Toggle pin
	//
	// Flip the pin marker of a message. Pins are not exclusive per club.
	//
	// responses:
	//   200: MessageResponse
	//   400: Error
	//   415: Error
	//   503: Error
	var request TogglePinRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	message, err := h.chatService.TogglePin(c.Request.Context(), request.ClubID, request.MessageID, request.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

type ToggleReactionRequest struct {
	ClubID    string `json:"clubId" binding:"required"`
	MessageID string `json:"messageId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	Emoji     string `json:"emoji" binding:"required,notblank"`
}

// ToggleReaction adds or removes a user's reaction
func (h Handler) ToggleReaction(c *gin.Context) {
	// swagger:route POST /chat/reactions toggleReaction
	//
	// Toggle reaction
	//
	// Add the user's reaction with the given emoji, or remove it when already present.
	//
	// responses:
	//   200: MessageResponse
	//   400: Error
	//   415: Error
	//   503: Error
	var request ToggleReactionRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	message, err := h.chatService.ToggleReaction(c.Request.Context(), request.ClubID, request.MessageID, request.UserID, request.Emoji)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
