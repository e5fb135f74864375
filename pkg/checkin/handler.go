package checkin

import (
	"context"
	"net/http"

	"github.com/anhtri22303/uni-club-sub009/internal/handler"
	"github.com/gin-gonic/gin"
)

func NewHandler(checkinService checkinTokenService) Handler {
	return Handler{checkinService}
}

type Handler struct {
	checkinService checkinTokenService
}

type checkinTokenService interface {
	IssueToken(ctx context.Context, eventID string) (string, error)
	ValidateToken(ctx context.Context, token string) (Validation, error)
}

type IssueTokenRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

// IssueToken issues a check-in token
func (h Handler) IssueToken(c *gin.Context) {
	// swagger:route POST /checkin/token issueCheckinToken
	//
	// Issue check-in token
	//
	// Issue a short-lived, single-use token binding a physical check-in action to an event.
	//
	// responses:
	//   200: TokenResponse
	//   400: Error
	//   415: Error
	var request IssueTokenRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	token, err := h.checkinService.IssueToken(c.Request.Context(), request.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateToken validates and consumes a check-in token
func (h Handler) ValidateToken(c *gin.Context) {
	// swagger:route POST /checkin/validate validateCheckinToken
	//
	// Validate check-in token
	//
	// Validate a token and consume it. A token can be consumed exactly once; expired, already
	// consumed or unknown tokens are rejected with a reason.
	//
	// responses:
	//   200: ValidationResponse
	//   400: Error
	//   415: Error
	var request ValidateTokenRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	validation, err := h.checkinService.ValidateToken(c.Request.Context(), request.Token)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !validation.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "reason": validation.Reason, "error": "invalid token: " + validation.Reason})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "eventId": validation.EventID})
}
