package checkin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anhtri22303/uni-club-sub009/internal/errdef"
)

// tokenTTL is how long an issued token stays valid. A check-in token binds a physical check-in
// action to an event, so the window is deliberately short.
const tokenTTL = 60 * time.Second

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, tokenRepository repository) *checkinService {
	return &checkinService{
		logger:     logger,
		repository: tokenRepository,
	}
}

type repository interface {
	CreateToken(token string, eventID string, ttl time.Duration) error
	ConsumeToken(token string) (string, error)
}

// Validation is the outcome of a token validation attempt.
// swagger:model
type Validation struct {
	Valid   bool   `json:"valid"`
	EventID string `json:"eventId,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type checkinService struct {
	logger     *slog.Logger
	repository repository
}

// IssueToken generates a single-use token authorizing entry to the given event. The token expires
// after tokenTTL.
func (s *checkinService) IssueToken(ctx context.Context, eventID string) (string, error) {
	if strings.TrimSpace(eventID) == "" {
		return "", errdef.NewBadRequest("eventId is required")
	}

	token := uuid.NewString()
	if err := s.repository.CreateToken(token, eventID, tokenTTL); err != nil {
		return "", fmt.Errorf("error storing check-in token for event %q: %v", eventID, err)
	}

	s.logger.InfoContext(ctx, "Issued check-in token", "eventId", eventID)

	return token, nil
}

// ValidateToken consumes the token. A token validates successfully exactly once; afterwards it
// reads as used (in-memory store) or not found (Redis store, where the key is deleted).
func (s *checkinService) ValidateToken(ctx context.Context, token string) (Validation, error) {
	if strings.TrimSpace(token) == "" {
		return Validation{}, errdef.NewBadRequest("token is required")
	}

	eventID, err := s.repository.ConsumeToken(token)
	if err != nil {
		reason, ok := validationReason(err)
		if !ok {
			return Validation{}, fmt.Errorf("error consuming check-in token: %v", err)
		}
		s.logger.InfoContext(ctx, "Rejected check-in token", "reason", reason)
		return Validation{Valid: false, Reason: reason}, nil
	}

	return Validation{Valid: true, EventID: eventID}, nil
}

func validationReason(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrTokenNotFound):
		return "not_found", true
	case errors.Is(err, ErrTokenUsed):
		return "used", true
	case errors.Is(err, ErrTokenExpired):
		return "expired", true
	}
	return "", false
}
