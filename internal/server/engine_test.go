package server_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhtri22303/uni-club-sub009/internal/server"
	"github.com/anhtri22303/uni-club-sub009/pkg/chat"
	"github.com/anhtri22303/uni-club-sub009/pkg/checkin"
	"github.com/anhtri22303/uni-club-sub009/pkg/inttest"
)

// TestEngine exercises the full handler pipeline with the development wiring: in-memory check-in
// store and no chat store.
func TestEngine(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	checkinHandler := checkin.NewHandler(checkin.NewService(logger, checkin.NewInMemoryRepository()))
	chatHandler := chat.NewHandler(chat.NewService(logger, nil))

	client := inttest.SetupHTTPServer(t, server.GetEngine(logger, "", checkinHandler, chatHandler))

	t.Run("Health", func(t *testing.T) {
		var response map[string]string
		client.GetJSON(t, "/health", http.StatusOK, &response)
		assert.Equal(t, "up", response["status"])
	})

	t.Run("IssueAndConsumeToken", func(t *testing.T) {
		var issued struct {
			Success bool   `json:"success"`
			Token   string `json:"token"`
		}
		client.PostJSON(t, "/checkin/token", map[string]string{"eventId": "42"}, http.StatusOK, &issued)
		require.True(t, issued.Success)
		require.NotEmpty(t, issued.Token)

		var validated struct {
			Success bool   `json:"success"`
			EventID string `json:"eventId"`
		}
		client.PostJSON(t, "/checkin/validate", map[string]string{"token": issued.Token}, http.StatusOK, &validated)
		assert.True(t, validated.Success)
		assert.Equal(t, "42", validated.EventID)

		var replayed struct {
			Success bool   `json:"success"`
			Reason  string `json:"reason"`
		}
		client.PostJSON(t, "/checkin/validate", map[string]string{"token": issued.Token}, http.StatusBadRequest, &replayed)
		assert.False(t, replayed.Success)
		assert.Equal(t, "used", replayed.Reason)
	})

	t.Run("UnknownTokenIsRejected", func(t *testing.T) {
		var response struct {
			Success bool   `json:"success"`
			Reason  string `json:"reason"`
		}
		client.PostJSON(t, "/checkin/validate", map[string]string{"token": "nope"}, http.StatusBadRequest, &response)
		assert.False(t, response.Success)
		assert.Equal(t, "not_found", response.Reason)
	})

	t.Run("MissingEventIdIsBadRequest", func(t *testing.T) {
		var response struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		client.PostJSON(t, "/checkin/token", map[string]string{}, http.StatusBadRequest, &response)
		assert.False(t, response.Success)
		assert.NotEmpty(t, response.Error)
	})

	t.Run("ChatIsUnavailableWithoutStore", func(t *testing.T) {
		var response struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		client.GetJSON(t, "/chat/messages?clubId=7", http.StatusServiceUnavailable, &response)
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "not configured")
	})

	t.Run("ChatMissingClubIdIsBadRequest", func(t *testing.T) {
		var response struct {
			Success bool `json:"success"`
		}
		client.GetJSON(t, "/chat/messages", http.StatusBadRequest, &response)
		assert.False(t, response.Success)
	})
}
