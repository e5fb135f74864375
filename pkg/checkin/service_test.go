package checkin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anhtri22303/uni-club-sub009/internal/errdef"
)

func TestIssueToken(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("CreateToken", mock.AnythingOfType("string"), "42", tokenTTL).
		Return(nil)
	service := NewService(newTestLogger(), repository)

	token, err := service.IssueToken(context.Background(), "42")

	require.NoError(t, err)
	_, err = uuid.Parse(token)
	require.NoError(t, err, "token should be a UUID")
	repository.AssertExpectations(t)
}

func TestIssueToken_EmptyEventId(t *testing.T) {
	repository := &mockRepository{}
	service := NewService(newTestLogger(), repository)

	_, err := service.IssueToken(context.Background(), "  ")

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
	repository.AssertNotCalled(t, "CreateToken")
}

func TestIssueToken_RepositoryError(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("CreateToken", mock.AnythingOfType("string"), "42", tokenTTL).
		Return(errors.New("connection refused"))
	service := NewService(newTestLogger(), repository)

	_, err := service.IssueToken(context.Background(), "42")

	require.Error(t, err)
	assert.False(t, errdef.IsBadRequest(err))
}

func TestValidateToken(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("ConsumeToken", "t1").
		Return("42", nil)
	service := NewService(newTestLogger(), repository)

	validation, err := service.ValidateToken(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, Validation{Valid: true, EventID: "42"}, validation)
	repository.AssertExpectations(t)
}

func TestValidateToken_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{
			name:   "unknown token",
			err:    ErrTokenNotFound,
			reason: "not_found",
		},
		{
			name:   "consumed token",
			err:    ErrTokenUsed,
			reason: "used",
		},
		{
			name:   "expired token",
			err:    ErrTokenExpired,
			reason: "expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &mockRepository{}
			repository.
				On("ConsumeToken", "t1").
				Return("", tt.err)
			service := NewService(newTestLogger(), repository)

			validation, err := service.ValidateToken(context.Background(), "t1")

			require.NoError(t, err)
			assert.Equal(t, Validation{Valid: false, Reason: tt.reason}, validation)
		})
	}
}

func TestValidateToken_EmptyToken(t *testing.T) {
	repository := &mockRepository{}
	service := NewService(newTestLogger(), repository)

	_, err := service.ValidateToken(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
	repository.AssertNotCalled(t, "ConsumeToken")
}

func TestValidateToken_RepositoryError(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("ConsumeToken", "t1").
		Return("", errors.New("connection refused"))
	service := NewService(newTestLogger(), repository)

	_, err := service.ValidateToken(context.Background(), "t1")

	require.Error(t, err)
	assert.False(t, errdef.IsBadRequest(err))
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockRepository struct{ mock.Mock }

func (m *mockRepository) CreateToken(token string, eventID string, ttl time.Duration) error {
	called := m.Called(token, eventID, ttl)
	return called.Error(0)
}

func (m *mockRepository) ConsumeToken(token string) (string, error) {
	called := m.Called(token)
	return called.String(0), called.Error(1)
}
