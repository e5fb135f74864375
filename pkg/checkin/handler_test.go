package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anhtri22303/uni-club-sub009/internal/errdef"
)

func TestHandler_IssueToken(t *testing.T) {
	service := &mockCheckinService{}
	service.
		On("IssueToken", mock.Anything, "42").
		Return("t1", nil)
	handler := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/checkin/token", IssueTokenRequest{EventID: "42"})

	handler.IssueToken(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success": true, "token": "t1"}`, recorder.Body.String())
	service.AssertExpectations(t)
}

func TestHandler_IssueToken_MissingEventId(t *testing.T) {
	service := &mockCheckinService{}
	handler := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/checkin/token", map[string]string{})

	handler.IssueToken(c)

	require.Len(t, c.Errors.Errors(), 1)
	assert.True(t, errdef.IsBadRequest(c.Errors.Last()))
	service.AssertNotCalled(t, "IssueToken")
}

func TestHandler_ValidateToken(t *testing.T) {
	service := &mockCheckinService{}
	service.
		On("ValidateToken", mock.Anything, "t1").
		Return(Validation{Valid: true, EventID: "42"}, nil)
	handler := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/checkin/validate", ValidateTokenRequest{Token: "t1"})

	handler.ValidateToken(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success": true, "eventId": "42"}`, recorder.Body.String())
	service.AssertExpectations(t)
}

func TestHandler_ValidateToken_Rejected(t *testing.T) {
	service := &mockCheckinService{}
	service.
		On("ValidateToken", mock.Anything, "t1").
		Return(Validation{Valid: false, Reason: "used"}, nil)
	handler := NewHandler(service)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/checkin/validate", ValidateTokenRequest{Token: "t1"})

	handler.ValidateToken(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"success": false, "reason": "used", "error": "invalid token: used"}`, recorder.Body.String())
}

type mockCheckinService struct{ mock.Mock }

func (m *mockCheckinService) IssueToken(ctx context.Context, eventID string) (string, error) {
	called := m.Called(ctx, eventID)
	return called.String(0), called.Error(1)
}

func (m *mockCheckinService) ValidateToken(ctx context.Context, token string) (Validation, error) {
	called := m.Called(ctx, token)
	return called.Get(0).(Validation), called.Error(1)
}

func newPost(t *testing.T, path string, jsonBody any) *http.Request {
	body, err := json.Marshal(jsonBody)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	return req
}
