package inttest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anhtri22303/uni-club-sub009/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupHTTPServer serves the given Gin engine over HTTP. An HTTP client is returned to interact
// with the created server.
func SetupHTTPServer(t *testing.T, engine *gin.Engine) *HTTPClient {
	t.Helper()

	err := handler.RegisterValidation()
	require.NoError(t, err, "failed to register validation")
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(engine.Handler())
	client := server.Client()
	t.Cleanup(func() {
		client.CloseIdleConnections()
		server.Close()
	})

	return &HTTPClient{Client: client, ServerURL: server.URL}
}

// HTTPClient allows making requests in a way most of our handlers would expect them. It does so by
// wrapping an http.Client. Access the actual http.Client for specific use cases where our defaults
// don't work.
type HTTPClient struct {
	Client    *http.Client
	ServerURL string
}

// GetJSON sends an HTTP GET request to given path and unmarshals the response body as JSON into
// responseBody. HTTP status other than expectedStatus will fail the test associated with t.
func (hc *HTTPClient) GetJSON(t *testing.T, path string, expectedStatus int, responseBody any) {
	t.Helper()

	body := hc.Do(t, http.MethodGet, path, nil, expectedStatus)

	err := json.Unmarshal(body, &responseBody)
	require.NoError(t, err, httpClientErrMessage(http.MethodGet, path)+": failed to unmarshal response body")
}

// PostJSON sends an HTTP POST request with requestBody marshaled as JSON and unmarshals the
// response body into responseBody. HTTP status other than expectedStatus will fail the test
// associated with t.
func (hc *HTTPClient) PostJSON(t *testing.T, path string, requestBody any, expectedStatus int, responseBody any) {
	t.Helper()

	payload, err := json.Marshal(requestBody)
	require.NoError(t, err, httpClientErrMessage(http.MethodPost, path)+": failed to marshal request body")

	body := hc.Do(t, http.MethodPost, path, payload, expectedStatus)

	err = json.Unmarshal(body, &responseBody)
	require.NoError(t, err, httpClientErrMessage(http.MethodPost, path)+": failed to unmarshal response body")
}

// Do sends an HTTP request of given method to given path. The response body is read in full and
// returned as is. Failure to read or close the HTTP response body and HTTP status other than given
// expectedStatus will fail the test associated with t.
func (hc *HTTPClient) Do(t *testing.T, method, path string, requestBody []byte, expectedStatus int) []byte {
	t.Helper()

	var reader io.Reader
	if requestBody != nil {
		reader = bytes.NewReader(requestBody)
	}
	req, err := http.NewRequest(method, hc.ServerURL+path, reader)
	errMsg := httpClientErrMessage(method, path)
	require.NoError(t, err, errMsg+": failed to create HTTP request")
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := hc.Client.Do(req)
	require.NoError(t, err, errMsg+": HTTP request failed")
	defer func() {
		require.NoError(t, res.Body.Close(), errMsg+": failed to close HTTP response body")
	}()

	require.Equal(t, expectedStatus, res.StatusCode, errMsg+": HTTP status mismatch")
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err, errMsg+": failed to read HTTP response body")
	return body
}

func httpClientErrMessage(method, path string) string {
	return fmt.Sprintf("%s %q", method, path)
}
