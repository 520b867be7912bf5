package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testUserHeader = "X-Test-User"

// withTestUser stands in for the JWT middleware: the caller id comes from a header
func withTestUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader(testUserHeader); userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

func doRequest(router *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func requireErrorStatus(t *testing.T, w *httptest.ResponseRecorder, status int) envelope {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	env := decodeEnvelope(t, w)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, status, env.Error.Status)
	return env
}
