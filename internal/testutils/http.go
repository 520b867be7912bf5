package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response envelope for decoding in tests
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
	Token  string
}

// SetupHTTPTest wraps a router for testing
func SetupHTTPTest(router *gin.Engine) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: router}
}

// MakeRequest creates and executes an HTTP request, sending the bearer token when set
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if suite.Token != "" {
		req.Header.Set("Authorization", "Bearer "+suite.Token)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertEnvelope asserts a successful envelope and decodes its data into target
func AssertEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	require.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	require.True(t, env.Success)
	if target != nil {
		require.NoError(t, json.Unmarshal(env.Data, target))
	}
}

// AssertErrorEnvelope asserts an error envelope with the given status and message fragment
func AssertErrorEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	require.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, expectedStatus, env.Error.Status)
	if expectedMessage != "" {
		assert.Contains(t, env.Error.Message, expectedMessage)
	}
}
