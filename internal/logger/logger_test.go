package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.Level
	buf := &bytes.Buffer{}
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})
	return buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithContext_UserFields(t *testing.T) {
	buf := captureOutput(t)

	ctx := context.WithValue(context.Background(), UserIDKey, "user-1")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")
	WithContext(ctx).Infof("hello %s", "world")

	entry := decode(t, buf)
	assert.Equal(t, "hello world", entry["msg"])
	assert.Equal(t, "user-1", entry["user"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestWithContext_Unknown(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Warnf("anonymous")

	entry := decode(t, buf)
	assert.Equal(t, "unknown", entry["user"])
	assert.Equal(t, "warning", entry["level"])
}

func TestFromGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureOutput(t)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/projects", nil)
	c.Set(UserIDKey, "user-2")

	FromGinContext(c).WithError(errors.New("boom")).Errorf("failed")

	entry := decode(t, buf)
	assert.Equal(t, "user-2", entry["user"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/projects", entry["path"])
	assert.Equal(t, "boom", entry["error"])
}
