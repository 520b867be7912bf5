package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workspace-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(&AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "workspace-backend",
		TokenTTL:  time.Hour,
	}, &stubUserRepo{users: map[string]*models.User{
		"user-1": {BaseModel: models.BaseModel{ID: "user-1"}, Email: "jane@example.com"},
	}})
	require.NoError(t, err)
	return svc
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret", TokenTTL: time.Minute}
		assert.NoError(t, config.ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{TokenTTL: time.Minute}
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret"}
		assert.Error(t, config.ValidateConfig())
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateJWT("user-1", "jane@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.CallerID())
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "workspace-backend", claims.Issuer)
}

func TestValidateJWT_SubjectOnly(t *testing.T) {
	svc := newTestService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.CallerID())
}

func TestValidateJWT_Rejects(t *testing.T) {
	svc := newTestService(t)

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other-key", TokenTTL: time.Hour}, nil)
		require.NoError(t, err)
		token, err := other.GenerateJWT("user-1", "")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key", TokenTTL: time.Nanosecond}, nil)
		require.NoError(t, err)
		token, err := expired.GenerateJWT("user-1", "")
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	middleware := NewAuthMiddleware(svc)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		email, _ := GetUserEmail(c)
		_, hasClaims := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "ok": ok, "email": email, "claims": hasClaims})
	})

	token, err := svc.GenerateJWT("user-1", "jane@example.com")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + token, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "user-1", body["userId"])
				assert.Equal(t, true, body["ok"])
				assert.Equal(t, "jane@example.com", body["email"])
				assert.Equal(t, true, body["claims"])
			} else {
				assert.Equal(t, false, body["success"])
				errBody := body["error"].(map[string]interface{})
				assert.Equal(t, float64(http.StatusUnauthorized), errBody["status"])
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set("user_id", "")
	_, ok = GetUserID(c)
	assert.False(t, ok)
}

func TestValidateTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	handler := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/api/auth/validate", handler.ValidateToken)

	token, err := svc.GenerateJWT("user-1", "jane@example.com")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool                 `json:"success"`
			Data    AuthValidateResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.True(t, body.Data.Valid)
		assert.Equal(t, "user-1", body.Data.UserID)
		require.NotNil(t, body.Data.User)
		assert.Equal(t, "jane@example.com", body.Data.User.Email)
		assert.NotNil(t, body.Data.ExpiresAt)
	})

	t.Run("unknown user still validates", func(t *testing.T) {
		other, err := svc.GenerateJWT("user-404", "")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"user"`)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
