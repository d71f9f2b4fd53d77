package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	handler "github.com/MedusCode/kupipodariday-backend/services/app/handler"
)

type stubTokenParser struct {
	userID uint
	err    error
	seen   string
}

func (s *stubTokenParser) ParseToken(tokenString string) (uint, error) {
	s.seen = tokenString
	return s.userID, s.err
}

type stubUserLoader struct {
	user *model.User
	err  error
}

func (s *stubUserLoader) GetByID(_ context.Context, _ uint) (*model.User, error) {
	return s.user, s.err
}

func newAuthTestRouter(tokens TokenParser, users UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, users), func(c *gin.Context) {
		user, ok := handler.CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		tokens         *stubTokenParser
		users          *stubUserLoader
		expectedStatus int
	}{
		{
			name:           "valid_token_loads_user",
			authHeader:     "Bearer good-token",
			tokens:         &stubTokenParser{userID: 7},
			users:          &stubUserLoader{user: &model.User{ID: 7, Username: "alice"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_header",
			authHeader:     "",
			tokens:         &stubTokenParser{},
			users:          &stubUserLoader{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong_scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			tokens:         &stubTokenParser{},
			users:          &stubUserLoader{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty_token",
			authHeader:     "Bearer ",
			tokens:         &stubTokenParser{},
			users:          &stubUserLoader{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "parse_failure",
			authHeader:     "Bearer garbage",
			tokens:         &stubTokenParser{err: errors.New("token is malformed")},
			users:          &stubUserLoader{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token_for_deleted_user",
			authHeader:     "Bearer good-token",
			tokens:         &stubTokenParser{userID: 7},
			users:          &stubUserLoader{err: errors.New("user not found")},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthTestRouter(tc.tokens, tc.users)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddleware_StripsBearerPrefix(t *testing.T) {
	tokens := &stubTokenParser{userID: 7}
	users := &stubUserLoader{user: &model.User{ID: 7, Username: "alice"}}
	router := newAuthTestRouter(tokens, users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer the-raw-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "the-raw-token", tokens.seen)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware)
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NotEqual(t, w.Header().Get("X-Request-Id"), second.Header().Get("X-Request-Id"))
}
