package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseSession_Verified(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"userId": "u-1", "exp": time.Now().Add(time.Hour).Unix()})

	s, err := ParseSession(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, Session{Authenticated: true, UserID: "u-1"}, s)

	_, err = ParseSession(token, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSession_Expired(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"sub": "u-2", "exp": time.Now().Add(-time.Hour).Unix()})

	_, err := ParseSession(token, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSession_WithoutSecret(t *testing.T) {
	token := signToken(t, "whatever", jwt.MapClaims{"sub": "u-3"})

	s, err := ParseSession(token, "")
	require.NoError(t, err)
	assert.Equal(t, Session{Authenticated: true, UserID: "u-3"}, s)

	s, err = ParseSession("opaque-token", "")
	require.NoError(t, err)
	assert.True(t, s.Authenticated)
	assert.Empty(t, s.UserID)
}

func TestSessionMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SessionMiddleware("token", "", testLogger()))
	var got Session
	router.GET("/", func(c *gin.Context) {
		got = GetSession(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, got.Authenticated)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "abc"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.True(t, got.Authenticated)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(testLogger()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(RequestIDHeader))
}
