package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const sessionKey = "session"

// Session is what the page chrome knows about the visitor. It is read from the
// session cookie and never written back.
type Session struct {
	Authenticated bool
	UserID        string
}

var ErrInvalidToken = errors.New("invalid token")

// SessionMiddleware resolves the session cookie into a Session stored on the gin context.
// With an empty secret any non-empty token counts as authenticated and its claims are read unverified.
func SessionMiddleware(cookieName, secret string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := Session{}
		if raw, err := c.Cookie(cookieName); err == nil && raw != "" {
			s, err := ParseSession(raw, secret)
			if err != nil {
				log.Debugf("Middleware: Ignoring session cookie: %v", err)
			} else {
				session = s
			}
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

func ParseSession(raw, secret string) (Session, error) {
	claims := jwt.MapClaims{}
	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
			// not a JWT, presence of the token is enough
			return Session{Authenticated: true}, nil
		}
		return Session{Authenticated: true, UserID: userIDFromClaims(claims)}, nil
	}

	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return Session{Authenticated: true, UserID: userIDFromClaims(claims)}, nil
}

func userIDFromClaims(claims jwt.MapClaims) string {
	for _, key := range []string{"userId", "id", "user_id", "_id"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}

func GetSession(c *gin.Context) Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Session{}
}
