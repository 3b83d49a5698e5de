package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SubjectKey is the gin context key holding the authenticated subject.
const SubjectKey = "subject"

// Identity resolves the optional bearer identity issued by the auth
// collaborator. Search is public, so a missing or invalid token means
// anonymous, never 401; the subject only personalizes rate-limit keys
// and logs.
type Identity struct {
	secret []byte
	logger *zap.Logger
}

func NewIdentity(secret string, logger *zap.Logger) *Identity {
	return &Identity{secret: []byte(secret), logger: logger}
}

// Optional parses the Authorization header when present and stashes the
// token subject in the request context.
func (m *Identity) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			m.logger.Debug("ignoring invalid bearer token", zap.Error(err))
			c.Next()
			return
		}

		if subject, err := token.Claims.GetSubject(); err == nil && subject != "" {
			c.Set(SubjectKey, subject)
		}
		c.Next()
	}
}
