package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const identityTestSecret = "test-secret"

func identityRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenSubject string
	router := gin.New()
	router.Use(NewIdentity(identityTestSecret, zap.NewNop()).Optional())
	router.GET("/whoami", func(c *gin.Context) {
		if subject, ok := c.Get(SubjectKey); ok {
			seenSubject = subject.(string)
		}
		c.Status(http.StatusOK)
	})
	return router, &seenSubject
}

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestIdentitySetsSubjectFromValidToken(t *testing.T) {
	router, subject := identityRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, identityTestSecret, "user-42"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", *subject)
}

func TestIdentityAnonymousWithoutHeader(t *testing.T) {
	router, subject := identityRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *subject)
}

// A bad signature downgrades to anonymous; search stays public.
func TestIdentityIgnoresInvalidToken(t *testing.T) {
	router, subject := identityRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "wrong-secret", "user-42"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *subject)
}

func TestIdentityIgnoresMalformedHeader(t *testing.T) {
	router, subject := identityRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *subject)
}
