package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizzeria/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupSessionRouter(t *testing.T) (*gin.Engine, *token.Signer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signer, err := token.NewSigner("test-secret-key-for-testing-only", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.Use(RequestLogger(zap.NewNop()), Session(signer, false, zap.NewNop()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session": SessionID(c)})
	})
	return router, signer
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie {
			return ck
		}
	}
	return nil
}

// TestSession_MissingCookie starts a new session and sets the cookie
func TestSession_MissingCookie(t *testing.T) {
	router, signer := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	ck := sessionCookie(w)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)

	sid, err := signer.Parse(ck.Value)
	require.NoError(t, err)
	assert.Contains(t, w.Body.String(), sid)
}

// TestSession_ValidCookie keeps the existing session
func TestSession_ValidCookie(t *testing.T) {
	router, signer := setupSessionRouter(t)

	tok, err := signer.Issue("existing-session")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "existing-session")
	assert.Nil(t, sessionCookie(w), "no new cookie for a valid session")
}

// TestSession_TamperedCookie replaces the session
func TestSession_TamperedCookie(t *testing.T) {
	router, _ := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "invalid_token_xyz"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, sessionCookie(w))
	assert.NotContains(t, w.Body.String(), "invalid_token_xyz")
}
