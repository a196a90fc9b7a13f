// AngelaMos | 2026
// session_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCapture(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetSessionID(r.Context())
	})
}

func TestVisitorSession_MintsCookieForNewVisitor(t *testing.T) {
	var sessionID string
	handler := VisitorSession("gk_session", false)(sessionCapture(&sessionID))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view/link_1", nil))

	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err, "context should carry a fresh uuid")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "gk_session", c.Name)
	assert.Equal(t, sessionID, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Zero(t, c.MaxAge, "session cookie must expire with the browser session")
}

func TestVisitorSession_ReusesValidCookie(t *testing.T) {
	var sessionID string
	handler := VisitorSession("gk_session", false)(sessionCapture(&sessionID))

	existing := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/view/link_1", nil)
	req.AddCookie(&http.Cookie{Name: "gk_session", Value: existing})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, existing, sessionID)
	assert.Empty(t, rec.Result().Cookies(), "no Set-Cookie when the cookie is valid")
}

func TestVisitorSession_ReplacesMalformedCookie(t *testing.T) {
	var sessionID string
	handler := VisitorSession("gk_session", false)(sessionCapture(&sessionID))

	req := httptest.NewRequest(http.MethodGet, "/view/link_1", nil)
	req.AddCookie(&http.Cookie{Name: "gk_session", Value: "not-a-uuid"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEqual(t, "not-a-uuid", sessionID)
	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err)
	require.Len(t, rec.Result().Cookies(), 1)
}
