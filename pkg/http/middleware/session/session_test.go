package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seen string
	h := NewSessionMiddleware(false)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = IDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec, seen
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	rec, id := serve(t, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_ReusesValidCookie(t *testing.T) {
	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: existing})

	rec, id := serve(t, req)

	assert.Equal(t, existing, id)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_ReplacesForgedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "../../admin"})

	_, id := serve(t, req)

	assert.NotEqual(t, "../../admin", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, IDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
