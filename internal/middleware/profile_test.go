package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelplanner/internal/middleware"
	"github.com/pkordes/travelplanner/internal/profile"
)

// profileEcho writes the profile id it sees back as the body.
var profileEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(profile.FromContext(r.Context())))
})

func TestProfileHandler_NewVisitorGetsCookie(t *testing.T) {
	h := middleware.NewProfileHandler(true)(profileEcho)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, middleware.ProfileCookie, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)

	_, err := uuid.Parse(c.Value)
	require.NoError(t, err)
	assert.Equal(t, c.Value, rec.Body.String())
}

func TestProfileHandler_ExistingCookieIsReused(t *testing.T) {
	h := middleware.NewProfileHandler(false)(profileEcho)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.ProfileCookie, Value: id})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, id, rec.Body.String())
}

func TestProfileHandler_ForgedCookieIsReplaced(t *testing.T) {
	h := middleware.NewProfileHandler(false)(profileEcho)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.ProfileCookie, Value: "default:travelplanner:trips"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "default:travelplanner:trips", rec.Body.String())
	assert.Equal(t, cookies[0].Value, rec.Body.String())
}
