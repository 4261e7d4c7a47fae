package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCookieName = "psicoagenda_session"

func guardRequest(t *testing.T, path string, withCookie bool) *httptest.ResponseRecorder {
	t.Helper()

	guard := NewRouteGuard(testCookieName)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token"})
	}

	rec := httptest.NewRecorder()
	guard.Handle(next).ServeHTTP(rec, req)
	return rec
}

func TestRouteGuard_ProtectedPageWithoutSession(t *testing.T) {
	for _, path := range []string{"/dashboard", "/pacientes", "/pacientes/123", "/agenda", "/configuracoes"} {
		rec := guardRequest(t, path, false)
		require.Equal(t, http.StatusFound, rec.Code, path)
		require.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestRouteGuard_ProtectedPageWithSession(t *testing.T) {
	rec := guardRequest(t, "/dashboard", true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGuard_AuthPageWithSession(t *testing.T) {
	for _, path := range []string{"/login", "/cadastro"} {
		rec := guardRequest(t, path, true)
		require.Equal(t, http.StatusFound, rec.Code, path)
		require.Equal(t, "/dashboard", rec.Header().Get("Location"), path)
	}
}

func TestRouteGuard_AuthPageWithoutSession(t *testing.T) {
	rec := guardRequest(t, "/login", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGuard_RootRedirects(t *testing.T) {
	rec := guardRequest(t, "/", true)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = guardRequest(t, "/", false)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRouteGuard_APIRoutesAreExempt(t *testing.T) {
	rec := guardRequest(t, "/api/v1/patients", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGuard_UnlistedPathsPassThrough(t *testing.T) {
	rec := guardRequest(t, "/sobre", false)
	require.Equal(t, http.StatusOK, rec.Code)

	// Prefix match requires a path boundary
	rec = guardRequest(t, "/dashboards-export", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteGuard_EmptyCookieDoesNotCount(t *testing.T) {
	guard := NewRouteGuard(testCookieName)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: ""})

	rec := httptest.NewRecorder()
	guard.Handle(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}
