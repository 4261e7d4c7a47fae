package middleware

import (
	"net/http"
	"strings"
)

// Page path prefixes. API routes are exempt: they authenticate per request
// via the Authorization header.
var (
	protectedPrefixes = []string{
		"/dashboard",
		"/pacientes",
		"/agenda",
		"/prontuarios",
		"/relatorios",
		"/configuracoes",
	}

	authPagePrefixes = []string{
		"/login",
		"/cadastro",
	}
)

// RouteGuard is a coarse, optimistic gate over page routes: it inspects the
// presence of the session cookie, not its validity. Defense-in-depth only;
// the authoritative check is the auth + tenant middleware at the action
// boundary.
type RouteGuard struct {
	cookieName string
}

func NewRouteGuard(cookieName string) *RouteGuard {
	return &RouteGuard{cookieName: cookieName}
}

func (g *RouteGuard) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasPrefix(path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		hasSession := g.hasSessionCookie(r)

		switch {
		case path == "/":
			if hasSession {
				http.Redirect(w, r, "/dashboard", http.StatusFound)
			} else {
				http.Redirect(w, r, "/login", http.StatusFound)
			}
		case hasPrefix(path, protectedPrefixes) && !hasSession:
			http.Redirect(w, r, "/login", http.StatusFound)
		case hasPrefix(path, authPagePrefixes) && hasSession:
			http.Redirect(w, r, "/dashboard", http.StatusFound)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (g *RouteGuard) hasSessionCookie(r *http.Request) bool {
	cookie, err := r.Cookie(g.cookieName)
	return err == nil && cookie.Value != ""
}

func hasPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
