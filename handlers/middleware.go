package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/yltimon/Yosemite-Voluteer/models"
	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/session"
)

type ctxKey int

const currentKey ctxKey = iota

type current struct {
	user     *models.User
	isAdmin  bool
	loggedIn bool
}

// AuthMiddleware resolves the session principal into a per-request identity.
type AuthMiddleware struct {
	Sessions *session.Store
	Users    repository.UserRepository
}

// WithCurrentUser attaches the resolved principal to the request context.
// An admin principal is rebuilt from the session alone; a user principal is
// re-fetched from storage, and a user deleted mid-session is treated as
// logged out.
func (m *AuthMiddleware) WithCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cur current

		if p, ok := m.Sessions.Principal(r); ok {
			switch p := p.(type) {
			case session.AdminPrincipal:
				cur = current{isAdmin: true, loggedIn: true}
			case session.UserPrincipal:
				user, err := m.Users.GetUserByID(p.UserID)
				switch {
				case err == nil:
					cur = current{user: user, loggedIn: true}
				case errors.Is(err, repository.ErrNotFound):
					m.Sessions.Invalidate(r)
				default:
					log.Printf("error resolving session user %s: %v", p.UserID, err)
				}
			}
		}

		ctx := context.WithValue(r.Context(), currentKey, cur)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuthenticated gates routes for any logged-in principal.
func (m *AuthMiddleware) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsLoggedIn(r) {
			m.Sessions.AddFlash(w, r, "error", "You need to be logged in to access this page")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates routes for the admin principal.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsLoggedIn(r) || !IsAdmin(r) {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func fromContext(r *http.Request) current {
	cur, _ := r.Context().Value(currentKey).(current)
	return cur
}

// CurrentUser returns the logged-in user record. The admin principal has no
// backing record and returns false here.
func CurrentUser(r *http.Request) (*models.User, bool) {
	cur := fromContext(r)
	return cur.user, cur.user != nil
}

func IsAdmin(r *http.Request) bool {
	return fromContext(r).isAdmin
}

func IsLoggedIn(r *http.Request) bool {
	return fromContext(r).loggedIn
}
