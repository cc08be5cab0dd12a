// Package session implements the server-side session store backing login
// state and one-shot flash messages. Sessions live in process memory and are
// keyed by an HMAC-signed cookie; losing the process loses the sessions,
// which is acceptable for a single-process deployment.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const CookieName = "session"

// Principal is the identity carried by a session. It is a closed union:
// a UserPrincipal points at a stored user record, an AdminPrincipal exists
// only in the session itself.
type Principal interface {
	isPrincipal()
}

type UserPrincipal struct {
	UserID string
}

type AdminPrincipal struct {
	Username string
}

func (UserPrincipal) isPrincipal()  {}
func (AdminPrincipal) isPrincipal() {}

type record struct {
	principal Principal
	flashes   map[string][]string
	expires   time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*record
	secret   []byte
	ttl      time.Duration
}

func NewStore(secret string) *Store {
	return &Store{
		sessions: make(map[string]*record),
		secret:   []byte(secret),
		ttl:      24 * time.Hour,
	}
}

func (s *Store) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return id + "." + hex.EncodeToString(mac.Sum(nil))
}

func (s *Store) verify(value string) (string, bool) {
	id, _, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(s.sign(id)), []byte(value)) {
		return "", false
	}
	return id, true
}

// lookup returns the live record for the request's cookie, expiring stale
// entries on the way. Callers must hold s.mu.
func (s *Store) lookup(r *http.Request) (string, *record) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", nil
	}
	id, ok := s.verify(cookie.Value)
	if !ok {
		return "", nil
	}
	rec, ok := s.sessions[id]
	if !ok {
		return "", nil
	}
	if time.Now().After(rec.expires) {
		delete(s.sessions, id)
		return "", nil
	}
	return id, rec
}

// getOrCreate mirrors express-session's saveUninitialized behavior: any
// request that touches the session gets one, logged in or not.
func (s *Store) getOrCreate(w http.ResponseWriter, r *http.Request) *record {
	if _, rec := s.lookup(r); rec != nil {
		return rec
	}

	id := uuid.NewString()
	rec := &record{
		flashes: make(map[string][]string),
		expires: time.Now().Add(s.ttl),
	}
	s.sessions[id] = rec

	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    s.sign(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	r.AddCookie(cookie)
	return rec
}

// Login binds a principal to the request's session.
func (s *Store) Login(w http.ResponseWriter, r *http.Request, p Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.getOrCreate(w, r)
	rec.principal = p
}

// Logout clears the principal and drops the session. Idempotent.
func (s *Store) Logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, rec := s.lookup(r); rec != nil {
		delete(s.sessions, id)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// Principal returns the session's identity, if any.
func (s *Store) Principal(r *http.Request) (Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, rec := s.lookup(r)
	if rec == nil || rec.principal == nil {
		return nil, false
	}
	return rec.principal, true
}

// Invalidate drops the principal from the request's session without ending
// the session itself. Used when a logged-in user's record has vanished.
func (s *Store) Invalidate(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, rec := s.lookup(r); rec != nil {
		rec.principal = nil
	}
}

// AddFlash queues a one-shot message under kind ("error" or "success").
func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.getOrCreate(w, r)
	rec.flashes[kind] = append(rec.flashes[kind], msg)
}

// Flashes pops and returns queued messages of the given kind.
func (s *Store) Flashes(r *http.Request, kind string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, rec := s.lookup(r)
	if rec == nil {
		return nil
	}
	msgs := rec.flashes[kind]
	delete(rec.flashes, kind)
	return msgs
}
