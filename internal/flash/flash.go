// Package flash stores one-shot status messages on a signed cookie
// session. A message set by a write path is shown on the next page the
// same browser renders, then cleared.
package flash

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "stockbook_session"

// Store sets and drains flash messages.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a flash store whose session cookie is signed with the
// given secret.
func NewStore(secret string) *Store {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	return &Store{cookies: cookies}
}

// Add appends a message to the session and saves the cookie.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, message string) error {
	// A cookie that fails to decode yields a fresh session, which is
	// all we need here.
	session, _ := s.cookies.Get(r, sessionName)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Drain returns all pending messages and clears them from the session.
func (s *Store) Drain(w http.ResponseWriter, r *http.Request) []string {
	session, _ := s.cookies.Get(r, sessionName)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			messages = append(messages, m)
		}
	}

	// Flashes() removed the messages from the session; saving persists
	// the now-empty list so they render exactly once.
	_ = session.Save(r, w)

	return messages
}
