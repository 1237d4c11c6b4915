// Package session implements the cookie-backed session store. The cookie
// is the session: the payload is plain JSON held by the client and read
// back on every request. It carries no signature, so the server trusts
// whatever the client returns for it.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"todoweb/internal/model"
)

const (
	// CookieName matches the original deployment so existing sessions
	// survive an upgrade.
	CookieName = "user-session"

	maxAge = 7 * 24 * time.Hour
)

type Store struct {
	secure bool
}

// NewStore returns a store whose cookies carry the Secure flag when the
// deployment serves over TLS.
func NewStore(secure bool) *Store {
	return &Store{secure: secure}
}

// Create replaces any existing session cookie with a fresh payload
// expiring 7 days from now.
func (s *Store) Create(w http.ResponseWriter, userID, userName string) {
	payload, err := json.Marshal(model.Session{
		UserID:    userID,
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// model.Session marshals unconditionally; nothing to do here.
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encode(payload),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the decoded session, or ok=false when the cookie is
// absent, malformed, or undecodable. Malformed cookies never surface as
// errors past this boundary.
func (s *Store) Read(r *http.Request) (model.Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return model.Session{}, false
	}

	payload, err := decode(cookie.Value)
	if err != nil {
		return model.Session{}, false
	}

	var sess model.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return model.Session{}, false
	}
	if sess.UserID == "" {
		return model.Session{}, false
	}
	return sess, true
}

// Destroy expires the session cookie. Destroying a non-existent session
// is not an error.
func (s *Store) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Cookie values cannot carry raw JSON, so the payload is base64url
// encoded. This is transport encoding only, not integrity protection.
func encode(payload []byte) string {
	return base64.RawURLEncoding.EncodeToString(payload)
}

func decode(value string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(value)
}
