package auth

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/shui00cc/watchlist/internal/entity"
	"github.com/shui00cc/watchlist/internal/repository"
)

const (
	sessionName = "watchlist-session"
	userIDKey   = "user_id"
)

// Manager keeps the signed session cookie and resolves it back to a User.
type Manager struct {
	store *sessions.CookieStore
	users *repository.UserRepository
}

// NewManager builds a cookie-backed session manager. With an empty secret a
// random key is used, so sessions do not survive a restart.
func NewManager(secret string, users *repository.UserRepository) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, users: users}
}

// SignIn binds the session to the given user id.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID int) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[userIDKey] = userID
	return session.Save(r, w)
}

// SignOut drops the session cookie. Queued flashes go with it, so callers
// flash after signing out, not before.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, userIDKey)
	return session.Save(r, w)
}

// CurrentUser resolves the session to a stored user. A cookie pointing at a
// deleted user counts as anonymous.
func (m *Manager) CurrentUser(r *http.Request) (entity.User, bool) {
	session, _ := m.store.Get(r, sessionName)
	userID, ok := session.Values[userIDKey].(int)
	if !ok || userID == 0 {
		return entity.User{}, false
	}

	user, err := m.users.GetByID(userID)
	if err != nil {
		return entity.User{}, false
	}
	return user, true
}

// Flash queues a one-time message for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(msg)
	session.Save(r, w)
}

// Flashes returns and clears the queued messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save(r, w)
	}

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
