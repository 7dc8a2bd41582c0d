package session

import (
	"errors"
	"sync"
	"time"

	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/user"
)

var (
	ErrNoSession      = errors.New("no saved session")
	ErrSessionExpired = errors.New("session has expired")
	ErrRoleMismatch   = errors.New("account type does not match the requested portal")
)

type (
	// Session is the client's record of the currently authenticated user and
	// their credential token. Token present <=> User present, always.
	Session struct {
		User  *user.User
		Token string
	}

	// PersistedSession is the only state that survives a reload.
	PersistedSession struct {
		Token    string    `db:"token"`
		UserType string    `db:"user_type"`
		UserID   string    `db:"user_id"`
		SavedAt  time.Time `db:"saved_at"`
	}

	// Store persists a session across restarts. Load returns ErrNoSession
	// when nothing (or garbage) is stored.
	Store interface {
		Save(sess PersistedSession) error
		Load() (PersistedSession, error)
		Clear() error
	}

	// Manager holds the single source of truth for "who is using the app
	// right now". It is written only by the Establish/Logout transitions,
	// never by a page view directly.
	Manager struct {
		mu    sync.RWMutex
		store Store
		curr  Session
	}
)

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Establish moves Anonymous -> Authenticated (or overwrites on re-login) from
// a server-issued token. Identity is derived entirely from the token claims;
// a claims/requested-type mismatch fails with no state change, and no token
// is ever stored without its user.
func (m *Manager) Establish(token user.TokenResponse, wantType string) (user.User, error) {
	claims, err := ParseClaims(token.AccessToken)
	if err != nil {
		return user.User{}, err
	}
	if claims.UserType != wantType {
		return user.User{}, ErrRoleMismatch
	}

	usr := claims.User()

	m.mu.Lock()
	m.curr = Session{User: &usr, Token: token.AccessToken}
	m.mu.Unlock()

	if err := m.store.Save(PersistedSession{
		Token:    token.AccessToken,
		UserType: usr.Type,
		UserID:   usr.ID,
		SavedAt:  time.Now().UTC(),
	}); err != nil {
		// the in-memory session stands; persistence is only for the next start
		return usr, err
	}
	return usr, nil
}

// Resume restores a persisted session. Absent, corrupt or expired sessions
// are cleared and reported as ErrNoSession / ErrSessionExpired.
func (m *Manager) Resume() (user.User, error) {
	saved, err := m.store.Load()
	if err != nil {
		return user.User{}, err
	}

	claims, err := ParseClaims(saved.Token)
	if err != nil || claims.UserType != saved.UserType {
		_ = m.store.Clear()
		return user.User{}, ErrNoSession
	}
	if claims.Expired(time.Now()) {
		_ = m.store.Clear()
		return user.User{}, ErrSessionExpired
	}

	usr := claims.User()

	m.mu.Lock()
	m.curr = Session{User: &usr, Token: saved.Token}
	m.mu.Unlock()
	return usr, nil
}

// Logout moves to Anonymous. Idempotent: logging out while Anonymous is a
// no-op without error.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.curr = Session{}
	m.mu.Unlock()
	return m.store.Clear()
}

func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.curr
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.curr.User != nil
}

// Token implements the API client's token source.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.curr.Token
}

// Authorize is the single access-control check: any page other than Login
// requires an authenticated session, otherwise the caller is redirected to
// Login. Role-appropriateness of a page is not enforced here or anywhere
// else on the client; the backend owns that decision.
func (m *Manager) Authorize(page nav.Page) nav.Page {
	if page != nav.Login && !m.IsAuthenticated() {
		return nav.Login
	}
	return page
}

// HomePage is the role-appropriate dashboard.
func HomePage(usr user.User) nav.Page {
	if usr.IsCoach() {
		return nav.CoachDashboard
	}
	return nav.StudentDashboard
}
