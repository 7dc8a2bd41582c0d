package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/session"
	"github.com/trezcool/lava/core/user"
	inmemstore "github.com/trezcool/lava/storage/session/inmem"
	testutil "github.com/trezcool/lava/tests"
)

var (
	studentUsr = user.User{ID: "std_01", Username: "amina", Email: "amina@test.test", Type: user.TypeStudent}
	coachUsr   = user.User{ID: "coach_01", Username: "moussa", Email: "moussa@test.test", Type: user.TypeCoach}
)

func tokenFor(t *testing.T, usr user.User) user.TokenResponse {
	return user.TokenResponse{
		AccessToken: testutil.MintToken(t, usr, time.Now().Add(time.Hour)),
		TokenType:   "bearer",
	}
}

func TestManagerEstablish(t *testing.T) {
	store := inmemstore.NewStore()
	mgr := session.NewManager(store)

	usr, err := mgr.Establish(tokenFor(t, studentUsr), user.TypeStudent)
	assert.NoError(t, err)
	assert.Equal(t, studentUsr, usr)
	assert.True(t, mgr.IsAuthenticated())
	assert.NotEmpty(t, mgr.Token())

	// token and user always travel together
	sess := mgr.Current()
	assert.NotNil(t, sess.User)
	assert.NotEmpty(t, sess.Token)

	saved, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, studentUsr.ID, saved.UserID)
	assert.Equal(t, user.TypeStudent, saved.UserType)
}

func TestManagerEstablishFailures(t *testing.T) {
	tests := []struct {
		name     string
		token    func(t *testing.T) user.TokenResponse
		wantType string
		wantErr  error
	}{
		{
			name:     "role mismatch",
			token:    func(t *testing.T) user.TokenResponse { return tokenFor(t, studentUsr) },
			wantType: user.TypeCoach,
			wantErr:  session.ErrRoleMismatch,
		},
		{
			name: "garbage token",
			token: func(*testing.T) user.TokenResponse {
				return user.TokenResponse{AccessToken: "not.a.jwt", TokenType: "bearer"}
			},
			wantType: user.TypeStudent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := session.NewManager(inmemstore.NewStore())

			_, err := mgr.Establish(tt.token(t), tt.wantType)
			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// a failed login leaves no partial state behind
			assert.False(t, mgr.IsAuthenticated())
			assert.Empty(t, mgr.Token())
			assert.Nil(t, mgr.Current().User)
		})
	}
}

func TestManagerResume(t *testing.T) {
	store := inmemstore.NewStore()
	mgr := session.NewManager(store)

	_, err := mgr.Establish(tokenFor(t, coachUsr), user.TypeCoach)
	assert.NoError(t, err)

	// a fresh manager over the same store picks the session back up
	mgr2 := session.NewManager(store)
	usr, err := mgr2.Resume()
	assert.NoError(t, err)
	assert.Equal(t, coachUsr, usr)
	assert.True(t, mgr2.IsAuthenticated())
}

func TestManagerResumeNoSession(t *testing.T) {
	mgr := session.NewManager(inmemstore.NewStore())

	_, err := mgr.Resume()
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.False(t, mgr.IsAuthenticated())
}

func TestManagerResumeExpired(t *testing.T) {
	store := inmemstore.NewStore()
	expired := testutil.MintToken(t, studentUsr, time.Now().Add(-time.Hour))
	err := store.Save(session.PersistedSession{
		Token:    expired,
		UserType: user.TypeStudent,
		UserID:   studentUsr.ID,
		SavedAt:  time.Now().UTC(),
	})
	assert.NoError(t, err)

	mgr := session.NewManager(store)
	_, err = mgr.Resume()
	assert.ErrorIs(t, err, session.ErrSessionExpired)
	assert.False(t, mgr.IsAuthenticated())

	// the stale record is gone; next resume reports no session
	_, err = mgr.Resume()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestManagerLogout(t *testing.T) {
	store := inmemstore.NewStore()
	mgr := session.NewManager(store)

	_, err := mgr.Establish(tokenFor(t, studentUsr), user.TypeStudent)
	assert.NoError(t, err)

	assert.NoError(t, mgr.Logout())
	assert.False(t, mgr.IsAuthenticated())
	assert.Empty(t, mgr.Token())
	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	// idempotent
	assert.NoError(t, mgr.Logout())
}

func TestManagerAuthorize(t *testing.T) {
	mgr := session.NewManager(inmemstore.NewStore())

	// anonymous: everything but Login redirects to Login
	for _, p := range nav.AllPages {
		want := nav.Login
		if got := mgr.Authorize(p); got != want {
			t.Errorf("Authorize(%v) anonymous = %v, want %v", p, got, want)
		}
	}

	_, err := mgr.Establish(tokenFor(t, coachUsr), user.TypeCoach)
	assert.NoError(t, err)
	for _, p := range nav.AllPages {
		if got := mgr.Authorize(p); got != p {
			t.Errorf("Authorize(%v) authenticated = %v, want %v", p, got, p)
		}
	}
}

func TestHomePage(t *testing.T) {
	assert.Equal(t, nav.StudentDashboard, session.HomePage(studentUsr))
	assert.Equal(t, nav.CoachDashboard, session.HomePage(coachUsr))
}
