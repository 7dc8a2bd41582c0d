package sessionstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lava/core/session"
)

func openStore(t *testing.T) (*store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStoreSaveLoadClear(t *testing.T) {
	s, _ := openStore(t)

	_, err := s.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	sess := session.PersistedSession{
		Token:    "tok-1",
		UserType: "student",
		UserID:   "std_01",
		SavedAt:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Save(sess))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)
	assert.Equal(t, sess.UserType, got.UserType)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.True(t, sess.SavedAt.Equal(got.SavedAt))

	// the table holds one row: a re-save overwrites
	sess.Token = "tok-2"
	sess.UserType = "coach"
	require.NoError(t, s.Save(sess))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.Token)
	assert.Equal(t, "coach", got.UserType)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	// clearing an empty store is fine
	require.NoError(t, s.Clear())
}

func TestStoreSurvivesReopen(t *testing.T) {
	s, path := openStore(t)
	require.NoError(t, s.Save(session.PersistedSession{
		Token:    "tok-1",
		UserType: "coach",
		UserID:   "coach_01",
		SavedAt:  time.Now().UTC(),
	}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Load()
	require.NoError(t, err)
	assert.Equal(t, "coach_01", got.UserID)
}
