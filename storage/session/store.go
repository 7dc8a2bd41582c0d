// Package sessionstore persists the session token and role across restarts
// in a single-row sqlite table. Everything else the app holds is memory-only
// and resets on reload.
package sessionstore

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/trezcool/lava/core/session"
)

const schema = `
	CREATE TABLE IF NOT EXISTS session (
		id        INTEGER PRIMARY KEY CHECK (id = 1),
		token     TEXT NOT NULL,
		user_type TEXT NOT NULL,
		user_id   TEXT NOT NULL,
		saved_at  TIMESTAMP NOT NULL
	);`

type store struct {
	db *sqlx.DB
}

var _ session.Store = (*store)(nil)

// Open connects to (creating if needed) the session database at path.
func Open(path string) (*store, error) { //nolint
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "creating session db dir")
		}
	}
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening session db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating session table")
	}
	return &store{db: db}, nil
}

func (s *store) Save(sess session.PersistedSession) error {
	_, err := s.db.NamedExec(`
		INSERT INTO session (id, token, user_type, user_id, saved_at)
		VALUES (1, :token, :user_type, :user_id, :saved_at)
		ON CONFLICT (id) DO UPDATE
		SET token = :token, user_type = :user_type, user_id = :user_id, saved_at = :saved_at`,
		sess,
	)
	return errors.Wrap(err, "saving session")
}

func (s *store) Load() (session.PersistedSession, error) {
	var sess session.PersistedSession
	err := s.db.Get(&sess, `SELECT token, user_type, user_id, saved_at FROM session WHERE id = 1`)
	if err == sql.ErrNoRows {
		return sess, session.ErrNoSession
	}
	if err != nil {
		return sess, errors.Wrap(err, "loading session")
	}
	if sess.Token == "" || sess.UserType == "" {
		return session.PersistedSession{}, session.ErrNoSession
	}
	return sess, nil
}

func (s *store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	return errors.Wrap(err, "clearing session")
}

func (s *store) Close() error { return s.db.Close() }
