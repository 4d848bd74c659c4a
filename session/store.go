// Package session persists the credentials of the signed-in user between
// invocations.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Atrox/homedir"
	"gopkg.in/yaml.v3"

	"github.com/daticahealth/snapdash/logs"
)

// DefaultPath is where the session is stored when no path is configured.
const DefaultPath = "~/.snapdash/session.yaml"

// Keys accepted by Lookup.
const (
	KeyToken = "token"
	KeyEmail = "email"
)

// ErrNoSession is returned by Load when no session has been saved.
var ErrNoSession = errors.New("no active session, run \"snapdash login\" first")

// Session is the persisted state of a signed-in user.
type Session struct {
	Token   string    `yaml:"token"`
	Email   string    `yaml:"email"`
	SavedAt time.Time `yaml:"saved_at"`
}

// Store reads and writes a Session to a YAML file.
type Store struct {
	path string
}

// NewStore builds a Store backed by path, expanding a leading ~.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	exp, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding session path: %w", err)
	}
	return &Store{path: exp}, nil
}

// Path returns the file the session is stored in.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored session. ErrNoSession is returned if none exists.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	sess := &Session{}
	if err := yaml.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("parsing session %s: %w", s.path, err)
	}
	if sess.Token == "" {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Save persists sess, replacing any previous session.
func (s *Store) Save(sess Session) error {
	if sess.Token == "" {
		return errors.New("refusing to save a session without a token")
	}
	if sess.SavedAt.IsZero() {
		sess.SavedAt = time.Now().UTC()
	}
	data, err := yaml.Marshal(&sess)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	logs.Printv("Session for %s saved to %s", sess.Email, s.path)
	return nil
}

// Clear removes the stored session. Clearing a missing session is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}
	logs.Printv("Session cleared: %s", s.path)
	return nil
}

// Token returns the stored session token, or "" when signed out.
func (s *Store) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sess, err := s.Load()
	if errors.Is(err, ErrNoSession) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Lookup returns the stored value for key, or "" if it is unset or unknown.
func (s *Store) Lookup(key string) string {
	sess, err := s.Load()
	if err != nil {
		return ""
	}
	switch key {
	case KeyToken:
		return sess.Token
	case KeyEmail:
		return sess.Email
	default:
		return ""
	}
}

// Email returns the signed-in user's email, or "".
func (s *Store) Email() string {
	return s.Lookup(KeyEmail)
}
