// Package auth implements email/password authentication on top of scs
// sessions. Failures surface as typed sentinel errors so handlers can map
// them to user-facing messages without string matching.
package auth

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
	"github.com/bersitedi/MyWorkoutPlanner/internal/sqlite"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown emails and wrong passwords,
	// indistinguishably, so the response does not leak which emails exist.
	ErrInvalidCredentials = errors.NewSentinel("invalid credentials")
	// ErrAccountExists is returned when signing up with a taken email.
	ErrAccountExists = errors.NewSentinel("account already exists")
)

const userIDSessionKey = "authenticatedUserID"

const minPasswordLength = 8

type Service struct {
	db       *sqlite.Database
	sessions *scs.SessionManager
	logger   *slog.Logger
}

func NewService(db *sqlite.Database, sessions *scs.SessionManager, logger *slog.Logger) *Service {
	return &Service{
		db:       db,
		sessions: sessions,
		logger:   logger,
	}
}

// SignUp creates a user and logs them in. The session token is renewed to
// prevent session fixation.
func (s *Service) SignUp(ctx context.Context, email, password string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return 0, errors.Wrap(ErrInvalidCredentials, "malformed email")
	}
	if len(password) < minPasswordLength {
		return 0, errors.Wrap(ErrInvalidCredentials, "password too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, errors.Wrap(err, "hash password")
	}

	result, err := s.db.ReadWrite.ExecContext(ctx,
		"INSERT INTO users (email, password_hash) VALUES (?, ?)", email, hash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, errors.Wrap(ErrAccountExists, "insert user", slog.String("email", email))
		}
		return 0, errors.Wrap(err, "insert user")
	}
	userID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "read new user ID")
	}

	if err := s.startSession(ctx, userID); err != nil {
		return 0, err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "user signed up", slog.Int64("userID", userID))
	return userID, nil
}

// LogIn verifies the credentials and starts an authenticated session.
func (s *Service) LogIn(ctx context.Context, email, password string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var (
		userID int64
		hash   []byte
	)
	err := s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT id, password_hash FROM users WHERE email = ?", email).Scan(&userID, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errors.Wrap(ErrInvalidCredentials, "unknown email")
	}
	if err != nil {
		return 0, errors.Wrap(err, "query user")
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return 0, errors.Wrap(ErrInvalidCredentials, "password mismatch", slog.Int64("userID", userID))
	}

	if err := s.startSession(ctx, userID); err != nil {
		return 0, err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "user logged in", slog.Int64("userID", userID))
	return userID, nil
}

// LogOut drops the authenticated session. Logging out without being logged in
// is not an error.
func (s *Service) LogOut(ctx context.Context) error {
	if err := s.sessions.RenewToken(ctx); err != nil {
		return errors.Wrap(err, "renew session token")
	}
	s.sessions.Remove(ctx, userIDSessionKey)
	return nil
}

func (s *Service) startSession(ctx context.Context, userID int64) error {
	if err := s.sessions.RenewToken(ctx); err != nil {
		return errors.Wrap(err, "renew session token")
	}
	s.sessions.Put(ctx, userIDSessionKey, userID)
	return nil
}

// userExists guards against sessions that outlive their user row.
func (s *Service) userExists(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE id = ?", userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "query user existence")
	}
	return true, nil
}
