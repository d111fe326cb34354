package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"

	"github.com/bersitedi/MyWorkoutPlanner/internal/contexthelpers"
	"github.com/bersitedi/MyWorkoutPlanner/internal/logging"
)

// Authenticate resolves the session's user and marks the request context as
// authenticated. Requests without a session pass through unauthenticated.
func (s *Service) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := s.sessions.GetInt64(ctx, userIDSessionKey)
		if userID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		exists, err := s.userExists(ctx, userID)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "unable to fetch user", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if exists {
			r = contexthelpers.AuthenticateContext(r, userID)
		}

		// Hash the session token with sha256 to avoid leaking it in logs.
		tokenHash := sha256.Sum256([]byte(s.sessions.Token(ctx)))
		ctx = logging.WithAttrs(r.Context(),
			slog.String("session_hash", hex.EncodeToString(tokenHash[:])),
			slog.Int64("user_id", userID),
		)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}
