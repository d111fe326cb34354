package fitness

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
	"github.com/bersitedi/MyWorkoutPlanner/internal/sqlite"
)

// SqliteStore persists snapshots in the snapshots table.
type SqliteStore struct {
	db *sqlite.Database
}

func NewSqliteStore(db *sqlite.Database) *SqliteStore {
	return &SqliteStore{db: db}
}

func (s *SqliteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE storage_key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query snapshot", slog.String("key", key))
	}
	return payload, nil
}

func (s *SqliteStore) Save(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO snapshots (storage_key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (storage_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		key, payload)
	if err != nil {
		return errors.Wrap(err, "upsert snapshot", slog.String("key", key))
	}
	return nil
}
