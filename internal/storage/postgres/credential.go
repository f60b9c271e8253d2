package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// AuthTokenKey is the local_storage key holding the API credential.
const AuthTokenKey = "authToken"

// CredentialStore keeps the credential in the local_storage key-value table.
type CredentialStore struct {
	db *sqlx.DB
}

func NewCredentialStore(db *sqlx.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Get returns the stored credential, or "" when none was saved yet.
func (s *CredentialStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM local_storage WHERE key = $1`, AuthTokenKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *CredentialStore) Save(ctx context.Context, token string) error {
	query := `
		INSERT INTO local_storage (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query, AuthTokenKey, token)
	return err
}
