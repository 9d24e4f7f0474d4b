package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/runlog/models"
)

// FindUser looks up a user by exact username.
func (s *Store) FindUser(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, storageErr("find user", err)
	}
	return user, nil
}

// UpsertUser creates username or replaces its password hash.
func (s *Store) UpsertUser(ctx context.Context, username, hash string) error {
	user := &models.User{Username: username, Password: hash}
	return s.withTx(ctx, "upsert user", func(tx bun.Tx) error {
		_, err := tx.NewInsert().Model(user).
			On("CONFLICT (username) DO UPDATE SET password = EXCLUDED.password").
			Exec(ctx)
		return storageErr("upsert user", err)
	})
}
