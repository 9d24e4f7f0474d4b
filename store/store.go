// Package store persists runs and users. Every mutation runs in its own
// transaction that is rolled back unless it commits.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/padraicbc/runlog/models"
)

var (
	// ErrNotFound is returned when no run (or user) has the requested identity.
	ErrNotFound = errors.New("not found")
	// ErrIncomplete is returned by Create when a required field is missing.
	ErrIncomplete = errors.New("incomplete run")
)

// StorageError wraps a backing-store failure during op.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// Store is the record store for runs.
type Store struct {
	db *bun.DB
}

// New returns a Store over db.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx bun.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr(op, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr(op, err)
	}
	committed = true
	return nil
}

// Create inserts a new run built from p. All required fields must be set;
// Effort and Comment default to empty.
func (s *Store) Create(ctx context.Context, p models.RunPatch) (*models.Run, error) {
	if missing := p.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	run := &models.Run{}
	p.Apply(run)

	err := s.withTx(ctx, "create run", func(tx bun.Tx) error {
		_, err := tx.NewInsert().Model(run).Exec(ctx)
		return storageErr("create run", err)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Get returns the run with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*models.Run, error) {
	return getRun(ctx, s.db, id)
}

func getRun(ctx context.Context, db bun.IDB, id int64) (*models.Run, error) {
	run := &models.Run{}
	err := db.NewSelect().Model(run).Where("r.runid = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %d: %w", id, ErrNotFound)
		}
		return nil, storageErr("get run", err)
	}
	return run, nil
}

// Update merges the supplied fields of p into run id. An empty patch
// returns the stored run unchanged.
func (s *Store) Update(ctx context.Context, id int64, p models.RunPatch) (*models.Run, error) {
	var run *models.Run
	err := s.withTx(ctx, "update run", func(tx bun.Tx) error {
		var err error
		run, err = getRun(ctx, tx, id)
		if err != nil {
			return err
		}
		if p.IsEmpty() {
			return nil
		}
		p.Apply(run)
		_, err = tx.NewUpdate().
			Model(run).
			Column(p.Columns()...).
			WherePK().
			Exec(ctx)
		return storageErr("update run", err)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Delete removes run id. ErrNotFound is returned when nothing was deleted.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.withTx(ctx, "delete run", func(tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.Run)(nil)).
			Where("runid = ?", id).
			Exec(ctx)
		if err != nil {
			return storageErr("delete run", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return storageErr("delete run", err)
		}
		if n == 0 {
			return fmt.Errorf("run %d: %w", id, ErrNotFound)
		}
		return nil
	})
}
