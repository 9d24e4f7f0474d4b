package store

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/padraicbc/runlog/models"
)

type listQuery struct {
	q       *bun.SelectQuery
	ordered bool
}

// ListOption narrows or orders a List query.
type ListOption func(lq *listQuery)

// Since keeps runs on or after d.
func Since(d models.Date) ListOption {
	return func(lq *listQuery) {
		lq.q = lq.q.Where("r.rdate >= ?", d)
	}
}

// Between keeps runs dated from..to inclusive.
func Between(from, to models.Date) ListOption {
	return func(lq *listQuery) {
		lq.q = lq.q.Where("r.rdate >= ?", from).Where("r.rdate <= ?", to)
	}
}

// HasDistance keeps runs with a recorded distance.
func HasDistance() ListOption {
	return func(lq *listQuery) {
		lq.q = lq.q.Where("r.distance IS NOT NULL")
	}
}

// HasElapsed keeps runs with a recorded elapsed time.
func HasElapsed() ListOption {
	return func(lq *listQuery) {
		lq.q = lq.q.Where("r.elapsed IS NOT NULL")
	}
}

// NewestFirst orders by date, then by id, both descending.
func NewestFirst() ListOption {
	return func(lq *listQuery) {
		lq.q = lq.q.OrderExpr("r.rdate DESC").OrderExpr("r.runid DESC")
		lq.ordered = true
	}
}

// Limit caps the number of runs returned.
func Limit(n int) ListOption {
	return func(lq *listQuery) {
		lq.q = lq.q.Limit(n)
	}
}

// List returns the runs matching opts. Without an ordering option runs come
// back in id order.
func (s *Store) List(ctx context.Context, opts ...ListOption) ([]models.Run, error) {
	runs := []models.Run{}
	lq := &listQuery{q: s.db.NewSelect().Model(&runs)}
	for _, opt := range opts {
		opt(lq)
	}
	if !lq.ordered {
		lq.q = lq.q.OrderExpr("r.runid ASC")
	}
	if err := lq.q.Scan(ctx); err != nil {
		return nil, storageErr("list runs", err)
	}
	return runs, nil
}
