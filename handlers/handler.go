package handlers

import (
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/padraicbc/runlog/stats"
	"github.com/padraicbc/runlog/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	runs   *store.Store
	stats  *stats.Engine
	log    *zap.Logger
	routes []route
	JWTKey []byte
}

// Option configures a Handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	now func() time.Time
	log *zap.Logger
}

// WithClock overrides the clock used by date-relative queries.
func WithClock(now func() time.Time) Option {
	return func(o *handlerOptions) { o.now = now }
}

// WithLogger sets the logger; zap.L() is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(o *handlerOptions) { o.log = l }
}

// New creates a Handler with the given database connection and JWT signing key.
func New(db *bun.DB, jwtKey []byte, opts ...Option) *Handler {
	o := handlerOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.L()
	}

	runs := store.New(db)
	return &Handler{
		runs:   runs,
		stats:  stats.New(runs, stats.WithClock(o.now)),
		log:    o.log,
		JWTKey: jwtKey,
	}
}
